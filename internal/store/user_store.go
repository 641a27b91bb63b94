package store

import (
	"context"
	"time"

	"aggregator/internal/models"
)

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

type userRow struct {
	ID               string                            `db:"id"`
	AAHandle         string                            `db:"aa_handle"`
	Mobile           string                            `db:"mobile"`
	PinHash          string                            `db:"pin_hash"`
	Name             string                            `db:"name"`
	Email            string                            `db:"email"`
	PAN              string                            `db:"pan"`
	DOB              time.Time                         `db:"dob"`
	Address          string                            `db:"address"`
	City             string                            `db:"city"`
	State            string                            `db:"state"`
	Pincode          string                            `db:"pincode"`
	Dependents       jsonColumn[[]models.Dependent]    `db:"dependents"`
	CreditCards      jsonColumn[[]models.HeldCard]     `db:"credit_cards"`
	PreciousMetals   jsonColumn[models.PreciousMetals] `db:"precious_metals"`
	FinancialPersona string                            `db:"financial_persona"`
	UserPersona      string                            `db:"user_persona"`
	CreatedAt        time.Time                         `db:"created_at"`
}

const userColumns = `id, aa_handle, mobile, pin_hash, name, email, pan, dob, address, city, state, pincode,
		dependents, credit_cards, precious_metals, financial_persona, user_persona, created_at`

func (r userRow) toModel() models.User {
	return models.User{
		ID:               r.ID,
		AAHandle:         r.AAHandle,
		Mobile:           r.Mobile,
		PinHash:          r.PinHash,
		Name:             r.Name,
		Email:            r.Email,
		PAN:              r.PAN,
		DOB:              r.DOB,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		Pincode:          r.Pincode,
		Dependents:       r.Dependents.V,
		CreditCards:      r.CreditCards.V,
		PreciousMetals:   r.PreciousMetals.V,
		FinancialPersona: r.FinancialPersona,
		UserPersona:      r.UserPersona,
		CreatedAt:        r.CreatedAt,
	}
}

func (s *UserStore) Create(ctx context.Context, tx Execer, user models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := tx.ExecContext(ctx, query,
		user.ID, user.AAHandle, user.Mobile, user.PinHash, user.Name, user.Email, user.PAN, user.DOB,
		user.Address, user.City, user.State, user.Pincode,
		jsonColumn[[]models.Dependent]{V: user.Dependents},
		jsonColumn[[]models.HeldCard]{V: user.CreditCards},
		jsonColumn[models.PreciousMetals]{V: user.PreciousMetals},
		user.FinancialPersona, user.UserPersona, user.CreatedAt,
	)
	return mapError(err)
}

// Update rewrites the editable profile fields. Mobile, handle and PIN are fixed.
func (s *UserStore) Update(ctx context.Context, tx Execer, user models.User) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET name = $1, email = $2, pan = $3, dob = $4, address = $5, city = $6, state = $7, pincode = $8,
		    dependents = $9, credit_cards = $10, precious_metals = $11,
		    financial_persona = $12, user_persona = $13, updated_at = NOW()
		WHERE id = $14
	`, user.Name, user.Email, user.PAN, user.DOB, user.Address, user.City, user.State, user.Pincode,
		jsonColumn[[]models.Dependent]{V: user.Dependents},
		jsonColumn[[]models.HeldCard]{V: user.CreditCards},
		jsonColumn[models.PreciousMetals]{V: user.PreciousMetals},
		user.FinancialPersona, user.UserPersona, user.ID)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) getBy(ctx context.Context, column, value string) (models.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value)
	if err != nil {
		return models.User{}, mapError(err)
	}
	return row.toModel(), nil
}

func (s *UserStore) GetByID(ctx context.Context, userID string) (models.User, error) {
	return s.getBy(ctx, "id", userID)
}

func (s *UserStore) GetByMobile(ctx context.Context, mobile string) (models.User, error) {
	return s.getBy(ctx, "mobile", mobile)
}

func (s *UserStore) GetByAAHandle(ctx context.Context, handle string) (models.User, error) {
	return s.getBy(ctx, "aa_handle", handle)
}

func (s *UserStore) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var rows []userRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

func (s *UserStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}
