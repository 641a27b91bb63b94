package store

import (
	"context"
	"time"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

type LiabilityStore struct {
	db DB
}

type liabilityRow struct {
	ID                string           `db:"id"`
	UserID            string           `db:"user_id"`
	Type              string           `db:"type"`
	Provider          string           `db:"provider"`
	AccountNumber     string           `db:"account_number"`
	PrincipalAmount   decimal.Decimal  `db:"principal_amount"`
	OutstandingAmount decimal.Decimal  `db:"outstanding_amount"`
	TotalLimit        *decimal.Decimal `db:"total_limit"`
	EMIAmount         *decimal.Decimal `db:"emi_amount"`
	Tenure            int              `db:"tenure"`
	InterestRate      decimal.Decimal  `db:"interest_rate"`
	StartDate         time.Time        `db:"start_date"`
	EndDate           *time.Time       `db:"end_date"`
	Status            string           `db:"status"`
}

const liabilityColumns = `id, user_id, type, provider, account_number, principal_amount, outstanding_amount,
		total_limit, emi_amount, tenure, interest_rate, start_date, end_date, status`

func (r liabilityRow) toModel() models.Liability {
	return models.Liability{
		ID:                r.ID,
		UserID:            r.UserID,
		Type:              models.LiabilityType(r.Type),
		Provider:          r.Provider,
		AccountNumber:     r.AccountNumber,
		PrincipalAmount:   r.PrincipalAmount,
		OutstandingAmount: r.OutstandingAmount,
		TotalLimit:        r.TotalLimit,
		EMIAmount:         r.EMIAmount,
		Tenure:            r.Tenure,
		InterestRate:      r.InterestRate,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Status:            models.LiabilityStatus(r.Status),
	}
}

func NewLiabilityStore(db DB) *LiabilityStore {
	return &LiabilityStore{db: db}
}

func (s *LiabilityStore) Create(ctx context.Context, tx Execer, l models.Liability) error {
	query := `
		INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := tx.ExecContext(ctx, query,
		l.ID, l.UserID, l.Type, l.Provider, l.AccountNumber, l.PrincipalAmount, l.OutstandingAmount,
		l.TotalLimit, l.EMIAmount, l.Tenure, l.InterestRate, l.StartDate, l.EndDate, l.Status,
	)
	return mapError(err)
}

func (s *LiabilityStore) GetByID(ctx context.Context, liabilityID string) (models.Liability, error) {
	var row liabilityRow
	err := s.db.GetContext(ctx, &row, `SELECT `+liabilityColumns+` FROM liabilities WHERE id = $1`, liabilityID)
	if err != nil {
		return models.Liability{}, mapError(err)
	}
	return row.toModel(), nil
}

func (s *LiabilityStore) GetByUserID(ctx context.Context, userID string) ([]models.Liability, error) {
	var rows []liabilityRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+liabilityColumns+`
		FROM liabilities
		WHERE user_id = $1
		ORDER BY start_date, id
	`, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Liability, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
