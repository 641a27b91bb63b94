package store

import (
	"context"
	"time"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

type AccountStore struct {
	db DB
}

type accountRow struct {
	ID              string                            `db:"id"`
	UserID          string                            `db:"user_id"`
	Type            string                            `db:"type"`
	FipID           string                            `db:"fip_id"`
	FipName         string                            `db:"fip_name"`
	MaskedAccNumber string                            `db:"masked_acc_number"`
	ActualAccNumber string                            `db:"actual_acc_number"`
	IFSC            string                            `db:"ifsc_code"`
	Branch          string                            `db:"branch"`
	AccountType     string                            `db:"account_type"`
	CurrentBalance  decimal.Decimal                   `db:"current_balance"`
	Currency        string                            `db:"currency"`
	Status          string                            `db:"status"`
	OpeningDate     time.Time                         `db:"opening_date"`
	LinkRefNumber   string                            `db:"link_ref_number"`
	Profile         jsonColumn[models.AccountProfile] `db:"profile"`
	Summary         jsonColumn[models.AccountSummary] `db:"summary"`
}

const accountColumns = `id, user_id, type, fip_id, fip_name, masked_acc_number, actual_acc_number, ifsc_code, branch,
		account_type, current_balance, currency, status, opening_date, link_ref_number, profile, summary`

func (r accountRow) toModel() models.Account {
	return models.Account{
		ID:              r.ID,
		UserID:          r.UserID,
		Type:            models.AccountCategory(r.Type),
		FipID:           r.FipID,
		FipName:         r.FipName,
		MaskedAccNumber: r.MaskedAccNumber,
		ActualAccNumber: r.ActualAccNumber,
		IFSC:            r.IFSC,
		Branch:          r.Branch,
		AccountType:     models.AccountType(r.AccountType),
		CurrentBalance:  r.CurrentBalance,
		Currency:        r.Currency,
		Status:          models.AccountStatus(r.Status),
		OpeningDate:     r.OpeningDate,
		LinkRefNumber:   r.LinkRefNumber,
		Profile:         r.Profile.V,
		Summary:         r.Summary.V,
	}
}

func NewAccountStore(db DB) *AccountStore {
	return &AccountStore{db: db}
}

// Create inserts the account row only; transactions go through TransactionStore.
func (s *AccountStore) Create(ctx context.Context, tx Execer, account models.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := tx.ExecContext(ctx, query,
		account.ID, account.UserID, account.Type, account.FipID, account.FipName,
		account.MaskedAccNumber, account.ActualAccNumber, account.IFSC, account.Branch,
		account.AccountType, account.CurrentBalance, account.Currency, account.Status,
		account.OpeningDate, account.LinkRefNumber,
		jsonColumn[models.AccountProfile]{V: account.Profile},
		jsonColumn[models.AccountSummary]{V: account.Summary},
	)
	return mapError(err)
}

func (s *AccountStore) GetByID(ctx context.Context, accountID string) (models.Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return models.Account{}, mapError(err)
	}
	return row.toModel(), nil
}

func (s *AccountStore) GetByUserID(ctx context.Context, userID string) ([]models.Account, error) {
	var rows []accountRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE user_id = $1
		ORDER BY opening_date, id
	`, userID)
	if err != nil {
		return nil, err
	}
	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toModel())
	}
	return accounts, nil
}
