package store

import (
	"context"
	"time"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

type InvestmentStore struct {
	db DB
}

type investmentRow struct {
	ID                string           `db:"id"`
	UserID            string           `db:"user_id"`
	Type              string           `db:"type"`
	Provider          string           `db:"provider"`
	SchemeName        string           `db:"scheme_name"`
	FolioNumber       string           `db:"folio_number"`
	Units             *decimal.Decimal `db:"units"`
	NAV               *decimal.Decimal `db:"nav"`
	CurrentValue      decimal.Decimal  `db:"current_value"`
	InvestedAmount    decimal.Decimal  `db:"invested_amount"`
	Returns           decimal.Decimal  `db:"returns"`
	ReturnsPercentage decimal.Decimal  `db:"returns_percentage"`
	StartDate         time.Time        `db:"start_date"`
	MaturityDate      *time.Time       `db:"maturity_date"`
	Status            string           `db:"status"`
}

const investmentColumns = `id, user_id, type, provider, scheme_name, folio_number, units, nav, current_value,
		invested_amount, returns, returns_percentage, start_date, maturity_date, status`

func (r investmentRow) toModel() models.Investment {
	return models.Investment{
		ID:                r.ID,
		UserID:            r.UserID,
		Type:              models.InvestmentType(r.Type),
		Provider:          r.Provider,
		SchemeName:        r.SchemeName,
		FolioNumber:       r.FolioNumber,
		Units:             r.Units,
		NAV:               r.NAV,
		CurrentValue:      r.CurrentValue,
		InvestedAmount:    r.InvestedAmount,
		Returns:           r.Returns,
		ReturnsPercentage: r.ReturnsPercentage,
		StartDate:         r.StartDate,
		MaturityDate:      r.MaturityDate,
		Status:            models.InvestmentStatus(r.Status),
	}
}

func NewInvestmentStore(db DB) *InvestmentStore {
	return &InvestmentStore{db: db}
}

func (s *InvestmentStore) Create(ctx context.Context, tx Execer, inv models.Investment) error {
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := tx.ExecContext(ctx, query,
		inv.ID, inv.UserID, inv.Type, inv.Provider, inv.SchemeName, inv.FolioNumber, inv.Units, inv.NAV,
		inv.CurrentValue, inv.InvestedAmount, inv.Returns, inv.ReturnsPercentage,
		inv.StartDate, inv.MaturityDate, inv.Status,
	)
	return mapError(err)
}

func (s *InvestmentStore) GetByID(ctx context.Context, investmentID string) (models.Investment, error) {
	var row investmentRow
	err := s.db.GetContext(ctx, &row, `SELECT `+investmentColumns+` FROM investments WHERE id = $1`, investmentID)
	if err != nil {
		return models.Investment{}, mapError(err)
	}
	return row.toModel(), nil
}

func (s *InvestmentStore) GetByUserID(ctx context.Context, userID string) ([]models.Investment, error) {
	var rows []investmentRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+investmentColumns+`
		FROM investments
		WHERE user_id = $1
		ORDER BY start_date, id
	`, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Investment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
