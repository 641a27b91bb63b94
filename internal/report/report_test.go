package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestStatementXLSX(t *testing.T) {
	at := time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC)
	account := models.Account{
		FipName:         "HDFC Bank",
		MaskedAccNumber: "XXXXXXXX1234",
		AccountType:     models.AccountSavings,
		IFSC:            "HDFC0001234",
		CurrentBalance:  decimal.NewFromInt(61000),
		Transactions: []models.Transaction{
			{
				Type:           models.TxnCredit,
				Mode:           models.ModeFT,
				Amount:         decimal.NewFromInt(80000),
				CurrentBalance: decimal.NewFromInt(85000),
				Narration:      "NEFT-Salary Credit-Acme",
				Category:       "Salary",
				Timestamp:      at,
				ValueDate:      at,
			},
			{
				Type:           models.TxnDebit,
				Mode:           models.ModeUPI,
				Amount:         decimal.NewFromInt(24000),
				CurrentBalance: decimal.NewFromInt(61000),
				Narration:      "UPI-Swiggy-9876543210-Food",
				Category:       "Food",
				Timestamp:      at.Add(time.Hour),
				ValueDate:      at.Add(time.Hour),
			},
		},
	}

	data, err := StatementXLSX(account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(statementSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 9 {
		t.Fatalf("expected 9 rows, got %d", len(rows))
	}
	if rows[0][1] != "HDFC Bank" || rows[1][1] != "XXXXXXXX1234" {
		t.Fatalf("unexpected header rows: %v", rows[:2])
	}
	if rows[6][0] != "Date" || rows[6][7] != "Narration" {
		t.Fatalf("unexpected column header: %v", rows[6])
	}
	if rows[7][2] != "CREDIT" || rows[7][7] != "NEFT-Salary Credit-Acme" {
		t.Fatalf("unexpected first transaction row: %v", rows[7])
	}
	if rows[8][3] != "UPI" || rows[8][5] != "61000" {
		t.Fatalf("unexpected second transaction row: %v", rows[8])
	}
}

func TestSpendingChartPNG(t *testing.T) {
	months := []aggregation.MonthSpending{
		{Month: "2026-08", Debits: decimal.NewFromInt(42000)},
		{Month: "2026-09", Debits: decimal.NewFromInt(38500)},
	}
	data, err := SpendingChartPNG(months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("expected PNG signature")
	}
}

func TestSpendingChartPNGAllZero(t *testing.T) {
	data, err := SpendingChartPNG([]aggregation.MonthSpending{{Month: "2026-09"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected image bytes")
	}
}

func TestSpendingChartPNGEmpty(t *testing.T) {
	if _, err := SpendingChartPNG(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
