package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

func seedHoldings(t *testing.T) (*AggregationService, memoryBackend) {
	t.Helper()
	ctx := context.Background()
	backend := newMemoryBackend()
	users := []models.User{
		{ID: "u1", Mobile: "9000000001", AAHandle: "9000000001@anumati", PreciousMetals: models.PreciousMetals{Gold: 10}},
		{ID: "u2", Mobile: "9000000002", AAHandle: "9000000002@anumati"},
	}
	for _, u := range users {
		if err := backend.Users.Create(ctx, nil, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	accounts := []models.Account{
		{ID: "a1", UserID: "u1", Type: models.CategoryDeposit, AccountType: models.AccountSavings, CurrentBalance: decimal.NewFromInt(50000)},
		{ID: "b1", UserID: "u2", Type: models.CategoryDeposit, AccountType: models.AccountSavings, CurrentBalance: decimal.NewFromInt(999)},
	}
	for _, a := range accounts {
		if err := backend.Accounts.Create(ctx, nil, a); err != nil {
			t.Fatalf("create account: %v", err)
		}
	}
	txns := []models.Transaction{
		{ID: "t1", AccountID: "a1", Type: models.TxnCredit, Amount: decimal.NewFromInt(80000), Category: "Salary", Timestamp: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "t2", AccountID: "a1", Type: models.TxnDebit, Amount: decimal.NewFromInt(2000), Category: "Food", Timestamp: time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC)},
		{ID: "t3", AccountID: "b1", Type: models.TxnDebit, Amount: decimal.NewFromInt(5), Category: "Food", Timestamp: time.Date(2026, 9, 16, 20, 0, 0, 0, time.UTC)},
	}
	if err := backend.Transactions.InsertBatch(ctx, nil, txns); err != nil {
		t.Fatalf("insert transactions: %v", err)
	}
	_ = backend.Investments.Create(ctx, nil, models.Investment{
		ID:             "i1",
		UserID:         "u1",
		Type:           models.InvestmentMutualFunds,
		Status:         models.InvestmentActive,
		InvestedAmount: decimal.NewFromInt(9000),
		CurrentValue:   decimal.NewFromInt(10000),
		Returns:        decimal.NewFromInt(1000),
	})
	_ = backend.Liabilities.Create(ctx, nil, models.Liability{
		ID:                "l1",
		UserID:            "u1",
		Type:              models.LiabilityCreditCard,
		Status:            models.LiabilityActive,
		OutstandingAmount: decimal.NewFromInt(5000),
	})

	svc := NewAggregationService(backend.Stores, aggregation.MetalRates{
		GoldPerGram:   decimal.NewFromInt(100),
		SilverPerGram: decimal.NewFromInt(1),
	})
	svc.now = clock
	return svc, backend
}

func TestAggregationNetWorth(t *testing.T) {
	svc, _ := seedHoldings(t)
	nw, err := svc.NetWorth(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nw.TotalAssets.Equal(decimal.NewFromInt(61000)) {
		t.Fatalf("expected assets 61000, got %s", nw.TotalAssets)
	}
	if !nw.NetWorth.Equal(decimal.NewFromInt(56000)) {
		t.Fatalf("expected net worth 56000, got %s", nw.NetWorth)
	}
	if _, err := svc.NetWorth(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAggregationAccountOwnership(t *testing.T) {
	svc, _ := seedHoldings(t)
	ctx := context.Background()

	account, err := svc.Account(ctx, "u1", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(account.Transactions) != 2 || account.Transactions[0].ID != "t1" {
		t.Fatalf("expected ledger t1,t2, got %#v", account.Transactions)
	}
	if _, err := svc.Account(ctx, "u1", "b1"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for foreign account, got %v", err)
	}
	if _, err := svc.Account(ctx, "u1", "missing"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAggregationTransactionsAndSpending(t *testing.T) {
	svc, _ := seedHoldings(t)
	ctx := context.Background()

	summary, err := svc.Transactions(ctx, "u1", aggregation.TransactionFilter{Category: "food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 1 || !summary.TotalDebits.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	months, err := svc.MonthlySpending(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(months) != 1 || months[0].Month != "2026-09" || !months[0].Debits.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected months: %+v", months)
	}

	sources, err := svc.IncomeSources(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 1 || sources[0].Category != "Salary" {
		t.Fatalf("unexpected income sources: %+v", sources)
	}
}

func TestAggregationHoldingSummaries(t *testing.T) {
	svc, _ := seedHoldings(t)
	ctx := context.Background()

	accounts, err := svc.AccountsSummary(ctx, "u1")
	if err != nil || accounts.Count != 1 || !accounts.TotalBalance.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("unexpected accounts summary: %+v %v", accounts, err)
	}
	liabilities, err := svc.Liabilities(ctx, "u1")
	if err != nil || liabilities.Count != 1 {
		t.Fatalf("unexpected liabilities: %+v %v", liabilities, err)
	}
	investments, err := svc.Investments(ctx, "u1")
	if err != nil || investments.Count != 1 || !investments.TotalReturns.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected investments: %+v %v", investments, err)
	}
}
