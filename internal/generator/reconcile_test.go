package generator

import (
	"testing"
	"time"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

func txn(id string, kind models.TxnType, amount int64, day int) models.Transaction {
	return models.Transaction{
		ID:        id,
		Type:      kind,
		Amount:    decimal.NewFromInt(amount),
		Timestamp: time.Date(2026, 9, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestReconcileBalancesSortsAndWalks(t *testing.T) {
	input := []models.Transaction{
		txn("c", models.TxnDebit, 300, 20),
		txn("a", models.TxnCredit, 1000, 2),
		txn("b", models.TxnDebit, 200, 10),
	}
	out, start := ReconcileBalances(input, decimal.NewFromInt(10500), MinStartingBalance)
	if !start.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected start 10000, got %s", start)
	}
	wantIDs := []string{"a", "b", "c"}
	wantBalances := []int64{11000, 10800, 10500}
	for i := range out {
		if out[i].ID != wantIDs[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantIDs[i], out[i].ID)
		}
		if !out[i].CurrentBalance.Equal(decimal.NewFromInt(wantBalances[i])) {
			t.Fatalf("position %d: expected %d, got %s", i, wantBalances[i], out[i].CurrentBalance)
		}
	}
	if input[0].ID != "c" || !input[0].CurrentBalance.IsZero() {
		t.Fatalf("input slice was modified")
	}
}

func TestReconcileBalancesClampsToFloor(t *testing.T) {
	input := []models.Transaction{
		txn("salary", models.TxnCredit, 80000, 1),
		txn("rent", models.TxnDebit, 20000, 5),
	}
	out, start := ReconcileBalances(input, decimal.NewFromInt(30000), MinStartingBalance)
	// implied start is -30000, so the floor wins and the closing balance moves
	if !start.Equal(MinStartingBalance) {
		t.Fatalf("expected floor start, got %s", start)
	}
	if !out[1].CurrentBalance.Equal(decimal.NewFromInt(65000)) {
		t.Fatalf("expected closing 65000, got %s", out[1].CurrentBalance)
	}
}

func TestReconcileBalancesEmpty(t *testing.T) {
	out, start := ReconcileBalances(nil, decimal.NewFromInt(42), MinStartingBalance)
	if len(out) != 0 {
		t.Fatalf("expected empty output")
	}
	if !start.Equal(MinStartingBalance) {
		t.Fatalf("expected floor for empty ledger below floor, got %s", start)
	}
}

func TestImpliedStartingBalanceAndApplyForwardRoundTrip(t *testing.T) {
	txns := []models.Transaction{
		txn("1", models.TxnDebit, 150, 1),
		txn("2", models.TxnCredit, 999, 2),
		txn("3", models.TxnDebit, 49, 3),
	}
	ending := decimal.NewFromInt(25000)
	start := ImpliedStartingBalance(txns, ending)
	forward := ApplyForward(txns, start)
	if !forward[len(forward)-1].CurrentBalance.Equal(ending) {
		t.Fatalf("forward pass should end at %s, got %s", ending, forward[len(forward)-1].CurrentBalance)
	}
}
