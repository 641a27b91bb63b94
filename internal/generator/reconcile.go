package generator

import (
	"sort"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

// MinStartingBalance is the floor applied to a reconstructed opening balance.
var MinStartingBalance = decimal.NewFromInt(5000)

// ImpliedStartingBalance undoes txns, newest first, from the ending balance.
func ImpliedStartingBalance(txns []models.Transaction, ending decimal.Decimal) decimal.Decimal {
	balance := ending
	for i := len(txns) - 1; i >= 0; i-- {
		balance = balance.Sub(txns[i].SignedAmount())
	}
	return balance
}

// ApplyForward returns a copy of txns with running balances starting from start.
func ApplyForward(txns []models.Transaction, start decimal.Decimal) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	balance := start
	for i, txn := range txns {
		balance = balance.Add(txn.SignedAmount())
		txn.CurrentBalance = balance.Round(2)
		out[i] = txn
	}
	return out
}

// ReconcileBalances orders txns by time and reassigns running balances so that
// each one follows from its predecessor. The opening balance is implied from
// ending and raised to floor when lower. The input slice is not modified.
func ReconcileBalances(txns []models.Transaction, ending, floor decimal.Decimal) ([]models.Transaction, decimal.Decimal) {
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	start := ImpliedStartingBalance(sorted, ending)
	if start.LessThan(floor) {
		start = floor
	}
	return ApplyForward(sorted, start), start
}
