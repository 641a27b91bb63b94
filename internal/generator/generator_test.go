package generator

import (
	"errors"
	"testing"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/models"
	"aggregator/internal/random"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(random.New(seed), WithClock(func() time.Time { return fixedNow }))
}

func savingsAccount(balance int64) models.Account {
	return models.Account{
		ID:             "acc-1",
		AccountType:    models.AccountSavings,
		Type:           models.CategoryDeposit,
		CurrentBalance: decimal.NewFromInt(balance),
		Summary:        models.AccountSummary{CurrentBalance: decimal.NewFromInt(balance)},
	}
}

func assertLedgerConsistent(t *testing.T, txns []models.Transaction) {
	t.Helper()
	if len(txns) == 0 {
		return
	}
	start := txns[0].CurrentBalance.Sub(txns[0].SignedAmount())
	if start.LessThan(MinStartingBalance) {
		t.Fatalf("starting balance %s below floor", start)
	}
	prev := start
	for i, txn := range txns {
		if i > 0 && txn.Timestamp.Before(txns[i-1].Timestamp) {
			t.Fatalf("transaction %d out of order", i)
		}
		if !txn.Amount.IsPositive() {
			t.Fatalf("transaction %d has non-positive amount %s", i, txn.Amount)
		}
		want := prev.Add(txn.SignedAmount())
		if !txn.CurrentBalance.Equal(want) {
			t.Fatalf("transaction %d balance %s, want %s", i, txn.CurrentBalance, want)
		}
		prev = txn.CurrentBalance
	}
}

func TestLedgerSavingsSingleMonth(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGenerator(seed)
		account, err := g.Ledger(savingsAccount(50000), LedgerOptions{
			Start:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Months:   1,
			PerMonth: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		txns := account.Transactions
		if len(txns) < 20 || len(txns) > 22 {
			t.Fatalf("seed %d: expected 20-22 transactions, got %d", seed, len(txns))
		}
		for _, txn := range txns {
			if txn.Timestamp.Year() != 2026 || txn.Timestamp.Month() != time.September {
				t.Fatalf("seed %d: transaction outside window: %s", seed, txn.Timestamp)
			}
			if txn.AccountID != "acc-1" {
				t.Fatalf("unexpected account id %s", txn.AccountID)
			}
		}
		assertLedgerConsistent(t, txns)
		last := txns[len(txns)-1].CurrentBalance
		if !account.Summary.CurrentBalance.Equal(last) || !account.CurrentBalance.Equal(last) {
			t.Fatalf("summary %s and account %s should equal last balance %s", account.Summary.CurrentBalance, account.CurrentBalance, last)
		}
	}
}

func TestLedgerSkipsFutureDates(t *testing.T) {
	g := newTestGenerator(4)
	account, err := g.Ledger(savingsAccount(20000), LedgerOptions{
		Start:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Months: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(account.Transactions) == 0 {
		t.Fatalf("expected transactions")
	}
	for _, txn := range account.Transactions {
		if txn.Timestamp.After(fixedNow) {
			t.Fatalf("transaction in the future: %s", txn.Timestamp)
		}
	}
	assertLedgerConsistent(t, account.Transactions)
}

func TestLedgerFutureWindowIsEmpty(t *testing.T) {
	g := newTestGenerator(2)
	account, err := g.Ledger(savingsAccount(50000), LedgerOptions{
		Start:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		Months: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(account.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(account.Transactions))
	}
	if !account.Summary.CurrentBalance.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("seed balance should be kept, got %s", account.Summary.CurrentBalance)
	}
}

func TestLedgerRejectsNegativeInputs(t *testing.T) {
	g := newTestGenerator(1)
	if _, err := g.Ledger(savingsAccount(1), LedgerOptions{Months: -1}); !errors.Is(err, ErrNegativeMonths) {
		t.Fatalf("expected ErrNegativeMonths, got %v", err)
	}
	if _, err := g.Ledger(savingsAccount(1), LedgerOptions{Months: 1, PerMonth: -3}); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
	if _, err := g.Accounts(models.User{}, -1); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestLedgerDeterministicForSeed(t *testing.T) {
	opts := LedgerOptions{Start: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Months: 3}
	a, _ := newTestGenerator(77).Ledger(savingsAccount(10000), opts)
	b, _ := newTestGenerator(77).Ledger(savingsAccount(10000), opts)
	if len(a.Transactions) != len(b.Transactions) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Transactions), len(b.Transactions))
	}
	for i := range a.Transactions {
		if a.Transactions[i].ID != b.Transactions[i].ID || !a.Transactions[i].Amount.Equal(b.Transactions[i].Amount) {
			t.Fatalf("transaction %d differs", i)
		}
	}
}

func TestAccountsFirstIsDeposit(t *testing.T) {
	g := newTestGenerator(9)
	user := g.User()
	for i := 0; i < 50; i++ {
		accounts, err := g.Accounts(user, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(accounts) != 4 {
			t.Fatalf("expected 4 accounts, got %d", len(accounts))
		}
		if accounts[0].Type != models.CategoryDeposit {
			t.Fatalf("first account should be a deposit, got %s", accounts[0].Type)
		}
		for _, acc := range accounts {
			if acc.UserID != user.ID || acc.Currency != models.CurrencyINR {
				t.Fatalf("unexpected account ownership or currency: %+v", acc)
			}
			if acc.Type != models.CategoryFor(acc.AccountType) {
				t.Fatalf("category %s does not match type %s", acc.Type, acc.AccountType)
			}
			if acc.MaskedAccNumber[len(acc.MaskedAccNumber)-4:] != acc.ActualAccNumber[len(acc.ActualAccNumber)-4:] {
				t.Fatalf("mask should keep last four digits")
			}
			if acc.AccountType == models.AccountCurrent && (acc.Summary.CurrentODLimit == nil || acc.Summary.Facility == "") {
				t.Fatalf("current account missing overdraft details")
			}
		}
	}
}

func TestUserFields(t *testing.T) {
	user := newTestGenerator(21).User()
	if user.AAHandle != user.Mobile+"@anumati" {
		t.Fatalf("unexpected handle %s for %s", user.AAHandle, user.Mobile)
	}
	if user.PinHash != "" {
		t.Fatalf("generator must not set the pin hash")
	}
	if len(user.Dependents) > 4 || len(user.CreditCards) > 4 {
		t.Fatalf("too many dependents or cards")
	}
	for _, dep := range user.Dependents {
		if dep.Age < 18 && dep.Relationship != "Son" && dep.Relationship != "Daughter" {
			t.Fatalf("minor with relationship %s", dep.Relationship)
		}
	}
	if !user.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created at should come from the clock")
	}
}

func TestProfileCounts(t *testing.T) {
	g := newTestGenerator(31)
	user := g.User()
	profile, err := g.Profile(user, ProfileOptions{MonthsOfHistory: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(profile.Accounts); n < 2 || n > 5 {
		t.Fatalf("unexpected account count %d", n)
	}
	if n := len(profile.Investments); n < 3 || n > 8 {
		t.Fatalf("unexpected investment count %d", n)
	}
	if n := len(profile.Liabilities); n > 3 {
		t.Fatalf("unexpected liability count %d", n)
	}
	if len(profile.Liabilities) > 0 && profile.Liabilities[0].Type != models.LiabilityCreditCard {
		t.Fatalf("first liability should be a credit card")
	}
	for _, acc := range profile.Accounts {
		assertLedgerConsistent(t, acc.Transactions)
	}
	if _, err := g.Profile(user, ProfileOptions{MonthsOfHistory: -2}); !errors.Is(err, ErrNegativeMonths) {
		t.Fatalf("expected ErrNegativeMonths, got %v", err)
	}
}

func TestNewDefaultsPatternsOnlyWhenNoneInjected(t *testing.T) {
	if got := len(New(random.New(1)).patterns.Patterns); got != len(catalog.DefaultPatterns().Patterns) {
		t.Fatalf("expected default table, got %d patterns", got)
	}
	table := catalog.PatternTable{Patterns: []catalog.Pattern{{Category: "Only", Weight: 1}}}
	g := New(random.New(1), WithPatterns(table))
	if len(g.patterns.Patterns) != 1 || g.patterns.Patterns[0].Category != "Only" {
		t.Fatalf("injected table was replaced: %+v", g.patterns.Patterns)
	}
}
