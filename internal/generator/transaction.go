package generator

import (
	"fmt"
	"strings"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/models"
	"aggregator/internal/random"
	"aggregator/internal/synth"
)

const (
	salaryChance = 0.8
	rentChance   = 0.1
	minPerMonth  = 15
	maxPerMonth  = 30
	randomMaxDay = 28
	salaryMaxDay = 5
	rentMaxDay   = 10
)

type LedgerOptions struct {
	Start  time.Time
	Months int
	// PerMonth is the number of pattern-driven transactions per month; zero draws 15-30.
	PerMonth int
}

// Ledger fills account.Transactions over the window and makes the reconciled
// closing balance the account's current balance.
func (g *Generator) Ledger(account models.Account, opts LedgerOptions) (models.Account, error) {
	if opts.Months < 0 {
		return account, ErrNegativeMonths
	}
	if opts.PerMonth < 0 {
		return account, ErrNegativeCount
	}
	now := g.now()
	loc := opts.Start.Location()
	var txns []models.Transaction

	for m := 0; m < opts.Months; m++ {
		monthStart := time.Date(opts.Start.Year(), opts.Start.Month()+time.Month(m), 1, 0, 0, 0, 0, loc)
		if monthStart.After(now) {
			break
		}
		if account.AccountType == models.AccountSavings && g.src.Chance(salaryChance) {
			at := g.dayIn(monthStart, salaryMaxDay, 9, 11)
			if !at.After(now) {
				txns = append(txns, g.transaction(account.ID, g.patterns.Salary, at))
			}
		}
		if g.src.Chance(rentChance) {
			at := g.dayIn(monthStart, rentMaxDay, 8, 20)
			if !at.After(now) {
				txns = append(txns, g.transaction(account.ID, g.patterns.Rent, at))
			}
		}
		count := opts.PerMonth
		if count == 0 {
			count = g.src.Int(minPerMonth, maxPerMonth)
		}
		weights := g.patterns.Weights()
		for i := 0; i < count; i++ {
			at := g.dayIn(monthStart, randomMaxDay, 0, 23)
			if at.After(now) {
				continue
			}
			pattern := random.PickWeighted(g.src, g.patterns.Patterns, weights)
			txns = append(txns, g.transaction(account.ID, pattern, at))
		}
	}

	reconciled, _ := ReconcileBalances(txns, seedBalance(account), MinStartingBalance)
	account.Transactions = reconciled
	if len(reconciled) > 0 {
		closing := reconciled[len(reconciled)-1].CurrentBalance
		account.CurrentBalance = closing
		account.Summary.CurrentBalance = closing
	}
	return account, nil
}

func (g *Generator) dayIn(monthStart time.Time, maxDay, minHour, maxHour int) time.Time {
	return time.Date(monthStart.Year(), monthStart.Month(), g.src.Int(1, maxDay),
		g.src.Int(minHour, maxHour), g.src.Int(0, 59), g.src.Int(0, 59), 0, monthStart.Location())
}

func (g *Generator) transaction(accountID string, p catalog.Pattern, at time.Time) models.Transaction {
	src := g.src
	txn := models.Transaction{
		ID:        g.newID(),
		AccountID: accountID,
		Type:      p.Direction,
		Mode:      p.Mode,
		Amount:    src.Float(p.Min, p.Max, 2),
		Timestamp: at,
		ValueDate: time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location()),
		Category:  p.Category,
	}

	switch p.Mode {
	case models.ModeUPI:
		merchant := "Payment"
		if p.MerchantCategory != "" {
			merchant = random.Pick(src, catalog.Merchants[p.MerchantCategory])
		}
		txn.Narration = fmt.Sprintf("UPI-%s-%s-%s", merchant, synth.Mobile(src), p.Category)
		txn.Reference = "ORD" + fmt.Sprint(src.Int(100000, 999999))
		txn.MerchantName = merchant
		txn.MerchantUPI = synth.UPIHandle(src, merchant)
		txn.TxnID = synth.UTR(src, synth.RailUPI, at)
	case models.ModeFT:
		switch p.Category {
		case "Salary":
			txn.Narration = "NEFT-Salary Credit-" + random.Pick(src, catalog.Companies)
			txn.Reference = fmt.Sprintf("SAL/%s/%d", strings.ToUpper(at.Format("Jan")), at.Year())
		case "Rent":
			txn.Narration = "RTGS-Rent Payment-Monthly Rent"
			txn.Reference = fmt.Sprintf("RENT/%d/%d", int(at.Month()), at.Year())
		default:
			txn.Narration = "NEFT Transfer-" + p.Category
			txn.Reference = "TXN" + fmt.Sprint(src.Int(100000, 999999))
		}
		if p.Category == "Rent" || p.Direction == models.TxnDebit {
			txn.TxnID = synth.UTR(src, synth.RailRTGS, at)
		} else {
			txn.TxnID = synth.UTR(src, synth.RailNEFT, at)
		}
	case models.ModeATM:
		atmID := synth.ATMID(src)
		txn.Narration = fmt.Sprintf("ATM WDL-%s-%s", atmID, random.Pick(src, catalog.Cities).Name)
		txn.Reference = atmID
		txn.TxnID = synth.ATMID(src)
	case models.ModeCard:
		category := p.MerchantCategory
		if category == "" {
			category = "shopping"
		}
		merchant := random.Pick(src, catalog.Merchants[category])
		posID := src.Int(100000000, 999999999)
		txn.Narration = fmt.Sprintf("POS %d-%s", posID, merchant)
		txn.Reference = fmt.Sprintf("POS/%d", posID)
		txn.MerchantName = merchant
		txn.TxnID = synth.CardTxnID(src, at)
	default:
		txn.Narration = fmt.Sprintf("%s - %s", p.Direction, p.Category)
		txn.Reference = "TXN" + fmt.Sprint(src.Int(100000, 999999))
		txn.TxnID = synth.UTR(src, synth.RailNEFT, at)
	}
	return txn
}
