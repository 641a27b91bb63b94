package aggregation

import (
	"sort"
	"strings"
	"time"

	"aggregator/internal/models"
	"aggregator/internal/money"

	"github.com/shopspring/decimal"
)

const (
	DefaultLimit  = 100
	DefaultMonths = 6
	uncategorized = "Others"
)

type TransactionFilter struct {
	From     *time.Time
	To       *time.Time
	Category string
	Limit    int
	Offset   int
}

func (f TransactionFilter) matches(txn models.Transaction) bool {
	if f.From != nil && txn.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && txn.Timestamp.After(*f.To) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(txn.Category), strings.ToLower(f.Category)) {
		return false
	}
	return true
}

type AccountRef struct {
	Bank         string `json:"bank"`
	MaskedNumber string `json:"masked_number"`
}

type TransactionLine struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Type         models.TxnType  `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Mode         models.TxnMode  `json:"mode"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Narration    string          `json:"narration"`
	Account      AccountRef      `json:"account"`
}

type TransactionSummary struct {
	Total             int                        `json:"total"`
	Limit             int                        `json:"limit"`
	Offset            int                        `json:"offset"`
	TotalCredits      decimal.Decimal            `json:"total_credits"`
	TotalDebits       decimal.Decimal            `json:"total_debits"`
	NetFlow           decimal.Decimal            `json:"net_flow"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
	Transactions      []TransactionLine          `json:"transactions"`
}

func categoryOf(txn models.Transaction) string {
	if txn.Category == "" {
		return uncategorized
	}
	return txn.Category
}

// SummarizeTransactions filters the transactions of accounts, totals them and
// returns one page ordered newest first. Totals cover every matching
// transaction, not only the page.
func SummarizeTransactions(accounts []models.Account, filter TransactionFilter) TransactionSummary {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	refs := make(map[string]AccountRef, len(accounts))
	var matched []models.Transaction
	for _, acc := range accounts {
		refs[acc.ID] = AccountRef{Bank: acc.FipName, MaskedNumber: acc.MaskedAccNumber}
		for _, txn := range acc.Transactions {
			if filter.matches(txn) {
				matched = append(matched, txn)
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	out := TransactionSummary{
		Total:             len(matched),
		Limit:             filter.Limit,
		Offset:            filter.Offset,
		CategoryBreakdown: map[string]decimal.Decimal{},
		Transactions:      []TransactionLine{},
	}
	for _, txn := range matched {
		if txn.Type == models.TxnCredit {
			out.TotalCredits = out.TotalCredits.Add(txn.Amount)
		} else {
			out.TotalDebits = out.TotalDebits.Add(txn.Amount)
		}
		cat := categoryOf(txn)
		out.CategoryBreakdown[cat] = out.CategoryBreakdown[cat].Add(txn.Amount)
	}
	out.TotalCredits = money.Round(out.TotalCredits)
	out.TotalDebits = money.Round(out.TotalDebits)
	out.NetFlow = out.TotalCredits.Sub(out.TotalDebits)

	if filter.Offset < len(matched) {
		end := min(filter.Offset+filter.Limit, len(matched))
		for _, txn := range matched[filter.Offset:end] {
			out.Transactions = append(out.Transactions, TransactionLine{
				ID:           txn.ID,
				Date:         txn.Timestamp,
				Type:         txn.Type,
				Amount:       txn.Amount,
				Category:     txn.Category,
				Mode:         txn.Mode,
				MerchantName: txn.MerchantName,
				Narration:    txn.Narration,
				Account:      refs[txn.AccountID],
			})
		}
	}
	return out
}

type MonthSpending struct {
	Month      string                     `json:"month"`
	Credits    decimal.Decimal            `json:"credits"`
	Debits     decimal.Decimal            `json:"debits"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// MonthlySpending buckets transactions from the last months (counted back from
// now) by YYYY-MM. Categories only carry debits. Months come back oldest first.
func MonthlySpending(accounts []models.Account, months int, now time.Time) []MonthSpending {
	if months <= 0 {
		months = DefaultMonths
	}
	since := now.AddDate(0, -months, 0)
	buckets := map[string]*MonthSpending{}
	for _, acc := range accounts {
		for _, txn := range acc.Transactions {
			if txn.Timestamp.Before(since) || txn.Timestamp.After(now) {
				continue
			}
			key := txn.Timestamp.Format("2006-01")
			bucket, ok := buckets[key]
			if !ok {
				bucket = &MonthSpending{Month: key, Categories: map[string]decimal.Decimal{}}
				buckets[key] = bucket
			}
			if txn.Type == models.TxnCredit {
				bucket.Credits = bucket.Credits.Add(txn.Amount)
				continue
			}
			bucket.Debits = bucket.Debits.Add(txn.Amount)
			cat := categoryOf(txn)
			bucket.Categories[cat] = bucket.Categories[cat].Add(txn.Amount)
		}
	}

	out := make([]MonthSpending, 0, len(buckets))
	for _, b := range buckets {
		b.Credits = money.Round(b.Credits)
		b.Debits = money.Round(b.Debits)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

type IncomeSource struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// IncomeSources groups credits by category, largest first.
func IncomeSources(accounts []models.Account) []IncomeSource {
	totals := map[string]decimal.Decimal{}
	var all decimal.Decimal
	for _, acc := range accounts {
		for _, txn := range acc.Transactions {
			if txn.Type != models.TxnCredit {
				continue
			}
			cat := categoryOf(txn)
			totals[cat] = totals[cat].Add(txn.Amount)
			all = all.Add(txn.Amount)
		}
	}

	out := make([]IncomeSource, 0, len(totals))
	for cat, amount := range totals {
		out = append(out, IncomeSource{
			Category:   cat,
			Amount:     money.Round(amount),
			Percentage: money.Percent(amount, all),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Equal(out[j].Amount) {
			return out[i].Category < out[j].Category
		}
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
