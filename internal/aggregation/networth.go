// Package aggregation computes the read-side views over a user's accounts,
// investments and liabilities. Everything here is pure; callers load the data.
package aggregation

import (
	"aggregator/internal/models"
	"aggregator/internal/money"

	"github.com/shopspring/decimal"
)

// MetalRates are per-gram valuations for precious metals.
type MetalRates struct {
	GoldPerGram   decimal.Decimal
	SilverPerGram decimal.Decimal
}

type NetWorthBreakdown struct {
	BankBalances   decimal.Decimal `json:"bank_balances"`
	Investments    decimal.Decimal `json:"investments"`
	FixedDeposits  decimal.Decimal `json:"fixed_deposits"`
	PreciousMetals decimal.Decimal `json:"precious_metals"`
	CreditCardDebt decimal.Decimal `json:"credit_card_debt"`
	Loans          decimal.Decimal `json:"loans"`
}

type HoldingCounts struct {
	Savings     int `json:"savings"`
	Current     int `json:"current"`
	CreditCards int `json:"credit_cards"`
	Investments int `json:"investments"`
	Loans       int `json:"loans"`
}

type NetWorth struct {
	TotalAssets      decimal.Decimal   `json:"total_assets"`
	TotalLiabilities decimal.Decimal   `json:"total_liabilities"`
	NetWorth         decimal.Decimal   `json:"net_worth"`
	Breakdown        NetWorthBreakdown `json:"breakdown"`
	Counts           HoldingCounts     `json:"counts"`
}

// ComputeNetWorth values deposit accounts, live investments and metals against
// active card and loan outstanding. Credit card accounts are not assets.
func ComputeNetWorth(accounts []models.Account, investments []models.Investment, liabilities []models.Liability, metals models.PreciousMetals, rates MetalRates) NetWorth {
	var b NetWorthBreakdown
	var counts HoldingCounts

	for _, acc := range accounts {
		switch acc.AccountType {
		case models.AccountSavings:
			counts.Savings++
		case models.AccountCurrent:
			counts.Current++
		}
		if acc.Type == models.CategoryCreditCard {
			continue
		}
		b.BankBalances = b.BankBalances.Add(acc.CurrentBalance)
	}

	for _, inv := range investments {
		if inv.Status != models.InvestmentActive && inv.Status != models.InvestmentMatured {
			continue
		}
		counts.Investments++
		if inv.Type == models.InvestmentTermDeposit {
			b.FixedDeposits = b.FixedDeposits.Add(inv.CurrentValue)
			continue
		}
		b.Investments = b.Investments.Add(inv.CurrentValue)
	}

	b.PreciousMetals = rates.GoldPerGram.Mul(decimal.NewFromInt(int64(metals.Gold))).
		Add(rates.SilverPerGram.Mul(decimal.NewFromInt(int64(metals.Silver))))

	for _, l := range liabilities {
		if l.Status != models.LiabilityActive {
			continue
		}
		if l.Type == models.LiabilityCreditCard {
			counts.CreditCards++
			b.CreditCardDebt = b.CreditCardDebt.Add(l.OutstandingAmount)
			continue
		}
		counts.Loans++
		b.Loans = b.Loans.Add(l.OutstandingAmount)
	}

	b = NetWorthBreakdown{
		BankBalances:   money.Round(b.BankBalances),
		Investments:    money.Round(b.Investments),
		FixedDeposits:  money.Round(b.FixedDeposits),
		PreciousMetals: money.Round(b.PreciousMetals),
		CreditCardDebt: money.Round(b.CreditCardDebt),
		Loans:          money.Round(b.Loans),
	}
	assets := money.Sum(b.BankBalances, b.Investments, b.FixedDeposits, b.PreciousMetals)
	debts := money.Sum(b.CreditCardDebt, b.Loans)
	return NetWorth{
		TotalAssets:      assets,
		TotalLiabilities: debts,
		NetWorth:         assets.Sub(debts),
		Breakdown:        b,
		Counts:           counts,
	}
}
