package aggregation

import (
	"aggregator/internal/models"
	"aggregator/internal/money"

	"github.com/shopspring/decimal"
)

type AccountLine struct {
	ID              string               `json:"id"`
	FipName         string               `json:"fip_name"`
	AccountType     models.AccountType   `json:"account_type"`
	MaskedAccNumber string               `json:"masked_acc_number"`
	CurrentBalance  decimal.Decimal      `json:"current_balance"`
	Status          models.AccountStatus `json:"status"`
}

type AccountsSummary struct {
	Count        int             `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Accounts     []AccountLine   `json:"accounts"`
}

func SummarizeAccounts(accounts []models.Account) AccountsSummary {
	out := AccountsSummary{Count: len(accounts), Accounts: make([]AccountLine, 0, len(accounts))}
	for _, acc := range accounts {
		out.TotalBalance = out.TotalBalance.Add(acc.CurrentBalance)
		out.Accounts = append(out.Accounts, AccountLine{
			ID:              acc.ID,
			FipName:         acc.FipName,
			AccountType:     acc.AccountType,
			MaskedAccNumber: acc.MaskedAccNumber,
			CurrentBalance:  acc.CurrentBalance,
			Status:          acc.Status,
		})
	}
	out.TotalBalance = money.Round(out.TotalBalance)
	return out
}

type LiabilitiesSummary struct {
	Count            int                `json:"count"`
	TotalOutstanding decimal.Decimal    `json:"total_outstanding"`
	TotalMonthlyEMI  decimal.Decimal    `json:"total_monthly_emi"`
	Liabilities      []models.Liability `json:"liabilities"`
}

// SummarizeLiabilities totals outstanding and EMI over ACTIVE liabilities only.
func SummarizeLiabilities(liabilities []models.Liability) LiabilitiesSummary {
	out := LiabilitiesSummary{Count: len(liabilities), Liabilities: liabilities}
	if out.Liabilities == nil {
		out.Liabilities = []models.Liability{}
	}
	for _, l := range liabilities {
		if l.Status != models.LiabilityActive {
			continue
		}
		out.TotalOutstanding = out.TotalOutstanding.Add(l.OutstandingAmount)
		if l.EMIAmount != nil {
			out.TotalMonthlyEMI = out.TotalMonthlyEMI.Add(*l.EMIAmount)
		}
	}
	out.TotalOutstanding = money.Round(out.TotalOutstanding)
	out.TotalMonthlyEMI = money.Round(out.TotalMonthlyEMI)
	return out
}

type InvestmentsSummary struct {
	Count                    int                 `json:"count"`
	TotalInvested            decimal.Decimal     `json:"total_invested"`
	TotalCurrentValue        decimal.Decimal     `json:"total_current_value"`
	TotalReturns             decimal.Decimal     `json:"total_returns"`
	AverageReturnsPercentage decimal.Decimal     `json:"average_returns_percentage"`
	Investments              []models.Investment `json:"investments"`
}

func SummarizeInvestments(investments []models.Investment) InvestmentsSummary {
	out := InvestmentsSummary{Count: len(investments), Investments: investments}
	if out.Investments == nil {
		out.Investments = []models.Investment{}
	}
	for _, inv := range investments {
		out.TotalInvested = out.TotalInvested.Add(inv.InvestedAmount)
		out.TotalCurrentValue = out.TotalCurrentValue.Add(inv.CurrentValue)
	}
	out.TotalInvested = money.Round(out.TotalInvested)
	out.TotalCurrentValue = money.Round(out.TotalCurrentValue)
	out.TotalReturns = out.TotalCurrentValue.Sub(out.TotalInvested)
	out.AverageReturnsPercentage = money.Percent(out.TotalReturns, out.TotalInvested)
	return out
}
