package generator

import (
	"fmt"

	"aggregator/internal/catalog"
	"aggregator/internal/models"
	"aggregator/internal/random"
	"aggregator/internal/synth"

	"github.com/shopspring/decimal"
)

var (
	accountMix        = []models.AccountType{models.AccountSavings, models.AccountCurrent, models.AccountCredit, models.AccountFD, models.AccountRD}
	accountMixWeights = []float64{40, 25, 20, 10, 5}

	primaryMix        = []models.AccountType{models.AccountSavings, models.AccountCurrent}
	primaryMixWeights = []float64{3, 1}
)

type amountRange struct {
	min, max float64
}

type balanceRule struct {
	balance amountRange
	limit   *amountRange
}

// For CREDIT accounts the balance is the card outstanding and the limit is the credit line.
var balanceRules = map[models.AccountType]balanceRule{
	models.AccountSavings: {balance: amountRange{5000, 500000}, limit: &amountRange{50000, 200000}},
	models.AccountCurrent: {balance: amountRange{50000, 2000000}, limit: &amountRange{500000, 5000000}},
	models.AccountFD:      {balance: amountRange{100000, 1000000}},
	models.AccountRD:      {balance: amountRange{50000, 300000}},
	models.AccountCredit:  {balance: amountRange{0, 100000}, limit: &amountRange{100000, 500000}},
}

// Accounts builds count accounts. The first is always a deposit account.
func (g *Generator) Accounts(user models.User, count int) ([]models.Account, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	accounts := make([]models.Account, 0, count)
	for i := 0; i < count; i++ {
		var accountType models.AccountType
		if i == 0 {
			accountType = random.PickWeighted(g.src, primaryMix, primaryMixWeights)
		} else {
			accountType = random.PickWeighted(g.src, accountMix, accountMixWeights)
		}
		accounts = append(accounts, g.Account(user, accountType))
	}
	return accounts, nil
}

func (g *Generator) Account(user models.User, accountType models.AccountType) models.Account {
	src := g.src
	now := g.now()
	bank := random.Pick(src, catalog.Banks)
	city := random.Pick(src, catalog.Cities)
	number := synth.AccountNumber(src, src.Int(11, 16))
	ifsc := synth.IFSC(src, bank.IFSCPrefix)
	branch := fmt.Sprintf("%s Branch, %s", city.Name, city.State)
	opened := now.AddDate(-src.Int(1, 10), 0, 0)

	summary := g.summary(accountType, ifsc, branch)
	summary.OpeningDate = opened
	summary.BalanceDateTime = now

	return models.Account{
		ID:              g.newID(),
		UserID:          user.ID,
		Type:            models.CategoryFor(accountType),
		FipID:           bank.Code,
		FipName:         bank.Name,
		MaskedAccNumber: synth.Mask(number),
		ActualAccNumber: number,
		IFSC:            ifsc,
		Branch:          branch,
		AccountType:     accountType,
		CurrentBalance:  summary.CurrentBalance,
		Currency:        models.CurrencyINR,
		Status:          models.AccountActive,
		OpeningDate:     opened,
		LinkRefNumber:   synth.LinkRef(src),
		Profile:         g.accountProfile(user),
		Summary:         summary,
	}
}

func (g *Generator) summary(accountType models.AccountType, ifsc, branch string) models.AccountSummary {
	rule := balanceRules[accountType]
	summary := models.AccountSummary{
		CurrentBalance: g.src.Float(rule.balance.min, rule.balance.max, 2),
		Currency:       models.CurrencyINR,
		Type:           accountType,
		Status:         models.AccountActive,
		Branch:         branch,
		IFSC:           ifsc,
		MICR:           synth.MICR(g.src),
	}
	if rule.limit != nil {
		limit := g.src.Float(rule.limit.min, rule.limit.max, 2)
		summary.DrawingLimit = &limit
	}
	if accountType == models.AccountCurrent {
		od := g.src.Float(100000, 1000000, 2)
		summary.CurrentODLimit = &od
		summary.Facility = random.Pick(g.src, []string{"OD", "CC"})
	}
	return summary
}

func (g *Generator) accountProfile(user models.User) models.AccountProfile {
	return models.AccountProfile{
		HolderType: "SINGLE",
		Holders: []models.Holder{{
			Name:           user.Name,
			DOB:            user.DOB,
			Mobile:         user.Mobile,
			Email:          user.Email,
			PAN:            user.PAN,
			Nominee:        random.Pick(g.src, []string{"REGISTERED", "NOT-REGISTERED"}),
			CKYCCompliance: true,
			Address:        fmt.Sprintf("%d, %s", g.src.Int(1, 999), random.Pick(g.src, catalog.Cities).Name),
		}},
	}
}

func seedBalance(account models.Account) decimal.Decimal {
	return account.Summary.CurrentBalance
}
