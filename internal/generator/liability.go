package generator

import (
	"fmt"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/finance"
	"aggregator/internal/models"
	"aggregator/internal/money"
	"aggregator/internal/random"
	"aggregator/internal/synth"

	"github.com/shopspring/decimal"
)

var liabilityMix = []models.LiabilityType{
	models.LiabilityCreditCard,
	models.LiabilityPersonalLoan,
	models.LiabilityHomeLoan,
	models.LiabilityCarLoan,
	models.LiabilityEducationLoan,
}

// LoanTerms are the inputs to an amortized loan.
type LoanTerms struct {
	Principal    decimal.Decimal
	AnnualRate   decimal.Decimal
	TenureMonths int
	Elapsed      int
}

// Liabilities builds count liabilities. The first is always a credit card.
func (g *Generator) Liabilities(user models.User, count int) ([]models.Liability, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]models.Liability, 0, count)
	for i := 0; i < count; i++ {
		kind := models.LiabilityCreditCard
		if i > 0 {
			kind = random.Pick(g.src, liabilityMix)
		}
		out = append(out, g.Liability(user, kind))
	}
	return out, nil
}

func (g *Generator) Liability(user models.User, kind models.LiabilityType) models.Liability {
	var l models.Liability
	switch kind {
	case models.LiabilityPersonalLoan:
		l = g.personalLoan()
	case models.LiabilityHomeLoan:
		l = g.homeLoan()
	case models.LiabilityCarLoan:
		l = g.carLoan()
	case models.LiabilityEducationLoan:
		l = g.educationLoan()
	default:
		l = g.creditCard()
	}
	l.ID = g.newID()
	l.UserID = user.ID
	l.Type = kind
	return l
}

func (g *Generator) creditCard() models.Liability {
	limit := g.src.Float(50000, 500000, 2)
	utilisation := g.src.Float(10, 80, 2)
	outstanding := money.Round(limit.Mul(utilisation).Div(decimal.NewFromInt(100)))
	return models.Liability{
		Provider:          random.Pick(g.src, catalog.LendingBanks()).Name,
		AccountNumber:     fmt.Sprintf("XXXX XXXX XXXX %d", g.src.Int(1000, 9999)),
		PrincipalAmount:   limit,
		OutstandingAmount: outstanding,
		TotalLimit:        &limit,
		InterestRate:      g.src.Float(36, 48, 2),
		StartDate:         monthsBefore(g.now(), g.src.Int(6, 60)),
		Status:            models.LiabilityActive,
	}
}

func (g *Generator) personalLoan() models.Liability {
	providers := append(catalog.BankNames(catalog.LendingBanks()), catalog.PersonalLoanLenders...)
	tenure := random.Pick(g.src, []int{12, 24, 36, 48, 60})
	terms := LoanTerms{
		Principal:    g.src.Float(100000, 1000000, 2),
		AnnualRate:   g.src.Float(10, 18, 2),
		TenureMonths: tenure,
		Elapsed:      g.src.Int(1, tenure-1),
	}
	return g.amortized(random.Pick(g.src, providers), 12, terms)
}

func (g *Generator) homeLoan() models.Liability {
	providers := append(catalog.BankNames(catalog.LendingBanks()), catalog.HomeLoanLenders...)
	years := random.Pick(g.src, []int{10, 15, 20, 25, 30})
	terms := LoanTerms{
		Principal:    g.src.Float(1000000, 10000000, 2),
		AnnualRate:   g.src.Float(7.5, 9.5, 2),
		TenureMonths: years * 12,
		Elapsed:      g.src.Int(1, min(5, years-1)) * 12,
	}
	return g.amortized(random.Pick(g.src, providers), 14, terms)
}

func (g *Generator) carLoan() models.Liability {
	providers := append(catalog.BankNames(catalog.LendingBanks()), catalog.CarLoanLenders...)
	tenure := random.Pick(g.src, []int{3, 5, 7}) * 12
	terms := LoanTerms{
		Principal:    g.src.Float(300000, 2000000, 2),
		AnnualRate:   g.src.Float(8, 12, 2),
		TenureMonths: tenure,
		Elapsed:      g.src.Int(1, tenure-1),
	}
	return g.amortized(random.Pick(g.src, providers), 13, terms)
}

func (g *Generator) educationLoan() models.Liability {
	bank := random.Pick(g.src, catalog.BanksWithCodes(catalog.EducationLoanBanks...))
	years := random.Pick(g.src, []int{5, 7, 10, 15})
	terms := LoanTerms{
		Principal:    g.src.Float(200000, 2000000, 2),
		AnnualRate:   g.src.Float(9, 13, 2),
		TenureMonths: years * 12,
		Elapsed:      g.src.Int(1, min(3, years-1)) * 12,
	}
	return g.amortized(bank.Name, 12, terms)
}

func (g *Generator) amortized(provider string, digits int, terms LoanTerms) models.Liability {
	loan := AmortizedLoan(terms, g.now())
	loan.Provider = provider
	loan.AccountNumber = synth.AccountNumber(g.src, digits)
	return loan
}

// AmortizedLoan derives EMI, outstanding balance, dates and status from terms as of now.
func AmortizedLoan(terms LoanTerms, now time.Time) models.Liability {
	principal := terms.Principal.InexactFloat64()
	rate := terms.AnnualRate.InexactFloat64()
	emi := finance.EMI(principal, rate, terms.TenureMonths)
	start := monthsBefore(now, terms.Elapsed)
	end := start.AddDate(0, terms.TenureMonths, 0)
	status := models.LiabilityActive
	if terms.Elapsed >= terms.TenureMonths {
		status = models.LiabilityClosed
	}
	return models.Liability{
		PrincipalAmount:   terms.Principal,
		OutstandingAmount: finance.Outstanding(principal, rate, emi, terms.Elapsed),
		EMIAmount:         &emi,
		Tenure:            terms.TenureMonths,
		InterestRate:      terms.AnnualRate,
		StartDate:         start,
		EndDate:           &end,
		Status:            status,
	}
}
