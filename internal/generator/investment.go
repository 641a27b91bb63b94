package generator

import (
	"fmt"
	"strings"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/finance"
	"aggregator/internal/models"
	"aggregator/internal/money"
	"aggregator/internal/random"
	"aggregator/internal/synth"

	"github.com/shopspring/decimal"
)

const (
	ppfRate          = 7.1
	ppfTenureYears   = 15
	npsMaturityAge   = 60
	npsDefaultYears  = 25
	npsProvider      = "National Pension System"
	equityBrokerName = "Zerodha"
)

var (
	investmentMix = []models.InvestmentType{
		models.InvestmentMutualFunds,
		models.InvestmentMutualFunds,
		models.InvestmentEquities,
		models.InvestmentTermDeposit,
		models.InvestmentPPF,
		models.InvestmentNPS,
	}
	fdTenures = []int{6, 12, 24, 36, 60}
)

func (g *Generator) Investments(user models.User, count int) ([]models.Investment, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]models.Investment, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Investment(user, random.Pick(g.src, investmentMix)))
	}
	return out, nil
}

func (g *Generator) Investment(user models.User, kind models.InvestmentType) models.Investment {
	var inv models.Investment
	switch kind {
	case models.InvestmentEquities:
		inv = g.equity()
	case models.InvestmentPPF:
		inv = g.ppf()
	case models.InvestmentTermDeposit:
		inv = g.fixedDeposit()
	case models.InvestmentNPS:
		inv = g.nps(user)
	default:
		inv = g.mutualFund()
	}
	inv.ID = g.newID()
	inv.UserID = user.ID
	inv.Type = kind
	inv.Returns, inv.ReturnsPercentage = finance.Derive(inv.InvestedAmount, inv.CurrentValue)
	return inv
}

func (g *Generator) mutualFund() models.Investment {
	house := random.Pick(g.src, catalog.MutualFundHouses)
	scheme := random.Pick(g.src, catalog.MutualFundSchemes)
	invested := g.src.Float(10000, 500000, 2)
	pct := g.src.Float(-5, 25, 2)
	current := money.Round(invested.Mul(decimal.NewFromInt(1).Add(pct.Div(decimal.NewFromInt(100)))))
	units := g.src.Float(100, 10000, 3)
	nav := current.Div(units).Round(2)
	return models.Investment{
		Provider:       house,
		SchemeName:     strings.Fields(house)[0] + " " + scheme,
		FolioNumber:    synth.Folio(g.src),
		Units:          &units,
		NAV:            &nav,
		InvestedAmount: invested,
		CurrentValue:   current,
		StartDate:      monthsBefore(g.now(), g.src.Int(6, 60)),
		Status:         models.InvestmentActive,
	}
}

func (g *Generator) equity() models.Investment {
	units := g.src.Float(10, 500, 0)
	avgPrice := g.src.Float(100, 3000, 2)
	invested := money.Round(units.Mul(avgPrice))
	pct := g.src.Float(-10, 40, 2)
	current := money.Round(invested.Mul(decimal.NewFromInt(1).Add(pct.Div(decimal.NewFromInt(100)))))
	nav := current.Div(units).Round(2)
	return models.Investment{
		Provider:       equityBrokerName,
		SchemeName:     random.Pick(g.src, catalog.EquityCompanies),
		Units:          &units,
		NAV:            &nav,
		InvestedAmount: invested,
		CurrentValue:   current,
		StartDate:      monthsBefore(g.now(), g.src.Int(3, 48)),
		Status:         models.InvestmentActive,
	}
}

func (g *Generator) ppf() models.Investment {
	now := g.now()
	bank := random.Pick(g.src, catalog.BanksWithCodes(catalog.PPFBanks...))
	years := g.src.Int(1, 10)
	annual := g.src.Float(10000, 150000, 2)
	start := now.AddDate(-years, 0, 0)
	maturity := start.AddDate(ppfTenureYears, 0, 0)
	status := models.InvestmentActive
	if !now.Before(maturity) {
		status = models.InvestmentMatured
	}
	return models.Investment{
		Provider:       bank.Name,
		SchemeName:     "Public Provident Fund",
		FolioNumber:    synth.Folio(g.src),
		InvestedAmount: money.Round(annual.Mul(decimal.NewFromInt(int64(years)))),
		CurrentValue:   finance.AnnuityDueFV(annual.InexactFloat64(), ppfRate, years),
		StartDate:      start,
		MaturityDate:   &maturity,
		Status:         status,
	}
}

func (g *Generator) fixedDeposit() models.Investment {
	now := g.now()
	bank := random.Pick(g.src, catalog.LendingBanks())
	principal := g.src.Float(50000, 1000000, 2)
	tenure := random.Pick(g.src, fdTenures)
	rate := g.src.Float(5.5, 7.5, 2)
	elapsed := g.src.Int(0, tenure)
	start := monthsBefore(now, elapsed)
	maturity := start.AddDate(0, tenure, 0)

	p, r := principal.InexactFloat64(), rate.InexactFloat64()
	status := models.InvestmentActive
	current := finance.CompoundValue(p, r, float64(elapsed)/12)
	if !now.Before(maturity) {
		status = models.InvestmentMatured
		current = finance.CompoundValue(p, r, float64(tenure)/12)
	}
	return models.Investment{
		Provider:       bank.Name,
		SchemeName:     fmt.Sprintf("Fixed Deposit - %d Months @ %s%%", tenure, rate.String()),
		FolioNumber:    synth.Folio(g.src),
		InvestedAmount: principal,
		CurrentValue:   current,
		StartDate:      start,
		MaturityDate:   &maturity,
		Status:         status,
	}
}

func (g *Generator) nps(user models.User) models.Investment {
	now := g.now()
	years := g.src.Int(1, 10)
	monthly := g.src.Float(1000, 10000, 2)
	rate := g.src.Float(10, 12, 2)
	yearly := monthly.Mul(decimal.NewFromInt(12))
	maturity := npsMaturity(user.DOB, now)
	status := models.InvestmentActive
	if !now.Before(maturity) {
		status = models.InvestmentMatured
	}
	return models.Investment{
		Provider:       npsProvider,
		SchemeName:     "Tier I - NPS Account",
		FolioNumber:    "PRAN" + fmt.Sprint(g.src.Int64(100000000000, 999999999999)),
		InvestedAmount: money.Round(yearly.Mul(decimal.NewFromInt(int64(years)))),
		CurrentValue:   finance.AnnuityDueFV(yearly.InexactFloat64(), rate.InexactFloat64(), years),
		StartDate:      now.AddDate(-years, 0, 0),
		MaturityDate:   &maturity,
		Status:         status,
	}
}

// npsMaturity is the date the holder turns 60, measured in whole years from now.
// An unknown date of birth gets a fixed horizon.
func npsMaturity(dob, now time.Time) time.Time {
	if dob.IsZero() {
		return now.AddDate(npsDefaultYears, 0, 0)
	}
	age := now.Year() - dob.Year()
	return now.AddDate(npsMaturityAge-age, 0, 0)
}
