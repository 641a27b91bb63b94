// Package finance has the loan and savings formulas used by the generators.
// Rates are annual percentages; results are rounded to paise.
package finance

import (
	"math"

	"aggregator/internal/money"

	"github.com/shopspring/decimal"
)

func MonthlyRate(annualPct float64) float64 {
	return annualPct / 12 / 100
}

// EMI is the equated monthly instalment on a reducing-balance loan.
// A zero rate degenerates to principal/months.
func EMI(principal, annualPct float64, months int) decimal.Decimal {
	if months <= 0 {
		return money.FromFloat(principal)
	}
	r := MonthlyRate(annualPct)
	if r == 0 {
		return money.FromFloat(principal / float64(months))
	}
	growth := math.Pow(1+r, float64(months))
	return money.FromFloat(principal * r * growth / (growth - 1))
}

// Outstanding is the remaining principal after elapsed instalments of emi, never negative.
func Outstanding(principal, annualPct float64, emi decimal.Decimal, elapsed int) decimal.Decimal {
	payment := emi.InexactFloat64()
	r := MonthlyRate(annualPct)
	var remaining float64
	if r == 0 {
		remaining = principal - payment*float64(elapsed)
	} else {
		growth := math.Pow(1+r, float64(elapsed))
		remaining = principal*growth - payment*(growth-1)/r
	}
	if remaining < 0 {
		return decimal.Zero
	}
	return money.FromFloat(remaining)
}

// AnnuityDueFV is the value after periods contributions made at the start of each period.
func AnnuityDueFV(contribution, ratePct float64, periods int) decimal.Decimal {
	r := ratePct / 100
	if r == 0 {
		return money.FromFloat(contribution * float64(periods))
	}
	return money.FromFloat(contribution * ((math.Pow(1+r, float64(periods)) - 1) / r) * (1 + r))
}

// CompoundValue grows principal annually at ratePct for years, which may be fractional.
func CompoundValue(principal, ratePct, years float64) decimal.Decimal {
	return money.FromFloat(principal * math.Pow(1+ratePct/100, years))
}

// Derive returns current-invested and that gain as a percentage of invested.
func Derive(invested, current decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	returns := money.Round(current.Sub(invested))
	return returns, money.Percent(returns, invested)
}
