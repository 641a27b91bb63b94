package generator

import (
	"aggregator/internal/models"
)

type Profile struct {
	User        models.User
	Accounts    []models.Account
	Investments []models.Investment
	Liabilities []models.Liability
}

type ProfileOptions struct {
	MonthsOfHistory int
	// PerMonth is passed through to LedgerOptions.
	PerMonth int
}

// Profile generates the accounts, ledgers, investments and liabilities for an existing user.
func (g *Generator) Profile(user models.User, opts ProfileOptions) (Profile, error) {
	if opts.MonthsOfHistory < 0 {
		return Profile{}, ErrNegativeMonths
	}
	accounts, err := g.Accounts(user, g.src.Int(2, 5))
	if err != nil {
		return Profile{}, err
	}
	ledger := LedgerOptions{
		Start:    monthsBefore(g.now(), opts.MonthsOfHistory),
		Months:   opts.MonthsOfHistory,
		PerMonth: opts.PerMonth,
	}
	for i := range accounts {
		accounts[i], err = g.Ledger(accounts[i], ledger)
		if err != nil {
			return Profile{}, err
		}
	}
	investments, err := g.Investments(user, g.src.Int(3, 8))
	if err != nil {
		return Profile{}, err
	}
	liabilities, err := g.Liabilities(user, g.src.Int(0, 3))
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		User:        user,
		Accounts:    accounts,
		Investments: investments,
		Liabilities: liabilities,
	}, nil
}
