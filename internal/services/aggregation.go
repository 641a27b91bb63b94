package services

import (
	"context"
	"errors"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/models"
	"aggregator/internal/store"
)

// AggregationService loads a user's holdings and hands them to the
// aggregation package.
type AggregationService struct {
	users        UserStore
	accounts     AccountStore
	transactions TransactionStore
	investments  InvestmentStore
	liabilities  LiabilityStore
	rates        aggregation.MetalRates
	now          func() time.Time
}

func NewAggregationService(stores Stores, rates aggregation.MetalRates) *AggregationService {
	return &AggregationService{
		users:        stores.Users,
		accounts:     stores.Accounts,
		transactions: stores.Transactions,
		investments:  stores.Investments,
		liabilities:  stores.Liabilities,
		rates:        rates,
		now:          time.Now,
	}
}

// Accounts lists the user's accounts without their transactions.
func (s *AggregationService) Accounts(ctx context.Context, userID string) ([]models.Account, error) {
	return s.accounts.GetByUserID(ctx, userID)
}

// Account returns one account with its ledger. Accounts of other users are
// reported as not found.
func (s *AggregationService) Account(ctx context.Context, userID, accountID string) (models.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	if account.UserID != userID {
		return models.Account{}, ErrAccountNotFound
	}
	withLedger, err := s.attachLedgers(ctx, []models.Account{account})
	if err != nil {
		return models.Account{}, err
	}
	return withLedger[0], nil
}

func (s *AggregationService) ledgers(ctx context.Context, userID string) ([]models.Account, error) {
	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachLedgers(ctx, accounts)
}

func (s *AggregationService) attachLedgers(ctx context.Context, accounts []models.Account) ([]models.Account, error) {
	ids := make([]string, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.ID
	}
	txns, err := s.transactions.ListByAccounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	byAccount := make(map[string][]models.Transaction, len(accounts))
	for _, txn := range txns {
		byAccount[txn.AccountID] = append(byAccount[txn.AccountID], txn)
	}
	for i := range accounts {
		accounts[i].Transactions = byAccount[accounts[i].ID]
	}
	return accounts, nil
}

func (s *AggregationService) NetWorth(ctx context.Context, userID string) (aggregation.NetWorth, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return aggregation.NetWorth{}, ErrUserNotFound
	}
	if err != nil {
		return aggregation.NetWorth{}, err
	}
	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.NetWorth{}, err
	}
	investments, err := s.investments.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.NetWorth{}, err
	}
	liabilities, err := s.liabilities.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.NetWorth{}, err
	}
	return aggregation.ComputeNetWorth(accounts, investments, liabilities, user.PreciousMetals, s.rates), nil
}

func (s *AggregationService) AccountsSummary(ctx context.Context, userID string) (aggregation.AccountsSummary, error) {
	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.AccountsSummary{}, err
	}
	return aggregation.SummarizeAccounts(accounts), nil
}

func (s *AggregationService) Transactions(ctx context.Context, userID string, filter aggregation.TransactionFilter) (aggregation.TransactionSummary, error) {
	accounts, err := s.ledgers(ctx, userID)
	if err != nil {
		return aggregation.TransactionSummary{}, err
	}
	return aggregation.SummarizeTransactions(accounts, filter), nil
}

func (s *AggregationService) Liabilities(ctx context.Context, userID string) (aggregation.LiabilitiesSummary, error) {
	liabilities, err := s.liabilities.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.LiabilitiesSummary{}, err
	}
	return aggregation.SummarizeLiabilities(liabilities), nil
}

func (s *AggregationService) Investments(ctx context.Context, userID string) (aggregation.InvestmentsSummary, error) {
	investments, err := s.investments.GetByUserID(ctx, userID)
	if err != nil {
		return aggregation.InvestmentsSummary{}, err
	}
	return aggregation.SummarizeInvestments(investments), nil
}

func (s *AggregationService) MonthlySpending(ctx context.Context, userID string, months int) ([]aggregation.MonthSpending, error) {
	accounts, err := s.ledgers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return aggregation.MonthlySpending(accounts, months, s.now()), nil
}

func (s *AggregationService) IncomeSources(ctx context.Context, userID string) ([]aggregation.IncomeSource, error) {
	accounts, err := s.ledgers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return aggregation.IncomeSources(accounts), nil
}
