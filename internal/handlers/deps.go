package handlers

import (
	"context"

	"aggregator/internal/aggregation"
	"aggregator/internal/models"
	"aggregator/internal/services"
)

type ProfileService interface {
	Register(ctx context.Context, req services.RegisterRequest) (models.User, error)
	Login(ctx context.Context, identifier, pin string) (models.User, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error)
	SubmitForm(ctx context.Context, userID string, update services.ProfileUpdate) (models.User, bool, error)
}

type AggregationService interface {
	Accounts(ctx context.Context, userID string) ([]models.Account, error)
	Account(ctx context.Context, userID, accountID string) (models.Account, error)
	NetWorth(ctx context.Context, userID string) (aggregation.NetWorth, error)
	AccountsSummary(ctx context.Context, userID string) (aggregation.AccountsSummary, error)
	Transactions(ctx context.Context, userID string, filter aggregation.TransactionFilter) (aggregation.TransactionSummary, error)
	Liabilities(ctx context.Context, userID string) (aggregation.LiabilitiesSummary, error)
	Investments(ctx context.Context, userID string) (aggregation.InvestmentsSummary, error)
	MonthlySpending(ctx context.Context, userID string, months int) ([]aggregation.MonthSpending, error)
	IncomeSources(ctx context.Context, userID string) ([]aggregation.IncomeSource, error)
}
