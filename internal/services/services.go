package services

import (
	"context"
	"errors"

	"aggregator/internal/models"
	"aggregator/internal/store"
	"aggregator/internal/websocket"
)

var (
	ErrMobileTaken        = errors.New("mobile number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account not found")
)

type UserStore interface {
	Create(ctx context.Context, tx store.Execer, user models.User) error
	Update(ctx context.Context, tx store.Execer, user models.User) error
	GetByID(ctx context.Context, userID string) (models.User, error)
	GetByMobile(ctx context.Context, mobile string) (models.User, error)
	GetByAAHandle(ctx context.Context, handle string) (models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

type AccountStore interface {
	Create(ctx context.Context, tx store.Execer, account models.Account) error
	GetByID(ctx context.Context, accountID string) (models.Account, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Account, error)
}

type TransactionStore interface {
	InsertBatch(ctx context.Context, tx store.Execer, txns []models.Transaction) error
	ListByAccounts(ctx context.Context, accountIDs []string) ([]models.Transaction, error)
}

type InvestmentStore interface {
	Create(ctx context.Context, tx store.Execer, inv models.Investment) error
	GetByUserID(ctx context.Context, userID string) ([]models.Investment, error)
}

type LiabilityStore interface {
	Create(ctx context.Context, tx store.Execer, l models.Liability) error
	GetByUserID(ctx context.Context, userID string) ([]models.Liability, error)
}

type AuditStore interface {
	Log(ctx context.Context, tx store.Execer, actorID, action, entityType, entityID, data string) error
}

type BalanceHub interface {
	BroadcastBalance(userID string, update websocket.BalanceUpdate)
}

// Stores groups the repositories of one backend.
type Stores struct {
	Users        UserStore
	Accounts     AccountStore
	Transactions TransactionStore
	Investments  InvestmentStore
	Liabilities  LiabilityStore
	Audit        AuditStore
}
