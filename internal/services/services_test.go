package services

import (
	"context"
	"sync"
	"time"

	"aggregator/internal/generator"
	"aggregator/internal/models"
	"aggregator/internal/store/memory"
	"aggregator/internal/websocket"

	"github.com/jmoiron/sqlx"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakeTxRunner struct {
	err error
}

func (f fakeTxRunner) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type recordingHub struct {
	mu      sync.Mutex
	updates map[string][]websocket.BalanceUpdate
}

func newRecordingHub() *recordingHub {
	return &recordingHub{updates: map[string][]websocket.BalanceUpdate{}}
}

func (h *recordingHub) BroadcastBalance(userID string, update websocket.BalanceUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.updates[userID] = append(h.updates[userID], update)
}

func (h *recordingHub) count(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.updates[userID])
}

type memoryBackend struct {
	Stores
	audit *memory.AuditStore
}

func newMemoryBackend() memoryBackend {
	mdb := memory.New()
	audit := memory.NewAuditStore(mdb)
	return memoryBackend{
		Stores: Stores{
			Users:        memory.NewUserStore(mdb),
			Accounts:     memory.NewAccountStore(mdb),
			Transactions: memory.NewTransactionStore(mdb),
			Investments:  memory.NewInvestmentStore(mdb),
			Liabilities:  memory.NewLiabilityStore(mdb),
			Audit:        audit,
		},
		audit: audit,
	}
}

type stubProvisioner struct {
	provisionFn func(ctx context.Context, user models.User, actorID string) (generator.Profile, error)
}

func (s stubProvisioner) Provision(ctx context.Context, user models.User, actorID string) (generator.Profile, error) {
	if s.provisionFn == nil {
		return generator.Profile{User: user}, nil
	}
	return s.provisionFn(ctx, user, actorID)
}

type stubUserStore struct {
	UserStore
	countFn func(ctx context.Context) (int, error)
}

func (s stubUserStore) Count(ctx context.Context) (int, error) {
	return s.countFn(ctx)
}
