// Package memory is an in-process backend with the same method sets as the
// Postgres stores. Writes ignore the tx argument and are not rolled back.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"aggregator/internal/models"
	"aggregator/internal/store"
)

type DB struct {
	mu           sync.RWMutex
	users        map[string]models.User
	mobileIndex  map[string]string
	handleIndex  map[string]string
	userOrder    []string
	accounts     map[string]models.Account
	transactions map[string][]models.Transaction
	investments  map[string]models.Investment
	liabilities  map[string]models.Liability
	audit        []store.AuditEntry
	now          func() time.Time
}

func New() *DB {
	return &DB{
		users:        make(map[string]models.User),
		mobileIndex:  make(map[string]string),
		handleIndex:  make(map[string]string),
		accounts:     make(map[string]models.Account),
		transactions: make(map[string][]models.Transaction),
		investments:  make(map[string]models.Investment),
		liabilities:  make(map[string]models.Liability),
		now:          time.Now,
	}
}

type UserStore struct{ db *DB }

func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(_ context.Context, _ store.Execer, user models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[user.ID]; ok {
		return store.ErrDuplicate
	}
	if _, ok := s.db.mobileIndex[user.Mobile]; ok {
		return store.ErrDuplicate
	}
	if _, ok := s.db.handleIndex[user.AAHandle]; ok {
		return store.ErrDuplicate
	}
	s.db.users[user.ID] = user
	s.db.mobileIndex[user.Mobile] = user.ID
	s.db.handleIndex[user.AAHandle] = user.ID
	s.db.userOrder = append(s.db.userOrder, user.ID)
	return nil
}

func (s *UserStore) Update(_ context.Context, _ store.Execer, user models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	current, ok := s.db.users[user.ID]
	if !ok {
		return store.ErrNotFound
	}
	user.Mobile = current.Mobile
	user.AAHandle = current.AAHandle
	user.PinHash = current.PinHash
	user.CreatedAt = current.CreatedAt
	s.db.users[user.ID] = user
	return nil
}

func (s *UserStore) GetByID(_ context.Context, userID string) (models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	user, ok := s.db.users[userID]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) GetByMobile(ctx context.Context, mobile string) (models.User, error) {
	s.db.mu.RLock()
	id, ok := s.db.mobileIndex[mobile]
	s.db.mu.RUnlock()
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *UserStore) GetByAAHandle(ctx context.Context, handle string) (models.User, error) {
	s.db.mu.RLock()
	id, ok := s.db.handleIndex[handle]
	s.db.mu.RUnlock()
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *UserStore) List(_ context.Context, limit, offset int) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.User{}
	if offset < 0 || offset >= len(s.db.userOrder) {
		return out, nil
	}
	end := min(offset+limit, len(s.db.userOrder))
	for _, id := range s.db.userOrder[offset:end] {
		out = append(out, s.db.users[id])
	}
	return out, nil
}

func (s *UserStore) Count(context.Context) (int, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return len(s.db.users), nil
}

type AccountStore struct{ db *DB }

func NewAccountStore(db *DB) *AccountStore { return &AccountStore{db: db} }

func (s *AccountStore) Create(_ context.Context, _ store.Execer, account models.Account) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.accounts[account.ID]; ok {
		return store.ErrDuplicate
	}
	account.Transactions = nil
	s.db.accounts[account.ID] = account
	return nil
}

func (s *AccountStore) GetByID(_ context.Context, accountID string) (models.Account, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	account, ok := s.db.accounts[accountID]
	if !ok {
		return models.Account{}, store.ErrNotFound
	}
	return account, nil
}

func (s *AccountStore) GetByUserID(_ context.Context, userID string) ([]models.Account, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Account{}
	for _, account := range s.db.accounts {
		if account.UserID == userID {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OpeningDate.Equal(out[j].OpeningDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].OpeningDate.Before(out[j].OpeningDate)
	})
	return out, nil
}

type TransactionStore struct{ db *DB }

func NewTransactionStore(db *DB) *TransactionStore { return &TransactionStore{db: db} }

func (s *TransactionStore) InsertBatch(_ context.Context, _ store.Execer, txns []models.Transaction) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, txn := range txns {
		s.db.transactions[txn.AccountID] = append(s.db.transactions[txn.AccountID], txn)
	}
	return nil
}

func (s *TransactionStore) ListByAccounts(_ context.Context, accountIDs []string) ([]models.Transaction, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	ids := append([]string(nil), accountIDs...)
	sort.Strings(ids)
	var out []models.Transaction
	for _, id := range ids {
		out = append(out, s.db.transactions[id]...)
	}
	return out, nil
}

type InvestmentStore struct{ db *DB }

func NewInvestmentStore(db *DB) *InvestmentStore { return &InvestmentStore{db: db} }

func (s *InvestmentStore) Create(_ context.Context, _ store.Execer, inv models.Investment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.investments[inv.ID]; ok {
		return store.ErrDuplicate
	}
	s.db.investments[inv.ID] = inv
	return nil
}

func (s *InvestmentStore) GetByID(_ context.Context, investmentID string) (models.Investment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	inv, ok := s.db.investments[investmentID]
	if !ok {
		return models.Investment{}, store.ErrNotFound
	}
	return inv, nil
}

func (s *InvestmentStore) GetByUserID(_ context.Context, userID string) ([]models.Investment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Investment{}
	for _, inv := range s.db.investments {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

type LiabilityStore struct{ db *DB }

func NewLiabilityStore(db *DB) *LiabilityStore { return &LiabilityStore{db: db} }

func (s *LiabilityStore) Create(_ context.Context, _ store.Execer, l models.Liability) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.liabilities[l.ID]; ok {
		return store.ErrDuplicate
	}
	s.db.liabilities[l.ID] = l
	return nil
}

func (s *LiabilityStore) GetByID(_ context.Context, liabilityID string) (models.Liability, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	l, ok := s.db.liabilities[liabilityID]
	if !ok {
		return models.Liability{}, store.ErrNotFound
	}
	return l, nil
}

func (s *LiabilityStore) GetByUserID(_ context.Context, userID string) ([]models.Liability, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Liability{}
	for _, l := range s.db.liabilities {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

type AuditStore struct{ db *DB }

func NewAuditStore(db *DB) *AuditStore { return &AuditStore{db: db} }

func (s *AuditStore) Log(_ context.Context, _ store.Execer, actorID, action, entityType, entityID, data string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	entry := store.AuditEntry{
		ID:         "audit-" + strconv.Itoa(len(s.db.audit)+1),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Data:       data,
		CreatedAt:  s.db.now(),
	}
	if actorID != "" {
		entry.ActorUserID = &actorID
	}
	s.db.audit = append(s.db.audit, entry)
	return nil
}

// ListByEntity returns entries newest first.
func (s *AuditStore) ListByEntity(_ context.Context, entityType, entityID string, limit, offset int) ([]store.AuditEntry, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var matched []store.AuditEntry
	for i := len(s.db.audit) - 1; i >= 0; i-- {
		e := s.db.audit[i]
		if e.EntityType == entityType && e.EntityID == entityID {
			matched = append(matched, e)
		}
	}
	out := []store.AuditEntry{}
	if offset < 0 || offset >= len(matched) {
		return out, nil
	}
	return append(out, matched[offset:min(offset+limit, len(matched))]...), nil
}
