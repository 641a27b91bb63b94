package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"aggregator/internal/models"
	"aggregator/internal/store"
)

func TestUserStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(New())
	u := models.User{ID: "u1", Mobile: "9876543210", AAHandle: "9876543210@anumati"}
	if err := users.Create(ctx, nil, u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dup := models.User{ID: "u2", Mobile: "9876543210", AAHandle: "other@anumati"}
	if err := users.Create(ctx, nil, dup); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	got, err := users.GetByAAHandle(ctx, "9876543210@anumati")
	if err != nil || got.ID != "u1" {
		t.Fatalf("unexpected lookup: %#v %v", got, err)
	}
	if _, err := users.GetByMobile(ctx, "9999999999"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreUpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(New())
	_ = users.Create(ctx, nil, models.User{ID: "u1", Mobile: "9876543210", AAHandle: "9876543210@anumati", PinHash: "h"})
	if err := users.Update(ctx, nil, models.User{ID: "u1", Name: "Ravi", Mobile: "changed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := users.GetByID(ctx, "u1")
	if got.Name != "Ravi" || got.Mobile != "9876543210" || got.PinHash != "h" {
		t.Fatalf("unexpected user after update: %#v", got)
	}
	if err := users.Update(ctx, nil, models.User{ID: "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreListPagesInInsertOrder(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(New())
	for _, id := range []string{"a", "b", "c"} {
		_ = users.Create(ctx, nil, models.User{ID: id, Mobile: id, AAHandle: id + "@anumati"})
	}
	page, _ := users.List(ctx, 2, 1)
	if len(page) != 2 || page[0].ID != "b" || page[1].ID != "c" {
		t.Fatalf("unexpected page: %#v", page)
	}
	if empty, _ := users.List(ctx, 2, 10); len(empty) != 0 {
		t.Fatalf("expected empty page")
	}
	if n, _ := users.Count(ctx); n != 3 {
		t.Fatalf("expected 3 users, got %d", n)
	}
}

func TestAccountsAndTransactions(t *testing.T) {
	ctx := context.Background()
	db := New()
	accounts := NewAccountStore(db)
	txns := NewTransactionStore(db)
	opened := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_ = accounts.Create(ctx, nil, models.Account{ID: "acc-2", UserID: "u1", OpeningDate: opened})
	_ = accounts.Create(ctx, nil, models.Account{ID: "acc-1", UserID: "u1", OpeningDate: opened.AddDate(1, 0, 0)})
	_ = accounts.Create(ctx, nil, models.Account{ID: "acc-3", UserID: "u2", OpeningDate: opened})
	if err := accounts.Create(ctx, nil, models.Account{ID: "acc-1"}); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	list, _ := accounts.GetByUserID(ctx, "u1")
	if len(list) != 2 || list[0].ID != "acc-2" {
		t.Fatalf("unexpected accounts: %#v", list)
	}

	_ = txns.InsertBatch(ctx, nil, []models.Transaction{{ID: "t1", AccountID: "acc-1"}, {ID: "t2", AccountID: "acc-1"}})
	_ = txns.InsertBatch(ctx, nil, []models.Transaction{{ID: "t3", AccountID: "acc-2"}})
	got, _ := txns.ListByAccounts(ctx, []string{"acc-2", "acc-1"})
	if len(got) != 3 || got[0].ID != "t1" || got[1].ID != "t2" || got[2].ID != "t3" {
		t.Fatalf("unexpected transactions: %#v", got)
	}
}

func TestInvestmentsAndLiabilities(t *testing.T) {
	ctx := context.Background()
	db := New()
	investments := NewInvestmentStore(db)
	liabilities := NewLiabilityStore(db)
	_ = investments.Create(ctx, nil, models.Investment{ID: "i1", UserID: "u1"})
	_ = liabilities.Create(ctx, nil, models.Liability{ID: "l1", UserID: "u1"})
	if inv, err := investments.GetByID(ctx, "i1"); err != nil || inv.UserID != "u1" {
		t.Fatalf("unexpected investment: %#v %v", inv, err)
	}
	if _, err := liabilities.GetByID(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if list, _ := liabilities.GetByUserID(ctx, "u2"); len(list) != 0 {
		t.Fatalf("expected no liabilities for u2")
	}
}

func TestAuditStore(t *testing.T) {
	ctx := context.Background()
	audit := NewAuditStore(New())
	_ = audit.Log(ctx, nil, "", "profile.provision", "user", "u1", "{}")
	_ = audit.Log(ctx, nil, "u1", "profile.update", "user", "u1", "{}")
	_ = audit.Log(ctx, nil, "u2", "profile.update", "user", "u2", "{}")
	entries, _ := audit.ListByEntity(ctx, "user", "u1", 10, 0)
	if len(entries) != 2 || entries[0].Action != "profile.update" || entries[1].ActorUserID != nil {
		t.Fatalf("unexpected entries: %#v", entries)
	}
}

func TestConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	db := New()
	txns := NewTransactionStore(db)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = txns.InsertBatch(ctx, nil, []models.Transaction{{AccountID: "acc"}})
		}()
	}
	wg.Wait()
	got, _ := txns.ListByAccounts(ctx, []string{"acc"})
	if len(got) != 20 {
		t.Fatalf("expected 20 transactions, got %d", len(got))
	}
}
