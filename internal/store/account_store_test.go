package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

func TestAccountStoreCreate(t *testing.T) {
	ctx := context.Background()
	account := models.Account{
		ID:             "acc-1",
		UserID:         "user-1",
		Type:           models.CategoryDeposit,
		AccountType:    models.AccountSavings,
		CurrentBalance: decimal.RequireFromString("1250.50"),
		Currency:       models.CurrencyINR,
		Profile:        models.AccountProfile{HolderType: "SINGLE"},
	}
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO accounts") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 17 {
				t.Fatalf("expected 17 args, got %d", len(args))
			}
			if args[0] != "acc-1" || args[1] != "user-1" || args[9] != models.AccountSavings {
				t.Fatalf("unexpected args: %#v", args)
			}
			if !args[10].(decimal.Decimal).Equal(decimal.RequireFromString("1250.5")) {
				t.Fatalf("unexpected balance arg: %#v", args[10])
			}
			profile, err := args[15].(jsonColumn[models.AccountProfile]).Value()
			if err != nil || !strings.Contains(profile.(string), `"holder_type":"SINGLE"`) {
				t.Fatalf("unexpected profile json: %v %v", profile, err)
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewAccountStore(stubDB{})
	if err := store.Create(ctx, execer, account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountStoreGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "FROM accounts WHERE id = $1") {
				t.Fatalf("unexpected query: %s", query)
			}
			row := dest.(*accountRow)
			*row = accountRow{ID: "acc-1", AccountType: "CURRENT", Type: "DEPOSIT"}
			row.Summary.V.Facility = "OD"
			return nil
		},
	})
	account, err := store.GetByID(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountType != models.AccountCurrent || account.Type != models.CategoryDeposit || account.Summary.Facility != "OD" {
		t.Fatalf("unexpected account: %#v", account)
	}
}

func TestAccountStoreGetByIDNotFound(t *testing.T) {
	store := NewAccountStore(stubDB{
		getFn: func(context.Context, any, string, ...any) error {
			return sql.ErrNoRows
		},
	})
	if _, err := store.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountStoreGetByUserID(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "WHERE user_id = $1") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "user-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*[]accountRow) = []accountRow{{ID: "acc-1"}, {ID: "acc-2"}}
			return nil
		},
	})
	accounts, err := store.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 || accounts[1].ID != "acc-2" {
		t.Fatalf("unexpected accounts: %#v", accounts)
	}
}
