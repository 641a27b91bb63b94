package services

import (
	"context"
	"errors"
	"testing"

	"aggregator/internal/auth"
	"aggregator/internal/db"
	"aggregator/internal/generator"
	"aggregator/internal/models"
)

func newProfileService(backend memoryBackend, provisioner Provisioner) *ProfileService {
	svc := NewProfileService(db.NoTxRunner{}, backend.Users, backend.Accounts, backend.Audit, provisioner)
	svc.now = clock
	return svc
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Name:   "Asha Verma",
		Mobile: "9123456789",
		PIN:    "4321",
		Email:  "asha@example.com",
		PAN:    "abcde1234f",
		DOB:    fixedNow.AddDate(-29, 0, 0),
		City:   "Pune",
	}
}

func TestRegisterCreatesAndProvisions(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	var provisioned models.User
	svc := newProfileService(backend, stubProvisioner{
		provisionFn: func(ctx context.Context, user models.User, actorID string) (generator.Profile, error) {
			provisioned = user
			if actorID != user.ID {
				t.Fatalf("expected user to provision themselves, got actor %q", actorID)
			}
			return generator.Profile{User: user}, nil
		},
	})

	user, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.AAHandle != "9123456789@anumati" || user.PAN != "ABCDE1234F" {
		t.Fatalf("unexpected user: %#v", user)
	}
	if provisioned.ID != user.ID {
		t.Fatalf("provisioner was not called for the new user")
	}
	stored, err := backend.Users.GetByMobile(ctx, "9123456789")
	if err != nil || !auth.CheckPIN(stored.PinHash, "4321") {
		t.Fatalf("stored user missing or PIN not hashed: %v", err)
	}
	entries, _ := backend.audit.ListByEntity(ctx, "user", user.ID, 10, 0)
	if len(entries) != 1 || entries[0].Action != "user.register" {
		t.Fatalf("unexpected audit entries: %#v", entries)
	}
}

func TestRegisterRejectsTakenMobile(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	svc := newProfileService(backend, stubProvisioner{})
	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, registerRequest()); !errors.Is(err, ErrMobileTaken) {
		t.Fatalf("expected ErrMobileTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	svc := newProfileService(backend, stubProvisioner{})
	registered, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, identifier := range []string{"9123456789", "9123456789@anumati"} {
		user, err := svc.Login(ctx, identifier, "4321")
		if err != nil || user.ID != registered.ID {
			t.Fatalf("login with %s failed: %v", identifier, err)
		}
	}
	if _, err := svc.Login(ctx, "9123456789", "0000"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong PIN, got %v", err)
	}
	if _, err := svc.Login(ctx, "9000000000", "4321"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc := newProfileService(newMemoryBackend(), stubProvisioner{})
	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmitFormUpdatesAndProvisionsOnce(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	user := models.User{ID: "user-1", Name: "Old Name", Mobile: "9876543210", AAHandle: "9876543210@anumati"}
	_ = backend.Users.Create(ctx, nil, user)

	calls := 0
	svc := newProfileService(backend, stubProvisioner{
		provisionFn: func(ctx context.Context, u models.User, actorID string) (generator.Profile, error) {
			calls++
			account := models.Account{ID: "acc-1", UserID: u.ID}
			return generator.Profile{User: u}, backend.Accounts.Create(ctx, nil, account)
		},
	})

	metals := models.PreciousMetals{Gold: 20}
	updated, provisioned, err := svc.SubmitForm(ctx, user.ID, ProfileUpdate{Name: "New Name", PreciousMetals: &metals})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !provisioned || calls != 1 {
		t.Fatalf("expected lazy provisioning, got provisioned=%v calls=%d", provisioned, calls)
	}
	if updated.Name != "New Name" || updated.PreciousMetals.Gold != 20 || updated.Mobile != user.Mobile {
		t.Fatalf("unexpected user: %#v", updated)
	}

	_, provisioned, err = svc.SubmitForm(ctx, user.ID, ProfileUpdate{City: "Chennai"})
	if err != nil || provisioned || calls != 1 {
		t.Fatalf("second submit should not provision: provisioned=%v calls=%d err=%v", provisioned, calls, err)
	}

	entries, _ := backend.audit.ListByEntity(ctx, "user", user.ID, 10, 0)
	if len(entries) != 2 {
		t.Fatalf("expected two profile.update entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Action != "profile.update" {
			t.Fatalf("unexpected action %q", e.Action)
		}
	}
}

func TestSubmitFormWithoutChangesSkipsAudit(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	_ = backend.Users.Create(ctx, nil, models.User{ID: "user-1", Name: "Same", Mobile: "9876543210", AAHandle: "9876543210@anumati"})
	_ = backend.Accounts.Create(ctx, nil, models.Account{ID: "acc-1", UserID: "user-1"})
	svc := newProfileService(backend, stubProvisioner{})

	if _, _, err := svc.SubmitForm(ctx, "user-1", ProfileUpdate{Name: "Same"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, _ := backend.audit.ListByEntity(ctx, "user", "user-1", 10, 0)
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries, got %d", len(entries))
	}
}
