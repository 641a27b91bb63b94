package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"aggregator/internal/auth"
	"aggregator/internal/catalog"
	"aggregator/internal/db"
	"aggregator/internal/generator"
	"aggregator/internal/models"
	"aggregator/internal/random"
	"aggregator/internal/store"
	"aggregator/internal/websocket"

	"github.com/jmoiron/sqlx"
)

// DefaultPIN is the login PIN given to seeded users.
const DefaultPIN = "1234"

type ProvisioningService struct {
	txRunner db.TxRunner
	stores   Stores
	hub      BalanceHub
	seeder   *random.Seeder
	patterns catalog.PatternTable
	opts     generator.ProfileOptions
	now      func() time.Time
}

func NewProvisioningService(txRunner db.TxRunner, stores Stores, hub BalanceHub, seeder *random.Seeder, patterns catalog.PatternTable, opts generator.ProfileOptions) *ProvisioningService {
	return &ProvisioningService{
		txRunner: txRunner,
		stores:   stores,
		hub:      hub,
		seeder:   seeder,
		patterns: patterns,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *ProvisioningService) generator(src *random.Source) *generator.Generator {
	return generator.New(src, generator.WithClock(s.now), generator.WithPatterns(s.patterns))
}

// Provision generates accounts, ledgers, investments and liabilities for a
// stored user and announces each account once the write commits.
func (s *ProvisioningService) Provision(ctx context.Context, user models.User, actorID string) (generator.Profile, error) {
	profile, err := s.generator(s.seeder.Next()).Profile(user, s.opts)
	if err != nil {
		return generator.Profile{}, err
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.saveProfile(ctx, tx, profile, actorID)
	})
	if err != nil {
		return generator.Profile{}, err
	}
	for _, account := range profile.Accounts {
		s.hub.BroadcastBalance(user.ID, websocket.UpdateFor(account))
	}
	return profile, nil
}

// Seed fills an empty store with count generated users. Profiles are built in
// parallel, each from its own source, and written one user per transaction.
// A user whose mobile collides with an earlier one is skipped.
func (s *ProvisioningService) Seed(ctx context.Context, count int) (int, error) {
	if count < 0 {
		return 0, generator.ErrNegativeCount
	}
	existing, err := s.stores.Users.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		log.Printf("store already holds %d users, skipping seed", existing)
		return 0, nil
	}
	pinHash, err := auth.HashPIN(DefaultPIN)
	if err != nil {
		return 0, err
	}

	profiles := make([]generator.Profile, count)
	errs := make([]error, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		src := s.seeder.Next()
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := s.generator(src)
			user := g.User()
			user.PinHash = pinHash
			profiles[i], errs[i] = g.Profile(user, s.opts)
		}()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}

	created := 0
	var sample *models.User
	for i := range profiles {
		profile := profiles[i]
		err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
			if err := s.stores.Users.Create(ctx, tx, profile.User); err != nil {
				return err
			}
			return s.saveProfile(ctx, tx, profile, "")
		})
		if errors.Is(err, store.ErrDuplicate) {
			log.Printf("seed: skipping user %s: %v", profile.User.Mobile, err)
			continue
		}
		if err != nil {
			return created, err
		}
		created++
		if sample == nil {
			sample = &profiles[i].User
		}
	}
	if sample != nil {
		log.Printf("seeded %d users, sample login: aa_handle=%s mobile=%s pin=%s", created, sample.AAHandle, sample.Mobile, DefaultPIN)
	}
	return created, nil
}

func (s *ProvisioningService) saveProfile(ctx context.Context, tx store.Execer, profile generator.Profile, actorID string) error {
	txnCount := 0
	for _, account := range profile.Accounts {
		if err := s.stores.Accounts.Create(ctx, tx, account); err != nil {
			return err
		}
		if err := s.stores.Transactions.InsertBatch(ctx, tx, account.Transactions); err != nil {
			return err
		}
		txnCount += len(account.Transactions)
	}
	for _, inv := range profile.Investments {
		if err := s.stores.Investments.Create(ctx, tx, inv); err != nil {
			return err
		}
	}
	for _, l := range profile.Liabilities {
		if err := s.stores.Liabilities.Create(ctx, tx, l); err != nil {
			return err
		}
	}
	data, _ := json.Marshal(map[string]int{
		"accounts":     len(profile.Accounts),
		"transactions": txnCount,
		"investments":  len(profile.Investments),
		"liabilities":  len(profile.Liabilities),
	})
	return s.stores.Audit.Log(ctx, tx, actorID, "profile.provision", "user", profile.User.ID, string(data))
}
