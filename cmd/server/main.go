package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/catalog"
	"aggregator/internal/config"
	"aggregator/internal/db"
	"aggregator/internal/generator"
	"aggregator/internal/handlers"
	"aggregator/internal/random"
	"aggregator/internal/services"
	"aggregator/internal/store"
	"aggregator/internal/store/memory"
	"aggregator/internal/websocket"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	patterns, err := catalog.LoadPatterns(cfg.PatternsFile)
	if err != nil {
		log.Fatalf("failed to load transaction patterns: %v", err)
	}

	ctx := context.Background()
	var (
		stores   services.Stores
		txRunner db.TxRunner
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		mdb := memory.New()
		stores = services.Stores{
			Users:        memory.NewUserStore(mdb),
			Accounts:     memory.NewAccountStore(mdb),
			Transactions: memory.NewTransactionStore(mdb),
			Investments:  memory.NewInvestmentStore(mdb),
			Liabilities:  memory.NewLiabilityStore(mdb),
			Audit:        memory.NewAuditStore(mdb),
		}
		txRunner = db.NoTxRunner{}
	default:
		database, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultPoolOptions())
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer database.Close()
		stores = services.Stores{
			Users:        store.NewUserStore(database),
			Accounts:     store.NewAccountStore(database),
			Transactions: store.NewTransactionStore(database),
			Investments:  store.NewInvestmentStore(database),
			Liabilities:  store.NewLiabilityStore(database),
			Audit:        store.NewAuditStore(database),
		}
		txRunner = db.NewTxRunner(database)
	}

	hub := websocket.NewHub()
	provisioning := services.NewProvisioningService(txRunner, stores, hub, random.NewSeeder(cfg.GeneratorSeed), patterns, generator.ProfileOptions{
		MonthsOfHistory: cfg.MonthsOfHistory,
		PerMonth:        cfg.PerMonth(),
	})
	seeded, err := provisioning.Seed(ctx, cfg.UsersCount)
	if err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	log.Printf("seeded %d users into %s store", seeded, cfg.StoreDriver)

	profiles := services.NewProfileService(txRunner, stores.Users, stores.Accounts, stores.Audit, provisioning)
	aggregates := services.NewAggregationService(stores, aggregation.MetalRates{
		GoldPerGram:   cfg.GoldRatePerGram,
		SilverPerGram: cfg.SilverRatePerGram,
	})

	handler := handlers.New(cfg, profiles, aggregates, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("aggregator API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
