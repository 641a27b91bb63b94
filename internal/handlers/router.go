package handlers

import (
	"net/http"

	"aggregator/internal/config"
	"aggregator/internal/middleware"
	"aggregator/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg        config.Config
	profiles   ProfileService
	aggregates AggregationService
	hub        *websocket.Hub
}

func New(cfg config.Config, profiles ProfileService, aggregates AggregationService, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:        cfg,
		profiles:   profiles,
		aggregates: aggregates,
		hub:        hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	requireAuth := middleware.Auth(h.cfg.JWTSecret)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(requireAuth).Get("/profile", h.Profile)
		r.With(requireAuth).Get("/users", h.ListUsers)
		r.With(requireAuth).Post("/form", h.SubmitForm)
	})
	router.Route("/accounts", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/discover", h.DiscoverAccounts)
		r.Get("/", h.ListAccounts)
		r.Get("/{id}", h.GetAccount)
		r.Get("/{id}/statement.xlsx", h.AccountStatement)
	})
	router.Route("/aggregated", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/net-worth", h.NetWorth)
		r.Get("/accounts-summary", h.AccountsSummary)
		r.Get("/transactions", h.Transactions)
		r.Get("/liabilities", h.Liabilities)
		r.Get("/investments", h.Investments)
		r.Get("/monthly-spending", h.MonthlySpending)
		r.Get("/monthly-spending/chart.png", h.MonthlySpendingChart)
		r.Get("/income-sources", h.IncomeSources)
	})
	router.Get("/ws/balances", h.WSBalances)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
