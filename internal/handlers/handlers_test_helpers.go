package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/auth"
	"aggregator/internal/config"
	"aggregator/internal/middleware"
	"aggregator/internal/models"
	"aggregator/internal/services"
	"aggregator/internal/websocket"

	"github.com/go-chi/chi/v5"
)

type stubProfileService struct {
	registerFn   func(ctx context.Context, req services.RegisterRequest) (models.User, error)
	loginFn      func(ctx context.Context, identifier, pin string) (models.User, error)
	profileFn    func(ctx context.Context, userID string) (models.User, error)
	listUsersFn  func(ctx context.Context, limit, offset int) ([]models.User, int, error)
	submitFormFn func(ctx context.Context, userID string, update services.ProfileUpdate) (models.User, bool, error)
}

func (s stubProfileService) Register(ctx context.Context, req services.RegisterRequest) (models.User, error) {
	return s.registerFn(ctx, req)
}

func (s stubProfileService) Login(ctx context.Context, identifier, pin string) (models.User, error) {
	return s.loginFn(ctx, identifier, pin)
}

func (s stubProfileService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.profileFn(ctx, userID)
}

func (s stubProfileService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	return s.listUsersFn(ctx, limit, offset)
}

func (s stubProfileService) SubmitForm(ctx context.Context, userID string, update services.ProfileUpdate) (models.User, bool, error) {
	return s.submitFormFn(ctx, userID, update)
}

type stubAggregationService struct {
	accountsFn        func(ctx context.Context, userID string) ([]models.Account, error)
	accountFn         func(ctx context.Context, userID, accountID string) (models.Account, error)
	netWorthFn        func(ctx context.Context, userID string) (aggregation.NetWorth, error)
	accountsSummaryFn func(ctx context.Context, userID string) (aggregation.AccountsSummary, error)
	transactionsFn    func(ctx context.Context, userID string, filter aggregation.TransactionFilter) (aggregation.TransactionSummary, error)
	liabilitiesFn     func(ctx context.Context, userID string) (aggregation.LiabilitiesSummary, error)
	investmentsFn     func(ctx context.Context, userID string) (aggregation.InvestmentsSummary, error)
	monthlyFn         func(ctx context.Context, userID string, months int) ([]aggregation.MonthSpending, error)
	incomeFn          func(ctx context.Context, userID string) ([]aggregation.IncomeSource, error)
}

func (s stubAggregationService) Accounts(ctx context.Context, userID string) ([]models.Account, error) {
	return s.accountsFn(ctx, userID)
}

func (s stubAggregationService) Account(ctx context.Context, userID, accountID string) (models.Account, error) {
	return s.accountFn(ctx, userID, accountID)
}

func (s stubAggregationService) NetWorth(ctx context.Context, userID string) (aggregation.NetWorth, error) {
	return s.netWorthFn(ctx, userID)
}

func (s stubAggregationService) AccountsSummary(ctx context.Context, userID string) (aggregation.AccountsSummary, error) {
	return s.accountsSummaryFn(ctx, userID)
}

func (s stubAggregationService) Transactions(ctx context.Context, userID string, filter aggregation.TransactionFilter) (aggregation.TransactionSummary, error) {
	return s.transactionsFn(ctx, userID, filter)
}

func (s stubAggregationService) Liabilities(ctx context.Context, userID string) (aggregation.LiabilitiesSummary, error) {
	return s.liabilitiesFn(ctx, userID)
}

func (s stubAggregationService) Investments(ctx context.Context, userID string) (aggregation.InvestmentsSummary, error) {
	return s.investmentsFn(ctx, userID)
}

func (s stubAggregationService) MonthlySpending(ctx context.Context, userID string, months int) ([]aggregation.MonthSpending, error) {
	return s.monthlyFn(ctx, userID, months)
}

func (s stubAggregationService) IncomeSources(ctx context.Context, userID string) ([]aggregation.IncomeSource, error) {
	return s.incomeFn(ctx, userID)
}

func newTestHandler(profiles ProfileService, aggregates AggregationService) *Handler {
	cfg := config.Config{
		AppEnv:         "test",
		Port:           "0",
		StoreDriver:    config.DriverMemory,
		JWTSecret:      "secret",
		TokenTTL:       time.Minute,
		AllowedOrigins: "*",
	}
	return New(cfg, profiles, aggregates, websocket.NewHub())
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// serveWithAuth runs handler behind the auth middleware with a fresh token.
func serveWithAuth(t *testing.T, handler http.HandlerFunc, req *http.Request, userID string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.GenerateToken("secret", userID, time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	rr := httptest.NewRecorder()
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.Auth("secret")(handler).ServeHTTP(rr, req)
	return rr
}
