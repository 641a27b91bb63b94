package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWSBalancesMissingToken(t *testing.T) {
	handler := newTestHandler(stubProfileService{}, stubAggregationService{})
	rr := httptest.NewRecorder()
	handler.WSBalances(rr, newRequest(http.MethodGet, "/ws/balances", ""))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestWSBalancesInvalidToken(t *testing.T) {
	handler := newTestHandler(stubProfileService{}, stubAggregationService{})
	rr := httptest.NewRecorder()
	handler.WSBalances(rr, newRequest(http.MethodGet, "/ws/balances?token=bad", ""))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
