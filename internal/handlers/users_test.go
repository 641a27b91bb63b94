package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"aggregator/internal/models"
)

func TestListUsers(t *testing.T) {
	var gotLimit, gotOffset int
	handler := newTestHandler(stubProfileService{
		listUsersFn: func(_ context.Context, limit, offset int) ([]models.User, int, error) {
			gotLimit, gotOffset = limit, offset
			return []models.User{{ID: "u1", Name: "Asha", Mobile: "9123456789", AAHandle: "9123456789@anumati", PinHash: "x"}}, 7, nil
		},
	}, stubAggregationService{})

	rr := serveWithAuth(t, handler.ListUsers, newRequest(http.MethodGet, "/auth/users?limit=5&offset=2", ""), "u1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotLimit != 5 || gotOffset != 2 {
		t.Fatalf("expected limit 5 offset 2, got %d %d", gotLimit, gotOffset)
	}
	var payload struct {
		Total int              `json:"total"`
		Users []map[string]any `json:"users"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Total != 7 || len(payload.Users) != 1 || payload.Users[0]["aa_handle"] != "9123456789@anumati" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
