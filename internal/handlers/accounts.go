package handlers

import (
	"errors"
	"net/http"

	"aggregator/internal/middleware"
	"aggregator/internal/models"
	"aggregator/internal/report"
	"aggregator/internal/services"

	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type discoveredAccount struct {
	ID              string               `json:"id"`
	FipName         string               `json:"fip_name"`
	AccountType     models.AccountType   `json:"account_type"`
	MaskedAccNumber string               `json:"masked_acc_number"`
	Status          models.AccountStatus `json:"status"`
}

// DiscoverAccounts lists the user's linkable accounts without balances.
func (h *Handler) DiscoverAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	accounts, err := h.aggregates.Accounts(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to discover accounts")
		return
	}
	out := make([]discoveredAccount, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, discoveredAccount{
			ID:              acc.ID,
			FipName:         acc.FipName,
			AccountType:     acc.AccountType,
			MaskedAccNumber: acc.MaskedAccNumber,
			Status:          acc.Status,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"accounts": out,
	})
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	accounts, err := h.aggregates.Accounts(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load accounts")
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (h *Handler) loadAccount(w http.ResponseWriter, r *http.Request) (models.Account, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return models.Account{}, false
	}
	account, err := h.aggregates.Account(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			respondError(w, http.StatusNotFound, "account not found")
			return models.Account{}, false
		}
		respondError(w, http.StatusInternalServerError, "unable to load account")
		return models.Account{}, false
	}
	return account, true
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.loadAccount(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (h *Handler) AccountStatement(w http.ResponseWriter, r *http.Request) {
	account, ok := h.loadAccount(w, r)
	if !ok {
		return
	}
	data, err := report.StatementXLSX(account)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to render statement")
		return
	}
	respondFile(w, xlsxContentType, "statement-"+account.MaskedAccNumber+".xlsx", data)
}
