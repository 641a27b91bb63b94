package handlers

import (
	"errors"
	"net/http"

	"aggregator/internal/aggregation"
	"aggregator/internal/middleware"
	"aggregator/internal/report"
	"aggregator/internal/services"
)

func (h *Handler) NetWorth(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	netWorth, err := h.aggregates.NetWorth(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to compute net worth")
		return
	}
	respondJSON(w, http.StatusOK, netWorth)
}

func (h *Handler) AccountsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	summary, err := h.aggregates.AccountsSummary(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to summarize accounts")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	filter, err := parseTransactionFilter(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := h.aggregates.Transactions(r.Context(), userID, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load transactions")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Liabilities(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	summary, err := h.aggregates.Liabilities(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load liabilities")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Investments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	summary, err := h.aggregates.Investments(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load investments")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) monthlySpending(w http.ResponseWriter, r *http.Request) ([]aggregation.MonthSpending, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	months := parseInt(r.URL.Query().Get("months"), aggregation.DefaultMonths)
	spending, err := h.aggregates.MonthlySpending(r.Context(), userID, months)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load spending")
		return nil, false
	}
	return spending, true
}

func (h *Handler) MonthlySpending(w http.ResponseWriter, r *http.Request) {
	spending, ok := h.monthlySpending(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, spending)
}

func (h *Handler) MonthlySpendingChart(w http.ResponseWriter, r *http.Request) {
	spending, ok := h.monthlySpending(w, r)
	if !ok {
		return
	}
	png, err := report.SpendingChartPNG(spending)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			respondError(w, http.StatusNotFound, "no spending in range")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to render chart")
		return
	}
	respondFile(w, "image/png", "", png)
}

func (h *Handler) IncomeSources(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sources, err := h.aggregates.IncomeSources(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load income sources")
		return
	}
	respondJSON(w, http.StatusOK, sources)
}
