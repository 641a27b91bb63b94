package handlers

import (
	"net/http"
)

const defaultUsersPage = 50

// ListUsers pages through registered users for the demo login picker.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := parseInt(query.Get("limit"), defaultUsersPage)
	offset := parseInt(query.Get("offset"), 0)
	users, total, err := h.profiles.ListUsers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load users")
		return
	}
	type userLine struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
		AAHandle string `json:"aa_handle"`
	}
	lines := make([]userLine, 0, len(users))
	for _, u := range users {
		lines = append(lines, userLine{ID: u.ID, Name: u.Name, Mobile: u.Mobile, AAHandle: u.AAHandle})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"users":  lines,
	})
}
