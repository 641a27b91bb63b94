package handlers

import (
	"net/http"

	"aggregator/internal/auth"
	"aggregator/internal/middleware"
	"aggregator/internal/websocket"
)

// WSBalances streams provisioning events. Browsers cannot set headers on a
// websocket handshake, so the token may also come from the query string.
func (h *Handler) WSBalances(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token, _ = middleware.BearerToken(r)
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub, claims.UserID)
}
