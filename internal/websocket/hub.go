package websocket

import (
	"encoding/json"
	"sync"

	"aggregator/internal/models"

	"github.com/shopspring/decimal"
)

const EventAccountProvisioned = "account.provisioned"

// BalanceUpdate announces an account and its reconciled closing balance.
type BalanceUpdate struct {
	AccountID       string             `json:"account_id"`
	FipName         string             `json:"fip_name"`
	AccountType     models.AccountType `json:"account_type"`
	MaskedAccNumber string             `json:"masked_acc_number"`
	Balance         decimal.Decimal    `json:"balance"`
	Currency        string             `json:"currency"`
}

type Event struct {
	Type string        `json:"type"`
	Data BalanceUpdate `json:"data"`
}

func UpdateFor(account models.Account) BalanceUpdate {
	return BalanceUpdate{
		AccountID:       account.ID,
		FipName:         account.FipName,
		AccountType:     account.AccountType,
		MaskedAccNumber: account.MaskedAccNumber,
		Balance:         account.CurrentBalance,
		Currency:        account.Currency,
	}
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// BroadcastBalance sends an account.provisioned event to every connection of
// userID. Slow clients with a full buffer miss the event.
func (h *Hub) BroadcastBalance(userID string, update BalanceUpdate) {
	payload, err := json.Marshal(Event{Type: EventAccountProvisioned, Data: update})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		select {
		case client.send <- payload:
		default:
		}
	}
}
