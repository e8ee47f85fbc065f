// Package notify pushes inventory-changed events to connected clients over
// websockets.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// inventoryChanged is the event clients react to by refetching inventory.
var inventoryChanged = mustMarshal(map[string]bool{"update_inventory": true})

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) write(data []byte, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(timeout))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks websocket subscribers per account.
type Hub struct {
	log          *zap.Logger
	writeTimeout time.Duration
	upgrader     websocket.Upgrader

	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub(log *zap.Logger, writeTimeout time.Duration) *Hub {
	return &Hub{
		log:          log.Named("notify"),
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the subscription open until the
// client disconnects. The account is taken from the accountId query parameter.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		http.Error(w, "missing accountId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("upgrade failed", zap.String("accountId", accountID), zap.Error(err))
		return
	}

	sub := &subscriber{conn: conn}
	h.add(accountID, sub)
	defer h.remove(accountID, sub)

	// Clients never send anything meaningful; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Subscribers returns how many connections accountID has open.
func (h *Hub) Subscribers(accountID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[accountID])
}

// InventoryChanged tells every subscriber of accountID to refetch its
// inventory. Delivery is best effort; a failed write drops the subscriber.
func (h *Hub) InventoryChanged(accountID string) {
	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs[accountID]))
	for sub := range h.subs[accountID] {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		if err := sub.write(inventoryChanged, h.writeTimeout); err != nil {
			h.log.Debug("dropping subscriber", zap.String("accountId", accountID), zap.Error(err))
			h.remove(accountID, sub)
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for accountID, subs := range h.subs {
		for sub := range subs {
			sub.conn.Close()
		}
		delete(h.subs, accountID)
	}
}

func (h *Hub) add(accountID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[accountID] == nil {
		h.subs[accountID] = make(map[*subscriber]struct{})
	}
	h.subs[accountID][sub] = struct{}{}
	h.log.Debug("subscribed", zap.String("accountId", accountID))
}

func (h *Hub) remove(accountID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subs[accountID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subs, accountID)
	}
	sub.conn.Close()
	h.log.Debug("unsubscribed", zap.String("accountId", accountID))
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
