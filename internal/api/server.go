// Package api exposes the quest and crafting services over HTTP, with the
// request shapes the game client sends.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/crafting"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/quest"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// InventoryStore loads and saves whole inventories.
type InventoryStore interface {
	LoadOrCreateInventory(ctx context.Context, accountID string) (*inventory.Inventory, error)
	SaveInventory(ctx context.Context, inv *inventory.Inventory, msgs ...gamedata.Message) error
	Ping(ctx context.Context) error
}

// Notifier is told when an account's inventory was saved.
type Notifier interface {
	InventoryChanged(accountID string)
}

type Config struct {
	Store          InventoryStore
	Quests         *quest.Service
	Crafting       *crafting.Service
	Notifier       Notifier
	Websocket      http.Handler
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

type Server struct {
	store          InventoryStore
	quests         *quest.Service
	crafting       *crafting.Service
	notifier       Notifier
	websocket      http.Handler
	log            *zap.Logger
	errorHandler   *ErrorHandler
	locks          *accountLocks
	requestTimeout time.Duration
	startTime      time.Time
}

func NewServer(cfg Config) *Server {
	log := cfg.Logger.Named("api")
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Server{
		store:          cfg.Store,
		quests:         cfg.Quests,
		crafting:       cfg.Crafting,
		notifier:       cfg.Notifier,
		websocket:      cfg.Websocket,
		log:            log,
		errorHandler:   NewErrorHandler(log),
		locks:          newAccountLocks(),
		requestTimeout: timeout,
		startTime:      time.Now(),
	}
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.errorHandler.RecoveryHandler)

	r.Get("/health", s.handleHealthCheck)
	if s.websocket != nil {
		// Websocket connections outlive the request timeout.
		r.Handle("/ws", s.websocket)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.requestTimeout))

		r.Route("/api", func(r chi.Router) {
			r.Get("/inventory.php", s.handleInventory)
			r.Post("/startRecipe.php", s.handleStartRecipe)
			r.Post("/updateQuest.php", s.handleUpdateQuest)
			r.Post("/giveKeyChainTriggeredItems.php", s.handleGiveKeyChainTriggeredItems)
			r.Post("/giveKeyChainTriggeredMessage.php", s.handleGiveKeyChainTriggeredMessage)
			r.Post("/gildWeapon.php", s.handleGildWeapon)
		})
		r.Route("/custom", func(r chi.Router) {
			r.Get("/completeQuest", s.handleCompleteQuest)
		})
	})

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("write response", zap.Error(err))
	}
}

// decodeBody reads the JSON request body into dst. The client posts JSON
// with arbitrary content types, so the header is not checked.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return simerr.InvalidRequestf("malformed request body: %v", err)
	}
	return nil
}

// mutation changes inv. Quest work goes through quests, whose messages are
// held until the inventory is saved.
type mutation func(ctx context.Context, inv *inventory.Inventory, quests *quest.Service) (any, error)

// withInventory runs fn against the caller's inventory while holding the
// account's lock. The inventory and any messages fn sent are saved together,
// and only when fn succeeds; subscribers are then told to refetch.
func (s *Server) withInventory(w http.ResponseWriter, r *http.Request, fn mutation) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		s.errorHandler.HandleError(w, r, simerr.InvalidRequestf("missing accountId"))
		return
	}

	unlock := s.locks.lock(accountID)
	defer unlock()

	ctx := r.Context()
	inv, err := s.store.LoadOrCreateInventory(ctx, accountID)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}

	outbox := quest.NewOutbox(accountID)
	var quests *quest.Service
	if s.quests != nil {
		quests = s.quests.WithMessenger(outbox)
	}

	resp, err := fn(ctx, inv, quests)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}

	if err := s.store.SaveInventory(ctx, inv, outbox.Messages()...); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	if s.notifier != nil {
		s.notifier.InventoryChanged(accountID)
	}
	s.writeJSON(w, http.StatusOK, resp)
}
