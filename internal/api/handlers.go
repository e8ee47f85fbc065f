package api

import (
	"context"
	"net/http"

	"github.com/MJE43/lotus-sim-go/internal/crafting"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/quest"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

type updateQuestRequest struct {
	QuestKeys []inventory.QuestKey `json:"QuestKeys"`
}

type updateQuestResponse struct {
	MissionRewards   []any              `json:"MissionRewards"`
	InventoryChanges *inventory.Changes `json:"inventoryChanges,omitempty"`
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		s.errorHandler.HandleError(w, r, simerr.InvalidRequestf("missing accountId"))
		return
	}
	unlock := s.locks.lock(accountID)
	defer unlock()

	inv, err := s.store.LoadOrCreateInventory(r.Context(), accountID)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, inv)
}

func (s *Server) handleStartRecipe(w http.ResponseWriter, r *http.Request) {
	var req crafting.StartRecipeRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.withInventory(w, r, func(_ context.Context, inv *inventory.Inventory, _ *quest.Service) (any, error) {
		return s.crafting.StartRecipe(inv, req)
	})
}

func (s *Server) handleUpdateQuest(w http.ResponseWriter, r *http.Request) {
	var req updateQuestRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.withInventory(w, r, func(ctx context.Context, inv *inventory.Inventory, quests *quest.Service) (any, error) {
		changes, err := quests.UpdateQuestKey(ctx, inv, req.QuestKeys)
		if err != nil {
			return nil, err
		}
		resp := updateQuestResponse{MissionRewards: []any{}}
		if !changes.IsEmpty() {
			resp.InventoryChanges = changes
		}
		return resp, nil
	})
}

func (s *Server) handleGiveKeyChainTriggeredItems(w http.ResponseWriter, r *http.Request) {
	var kc quest.KeyChainInfo
	if err := decodeBody(r, &kc); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.withInventory(w, r, func(_ context.Context, inv *inventory.Inventory, quests *quest.Service) (any, error) {
		return quests.GiveKeyChainItem(inv, kc)
	})
}

func (s *Server) handleGiveKeyChainTriggeredMessage(w http.ResponseWriter, r *http.Request) {
	var kc quest.KeyChainInfo
	if err := decodeBody(r, &kc); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.withInventory(w, r, func(ctx context.Context, inv *inventory.Inventory, quests *quest.Service) (any, error) {
		return quests.GiveKeyChainMessage(ctx, inv, kc)
	})
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	questKey := r.URL.Query().Get("questKey")
	if questKey == "" {
		s.errorHandler.HandleError(w, r, simerr.InvalidRequestf("missing questKey"))
		return
	}
	s.withInventory(w, r, func(ctx context.Context, inv *inventory.Inventory, quests *quest.Service) (any, error) {
		return quests.CompleteQuest(ctx, inv, questKey)
	})
}

// handleGildWeapon takes the weapon id and category from the query string,
// as the client sends them, and the rest from the body.
func (s *Server) handleGildWeapon(w http.ResponseWriter, r *http.Request) {
	var req crafting.GildRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	req.ItemID = r.URL.Query().Get("ItemId")
	req.Category = gamedata.Category(r.URL.Query().Get("Category"))

	s.withInventory(w, r, func(_ context.Context, inv *inventory.Inventory, _ *quest.Service) (any, error) {
		return s.crafting.GildWeapon(inv, req)
	})
}
