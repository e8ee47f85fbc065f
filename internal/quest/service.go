// Package quest drives quest key progression: adding keys, patching stage
// progress, delivering stage-triggered items, messages and mission rewards,
// and applying completion effects.
//
// Every operation mutates the Inventory it is given and returns the delta.
// Callers persist the inventory once, and only when no error was returned.
package quest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// Messenger delivers inbox messages to an account.
type Messenger interface {
	SendMessage(ctx context.Context, ownerID string, msgs ...gamedata.Message) error
}

// KeyChainInfo addresses one stage of a quest key chain.
type KeyChainInfo struct {
	KeyChain   string `json:"KeyChain"`
	ChainStage int    `json:"ChainStage"`
}

type Service struct {
	items     *inventory.Service
	catalog   *gamedata.Catalog
	messenger Messenger
	log       *zap.Logger
	now       func() time.Time
}

func NewService(items *inventory.Service, messenger Messenger, log *zap.Logger) *Service {
	return &Service{
		items:     items,
		catalog:   items.Catalog(),
		messenger: messenger,
		log:       log.Named("quest"),
		now:       items.Now,
	}
}

// WithMessenger returns a copy of s that sends through m.
func (s *Service) WithMessenger(m Messenger) *Service {
	c := *s
	c.messenger = m
	return &c
}

// AddQuestKey appends key unless a key of the same type is already owned, in
// which case it logs and returns an empty delta without error.
func (s *Service) AddQuestKey(ctx context.Context, inv *inventory.Inventory, key inventory.QuestKey) (*inventory.Changes, error) {
	changes := &inventory.Changes{}
	if inv.QuestKeys.Has(key.ItemType) {
		s.log.Warn("quest key already exists, it will not be added", zap.String("itemType", key.ItemType))
		return changes, nil
	}

	if intro, ok := introMessages[key.ItemType]; ok {
		if err := s.messenger.SendMessage(ctx, inv.AccountOwnerID, intro); err != nil {
			return nil, fmt.Errorf("send intro message for %s: %w", key.ItemType, err)
		}
	}

	added := key
	inv.QuestKeys.Append(&added)
	changes.QuestKeys = append(changes.QuestKeys, added)
	return changes, nil
}

// UpdateQuestKey overwrites the owned key matching the single update. When
// the update completes the quest, the completion date is stamped and the
// completion effects run. A replayed completion keeps the original date and
// does not run the effects again.
func (s *Service) UpdateQuestKey(ctx context.Context, inv *inventory.Inventory, updates []inventory.QuestKey) (*inventory.Changes, error) {
	if len(updates) != 1 {
		s.log.Error("quest key update count not supported", zap.Int("count", len(updates)))
		return nil, simerr.InvalidRequestf("exactly 1 quest key update supported, got %d", len(updates))
	}
	update := updates[0]

	existing, ok := inv.FindQuestKey(update.ItemType)
	if !ok {
		return nil, simerr.NotFoundf("quest key %s not found", update.ItemType)
	}
	wasCompleted := existing.Completed
	previousDate := existing.CompletionDate

	*existing = update
	existing.CompletionDate = nil

	changes := &inventory.Changes{}
	if !update.Completed {
		return changes, nil
	}
	if wasCompleted {
		existing.CompletionDate = previousDate
		return changes, nil
	}

	now := s.now()
	existing.CompletionDate = &now
	if err := s.handleQuestCompletion(ctx, inv, update.ItemType, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// CompleteQuest marks questKey completed, backfilling missing stages and
// delivering every stage's triggered items, messages and mission rewards
// from the last recorded stage on. It is a no-op for a completed quest.
func (s *Service) CompleteQuest(ctx context.Context, inv *inventory.Inventory, questKey string) (*inventory.Changes, error) {
	stages := s.catalog.ChainStages(questKey)
	if len(stages) == 0 {
		return nil, simerr.NotFoundf("quest %s does not contain chain stages", questKey)
	}
	total := len(stages)

	changes := &inventory.Changes{}
	existing, ok := inv.FindQuestKey(questKey)
	if ok && existing.Completed {
		return changes, nil
	}

	startingStage := 0
	now := s.now()
	if ok {
		startingStage = max(len(existing.Progress)-1, 0)
		for len(existing.Progress) < total {
			existing.Progress = append(existing.Progress, inventory.QuestStage{B: []any{}})
		}
		existing.Completed = true
		existing.CompletionDate = &now
	} else {
		key := inventory.QuestKey{
			ItemType:       questKey,
			Completed:      true,
			Unlock:         true,
			CompletionDate: &now,
			Progress:       make([]inventory.QuestStage, total),
		}
		for i := range key.Progress {
			key.Progress[i].B = []any{}
		}
		delta, err := s.AddQuestKey(ctx, inv, key)
		if err != nil {
			return nil, err
		}
		changes.Merge(delta)
	}

	for i := startingStage; i < total; i++ {
		kc := KeyChainInfo{KeyChain: questKey, ChainStage: i}
		delta, err := s.GiveKeyChainStageTriggered(ctx, inv, kc)
		if err != nil {
			return nil, err
		}
		changes.Merge(delta)

		delta, err = s.GiveKeyChainMissionReward(inv, kc)
		if err != nil {
			return nil, err
		}
		changes.Merge(delta)
	}

	if err := s.handleQuestCompletion(ctx, inv, questKey, changes); err != nil {
		return nil, err
	}
	return changes, nil
}
