package quest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

func ptr[T any](v T) *T { return &v }

// GiveKeyChainItem grants the items listed for a stage and flags the stage's
// items as given. A stage already flagged is left alone.
func (s *Service) GiveKeyChainItem(inv *inventory.Inventory, kc KeyChainInfo) (*inventory.Changes, error) {
	stage, err := stageOf(inv, kc)
	if err != nil {
		return nil, err
	}
	if stage != nil && stage.I {
		s.log.Debug("keychain items already given",
			zap.String("keyChain", kc.KeyChain), zap.Int("stage", kc.ChainStage))
		return &inventory.Changes{}, nil
	}

	changes, err := s.items.AddKeyChainItems(inv, kc.KeyChain, kc.ChainStage)
	if err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		s.log.Warn("inventory changes was empty after getting keychain items",
			zap.String("keyChain", kc.KeyChain), zap.Int("stage", kc.ChainStage))
	}
	if err := s.UpdateQuestStage(inv, kc, inventory.QuestStagePatch{I: ptr(true)}); err != nil {
		return nil, err
	}
	return changes, nil
}

// GiveKeyChainMessage sends a stage's message and flags it as sent. A stage
// already flagged is left alone.
func (s *Service) GiveKeyChainMessage(ctx context.Context, inv *inventory.Inventory, kc KeyChainInfo) (*inventory.Changes, error) {
	stage, err := stageOf(inv, kc)
	if err != nil {
		return nil, err
	}
	if stage != nil && stage.M {
		return &inventory.Changes{}, nil
	}

	msg, err := s.catalog.KeyChainMessage(kc.KeyChain, kc.ChainStage)
	if err != nil {
		return nil, err
	}
	if err := s.messenger.SendMessage(ctx, inv.AccountOwnerID, msg); err != nil {
		return nil, fmt.Errorf("send keychain message: %w", err)
	}
	if err := s.UpdateQuestStage(inv, kc, inventory.QuestStagePatch{M: ptr(true)}); err != nil {
		return nil, err
	}
	return &inventory.Changes{}, nil
}

// GiveKeyChainMissionReward applies the rewards of the stage's mission level
// key, then resets the stage's c counter. The fixed reward format takes
// precedence over the reward list when a key carries both.
func (s *Service) GiveKeyChainMissionReward(inv *inventory.Inventory, kc KeyChainInfo) (*inventory.Changes, error) {
	changes := &inventory.Changes{}
	stages := s.catalog.ChainStages(kc.KeyChain)
	if len(stages) == 0 {
		return changes, nil
	}
	if kc.ChainStage < 0 || kc.ChainStage >= len(stages) {
		return nil, simerr.NotFoundf("key chain %s has no stage %d", kc.KeyChain, kc.ChainStage)
	}
	missionName := stages[kc.ChainStage].Key
	if missionName == "" {
		return changes, nil
	}
	rewards, ok := s.catalog.LevelKeyRewards(missionName)
	if !ok || (rewards.LevelKeyRewards == nil && len(rewards.LevelKeyRewards2) == 0) {
		return changes, nil
	}
	if _, err := stageOf(inv, kc); err != nil {
		return nil, err
	}

	grant := func(storeItem string, count int) error {
		delta, err := s.items.AddItem(inv, gamedata.FromStoreItem(storeItem), count)
		if err != nil {
			return err
		}
		changes.Merge(delta)
		return nil
	}

	if fixed := rewards.LevelKeyRewards; fixed != nil {
		inv.RegularCredits += fixed.Credits
		changes.RegularCredits += fixed.Credits
		for _, reward := range fixed.StoreItems() {
			if err := grant(reward.ItemType, reward.ItemCount); err != nil {
				return nil, err
			}
		}
	} else {
		for _, reward := range rewards.LevelKeyRewards2 {
			var err error
			switch reward.RewardType {
			case gamedata.RewardCredits:
				inv.RegularCredits += reward.Amount
				changes.RegularCredits += reward.Amount
			case gamedata.RewardResource:
				err = grant(reward.ItemType, reward.Amount)
			default:
				err = grant(reward.ItemType, 1)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.UpdateQuestStage(inv, kc, inventory.QuestStagePatch{C: ptr(0)}); err != nil {
		return nil, err
	}
	return changes, nil
}

// GiveKeyChainStageTriggered delivers whatever a stage lists on trigger:
// items, then the message.
func (s *Service) GiveKeyChainStageTriggered(ctx context.Context, inv *inventory.Inventory, kc KeyChainInfo) (*inventory.Changes, error) {
	changes := &inventory.Changes{}
	if len(s.catalog.ChainStages(kc.KeyChain)) == 0 {
		return changes, nil
	}
	cs, err := s.catalog.ChainStage(kc.KeyChain, kc.ChainStage)
	if err != nil {
		return nil, err
	}

	if len(cs.ItemsToGiveWhenTriggered) > 0 {
		delta, err := s.GiveKeyChainItem(inv, kc)
		if err != nil {
			return nil, err
		}
		changes.Merge(delta)
	}
	if cs.MessageToSendWhenTriggered != nil {
		if _, err := s.GiveKeyChainMessage(ctx, inv, kc); err != nil {
			return nil, err
		}
	}
	return changes, nil
}
