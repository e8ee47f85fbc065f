package quest

import (
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// stageOf returns the recorded stage kc addresses, or nil when kc is the next
// stage to append. It fails when UpdateQuestStage would fail for kc.
func stageOf(inv *inventory.Inventory, kc KeyChainInfo) (*inventory.QuestStage, error) {
	quest, ok := inv.FindQuestKey(kc.KeyChain)
	if !ok {
		return nil, simerr.NotFoundf("quest %s not found in QuestKeys", kc.KeyChain)
	}
	if len(quest.Progress) == 0 {
		return nil, simerr.InvalidRequestf("quest %s has no progress to update", kc.KeyChain)
	}
	switch {
	case kc.ChainStage >= 0 && kc.ChainStage < len(quest.Progress):
		return &quest.Progress[kc.ChainStage], nil
	case kc.ChainStage == len(quest.Progress):
		return nil, nil
	}
	return nil, simerr.InvalidRequestf("quest stage index mismatch: %d != %d", len(quest.Progress), kc.ChainStage)
}

// UpdateQuestStage merges patch into the addressed stage, or appends it as a
// new stage when kc addresses the next index.
func (s *Service) UpdateQuestStage(inv *inventory.Inventory, kc KeyChainInfo, patch inventory.QuestStagePatch) error {
	stage, err := stageOf(inv, kc)
	if err != nil {
		return err
	}
	if stage != nil {
		patch.Apply(stage)
		return nil
	}
	quest, _ := inv.FindQuestKey(kc.KeyChain)
	quest.Progress = append(quest.Progress, patch.Stage())
	return nil
}
