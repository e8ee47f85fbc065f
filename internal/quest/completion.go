package quest

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
)

const (
	secondDreamQuest   = "/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonQuestKeyChain"
	newWarQuest        = "/Lotus/Types/Keys/NewWarQuest/NewWarQuestKeyChain"
	heartOfDeimosQuest = "/Lotus/Types/Keys/InfestedMicroplanetQuest/InfestedMicroplanetQuestKeyChain"
	lotusEatersQuest   = "/Lotus/Types/Keys/1999PrologueQuest/1999PrologueQuestKeyChain"
	duviriQuest        = "/Lotus/Types/Keys/DuviriQuest/DuviriQuestKeyChain"
)

// introMessages are sent once, when the key is first added.
var introMessages = map[string]gamedata.Message{
	heartOfDeimosQuest: {
		Sender:  "/Lotus/Language/Bosses/Loid",
		Icon:    "/Lotus/Interface/Icons/Npcs/Entrati/Loid.png",
		Subject: "/Lotus/Language/InfestedMicroplanet/DeimosIntroQuestInboxTitle",
		Body:    "/Lotus/Language/InfestedMicroplanet/DeimosIntroQuestInboxMessage",
	},
}

// completionListener runs when its quest completes.
type completionListener func(ctx context.Context, s *Service, inv *inventory.Inventory) error

func sendOnCompletion(msg gamedata.Message) completionListener {
	return func(ctx context.Context, s *Service, inv *inventory.Inventory) error {
		return s.messenger.SendMessage(ctx, inv.AccountOwnerID, msg)
	}
}

var completionListeners = map[string]completionListener{
	secondDreamQuest: sendOnCompletion(gamedata.Message{
		Sender:  "/Lotus/Language/Bosses/Ordis",
		Body:    "/Lotus/Language/G1Quests/SecondDreamFinishInboxMessage",
		Subject: "/Lotus/Language/G1Quests/SecondDreamFinishInboxTitle",
		Icon:    "/Lotus/Interface/Icons/Npcs/Ordis.png",
		Attachments: []string{
			"/Lotus/Weapons/Tenno/Melee/Swords/StalkerTwo/StalkerTwoSmallSword",
			"/Lotus/Upgrades/Skins/Sigils/ScarSigil",
		},
		HighPriority: true,
	}),
	newWarQuest: func(_ context.Context, _ *Service, inv *inventory.Inventory) error {
		inventory.SetupKahlSyndicate(inv)
		return nil
	},
}

// setUnlock sends message when a quest completion finishes the whole set.
type setUnlock struct {
	quests  []string
	message gamedata.Message
}

var setUnlocks = []setUnlock{
	// Whispers in the Walls.
	{
		quests: []string{newWarQuest, heartOfDeimosQuest},
		message: gamedata.Message{
			Sender:       "/Lotus/Language/Bosses/Loid",
			Body:         "/Lotus/Language/EntratiLab/EntratiQuest/WiTWQuestRecievedInboxBody",
			Attachments:  []string{"/Lotus/Types/Keys/EntratiLab/EntratiQuestKeyChain"},
			Subject:      "/Lotus/Language/EntratiLab/EntratiQuest/WiTWQuestRecievedInboxTitle",
			Icon:         "/Lotus/Interface/Icons/Npcs/Entrati/Loid.png",
			HighPriority: true,
		},
	},
	// The Hex.
	{
		quests: []string{lotusEatersQuest, duviriQuest},
		message: gamedata.Message{
			Sender:       "/Lotus/Language/NewWar/P3M1ChooseMara",
			Body:         "/Lotus/Language/1999Quest/1999QuestInboxBody",
			Attachments:  []string{"/Lotus/Types/Keys/1999Quest/1999QuestKeyChain"},
			Subject:      "/Lotus/Language/1999Quest/1999QuestInboxSubject",
			Icon:         "/Lotus/Interface/Icons/Npcs/Operator.png",
			HighPriority: true,
		},
	},
}

// finishesSet reports whether questKey is in set and every other member is
// already completed.
func finishesSet(inv *inventory.Inventory, questKey string, set []string) bool {
	if !lo.Contains(set, questKey) {
		return false
	}
	return lo.EveryBy(set, func(q string) bool {
		if q == questKey {
			return true
		}
		key, ok := inv.FindQuestKey(q)
		return ok && key.Completed
	})
}

// completionItems returns the fixed completion grant, or derives one from the
// key's reward list.
func (s *Service) completionItems(questKey string) []gamedata.TypeCount {
	if items, ok := s.catalog.QuestCompletionItems(questKey); ok {
		return items
	}
	s.log.Warn("quest not found in quest completion rewards", zap.String("questKey", questKey))

	key, _ := s.catalog.Key(questKey)
	return lo.FilterMap(key.Rewards, func(r gamedata.KeyReward, _ int) (gamedata.TypeCount, bool) {
		switch r.RewardType {
		case gamedata.RewardStoreItem:
			return gamedata.TypeCount{ItemType: gamedata.FromStoreItem(r.ItemType), ItemCount: 1}, true
		case gamedata.RewardResource, gamedata.RewardRecipe:
			return gamedata.TypeCount{ItemType: r.ItemType, ItemCount: r.Amount}, true
		}
		return gamedata.TypeCount{}, false
	})
}

func (s *Service) handleQuestCompletion(ctx context.Context, inv *inventory.Inventory, questKey string, changes *inventory.Changes) error {
	s.log.Debug("completed quest", zap.String("questKey", questKey))

	if listener, ok := completionListeners[questKey]; ok {
		if err := listener(ctx, s, inv); err != nil {
			return fmt.Errorf("complete %s: %w", questKey, err)
		}
	}
	for _, unlock := range setUnlocks {
		if !finishesSet(inv, questKey, unlock.quests) {
			continue
		}
		if err := s.messenger.SendMessage(ctx, inv.AccountOwnerID, unlock.message); err != nil {
			return fmt.Errorf("send unlock message: %w", err)
		}
	}

	items := s.completionItems(questKey)
	s.log.Debug("quest completion items", zap.String("questKey", questKey), zap.Any("items", items))
	if err := s.items.AddItems(inv, items, changes); err != nil {
		return err
	}

	if inv.ActiveQuest == questKey {
		inv.ActiveQuest = ""
	}
	return nil
}
