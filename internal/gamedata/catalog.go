package gamedata

import (
	"strings"

	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// KubrowPetEggItem is the item type of an unhatched companion egg.
const KubrowPetEggItem = "/Lotus/Types/Game/KubrowPet/Eggs/KubrowPetEggItem"

// Catalog is a read-only view over the static tables. The zero value is an
// empty catalog; Default returns the built-in data.
type Catalog struct {
	Keys                   map[string]Key
	LevelKeys              map[string]LevelKey
	Recipes                map[string]Recipe
	Weapons                map[string]Weapon
	Suits                  map[string]Suit
	QuestCompletionRewards map[string][]TypeCount
}

// Default returns a catalog over the built-in tables. The tables are shared,
// so callers must not modify them.
func Default() *Catalog {
	return &Catalog{
		Keys:                   keyTable,
		LevelKeys:              levelKeyTable,
		Recipes:                recipeTable,
		Weapons:                weaponTable,
		Suits:                  suitTable,
		QuestCompletionRewards: questCompletionRewardTable,
	}
}

func (c *Catalog) Key(itemType string) (Key, bool) {
	k, ok := c.Keys[itemType]
	return k, ok
}

// ChainStages returns the stages of a quest key chain, or nil when itemType
// is not a key or has no stages.
func (c *Catalog) ChainStages(itemType string) []ChainStage {
	return c.Keys[itemType].ChainStages
}

// ChainStage returns one stage of a key chain.
func (c *Catalog) ChainStage(keyChain string, stage int) (ChainStage, error) {
	stages := c.ChainStages(keyChain)
	if stages == nil {
		return ChainStage{}, simerr.NotFoundf("key chain %s has no chain stages", keyChain)
	}
	if stage < 0 || stage >= len(stages) {
		return ChainStage{}, simerr.NotFoundf("key chain %s has no stage %d", keyChain, stage)
	}
	return stages[stage], nil
}

// KeyChainItems returns the store items granted when a stage triggers.
func (c *Catalog) KeyChainItems(keyChain string, stage int) ([]string, error) {
	cs, err := c.ChainStage(keyChain, stage)
	if err != nil {
		return nil, err
	}
	if len(cs.ItemsToGiveWhenTriggered) == 0 {
		return nil, simerr.NotFoundf("no items found for %s stage %d", keyChain, stage)
	}
	return cs.ItemsToGiveWhenTriggered, nil
}

// KeyChainMessage returns the message sent when a stage triggers.
func (c *Catalog) KeyChainMessage(keyChain string, stage int) (Message, error) {
	cs, err := c.ChainStage(keyChain, stage)
	if err != nil {
		return Message{}, err
	}
	if cs.MessageToSendWhenTriggered == nil {
		return Message{}, simerr.NotFoundf("no message found for %s stage %d", keyChain, stage)
	}
	return *cs.MessageToSendWhenTriggered, nil
}

func (c *Catalog) LevelKeyRewards(levelKey string) (LevelKey, bool) {
	lk, ok := c.LevelKeys[levelKey]
	return lk, ok
}

func (c *Catalog) Recipe(itemType string) (Recipe, bool) {
	r, ok := c.Recipes[itemType]
	return r, ok
}

func (c *Catalog) Weapon(itemType string) (Weapon, bool) {
	w, ok := c.Weapons[itemType]
	return w, ok
}

func (c *Catalog) Suit(itemType string) (Suit, bool) {
	s, ok := c.Suits[itemType]
	return s, ok
}

// QuestCompletionItems returns the fixed completion grant for a quest, if
// the table lists one.
func (c *Catalog) QuestCompletionItems(questKey string) ([]TypeCount, bool) {
	items, ok := c.QuestCompletionRewards[questKey]
	return items, ok
}

// IsRecipe reports whether itemType is a blueprint.
func (c *Catalog) IsRecipe(itemType string) bool {
	if _, ok := c.Recipes[itemType]; ok {
		return true
	}
	return strings.HasPrefix(itemType, "/Lotus/Types/Recipes/") || strings.HasSuffix(itemType, "Blueprint")
}

// IsQuestKey reports whether itemType is a key with a chain.
func (c *Catalog) IsQuestKey(itemType string) bool {
	return len(c.ChainStages(itemType)) > 0
}
