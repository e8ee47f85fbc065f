// Package gamedata holds the static tables the simulation reads: quest key
// chains, mission level-key rewards, recipes and equipment metadata.
//
// Item paths are the client's canonical "/Lotus/..." identifiers. Reward and
// trigger tables often reference the store variant ("/Lotus/StoreItems/...");
// FromStoreItem maps those back.
package gamedata

// Category is an inventory equipment bucket, named as the client names it.
type Category string

const (
	CategorySuits          Category = "Suits"
	CategoryLongGuns       Category = "LongGuns"
	CategoryPistols        Category = "Pistols"
	CategoryMelee          Category = "Melee"
	CategoryOperatorAmps   Category = "OperatorAmps"
	CategorySpaceGuns      Category = "SpaceGuns"
	CategorySpaceMelee     Category = "SpaceMelee"
	CategorySentinelWeapon Category = "SentinelWeapons"
)

// IsWeapon reports whether c is one of the three weapon buckets that recipes
// may consume as ingredients.
func (c Category) IsWeapon() bool {
	return c == CategoryLongGuns || c == CategoryPistols || c == CategoryMelee
}

// TypeCount is an item type with a quantity.
type TypeCount struct {
	ItemType  string `json:"ItemType"`
	ItemCount int    `json:"ItemCount"`
}

// RewardType tags an entry in a key's reward list.
type RewardType string

const (
	RewardCredits   RewardType = "RT_CREDITS"
	RewardResource  RewardType = "RT_RESOURCE"
	RewardRecipe    RewardType = "RT_RECIPE"
	RewardStoreItem RewardType = "RT_STORE_ITEM"
)

type KeyReward struct {
	RewardType RewardType `json:"rewardType"`
	ItemType   string     `json:"itemType,omitempty"`
	Amount     int        `json:"amount,omitempty"`
}

// Message is an inbox message template.
type Message struct {
	Sender             string      `json:"sndr"`
	Subject            string      `json:"sub"`
	Body               string      `json:"msg"`
	Icon               string      `json:"icon,omitempty"`
	Attachments        []string    `json:"att,omitempty"`
	CountedAttachments []TypeCount `json:"countedAtt,omitempty"`
	HighPriority       bool        `json:"highPriority,omitempty"`
}

// ChainStage is one step of a quest key chain.
type ChainStage struct {
	// Key is the level key of the stage's mission, if it has one.
	Key                        string
	ItemsToGiveWhenTriggered   []string
	MessageToSendWhenTriggered *Message
}

type Key struct {
	Name        string
	ChainStages []ChainStage
	Rewards     []KeyReward
}

// FixedRewards is the older level-key reward format.
type FixedRewards struct {
	Credits           int
	Items             []string
	CountedItems      []TypeCount
	CountedStoreItems []TypeCount
}

// StoreItems flattens the fixed rewards into store-item grants, in table order.
func (r *FixedRewards) StoreItems() []TypeCount {
	out := make([]TypeCount, 0, len(r.Items)+len(r.CountedItems)+len(r.CountedStoreItems))
	for _, item := range r.Items {
		out = append(out, TypeCount{ItemType: item, ItemCount: 1})
	}
	for _, item := range r.CountedItems {
		out = append(out, TypeCount{ItemType: ToStoreItem(item.ItemType), ItemCount: item.ItemCount})
	}
	out = append(out, r.CountedStoreItems...)
	return out
}

// LevelKey carries a mission's rewards in either or both legacy formats.
type LevelKey struct {
	LevelKeyRewards  *FixedRewards
	LevelKeyRewards2 []KeyReward
}

type SecretIngredientAction string

const (
	ActionNone               SecretIngredientAction = ""
	ActionCreateKubrow       SecretIngredientAction = "SIA_CREATE_KUBROW"
	ActionDistillPrint       SecretIngredientAction = "SIA_DISTILL_PRINT"
	ActionSpectreLoadoutCopy SecretIngredientAction = "SIA_SPECTRE_LOADOUT_COPY"
	ActionUnbrand            SecretIngredientAction = "SIA_UNBRAND"
)

type StandingChange struct {
	Tag   string
	Value int
}

type Recipe struct {
	ResultType string
	BuildPrice int
	// BuildTime is in seconds.
	BuildTime               int
	Num                     int
	Ingredients             []TypeCount
	SecretIngredientAction  SecretIngredientAction
	SecretIngredients       []TypeCount
	SyndicateStandingChange *StandingChange
}

type Weapon struct {
	Name            string
	ProductCategory Category
}

type Suit struct {
	Name            string
	ProductCategory Category
}
