// Package inventory defines the per-account Inventory aggregate and the
// item, currency and slot helpers that quest and crafting logic mutate it
// through.
package inventory

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
)

// NewID returns a fresh 24-hex-digit item identifier, the shape the client
// expects for instance ids.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:12])
}

// Equipment feature bits.
const (
	FeatureDoubleCapacity  = 1
	FeatureUtilitySlot     = 2
	FeatureGravimag        = 4
	FeatureGilded          = 8
	FeatureArcaneSlot      = 32
	FeatureIncarnonGenesis = 512
	FeatureValenceSwap     = 1024
)

// TypeCount is a fungible stack keyed by item type.
type TypeCount struct {
	ItemType  string `json:"ItemType"`
	ItemCount int    `json:"ItemCount"`
}

func (t *TypeCount) Key() string { return t.ItemType }

// QuestStage is one entry of a quest key's progress. The zero value is the
// default for a stage that has not been played.
type QuestStage struct {
	C int   `json:"c"`
	I bool  `json:"i"`
	M bool  `json:"m"`
	B []any `json:"b"`
}

// QuestStagePatch names the stage fields to overwrite. Nil fields are left alone.
type QuestStagePatch struct {
	C *int   `json:"c,omitempty"`
	I *bool  `json:"i,omitempty"`
	M *bool  `json:"m,omitempty"`
	B *[]any `json:"b,omitempty"`
}

// Apply copies the provided fields onto stage.
func (p QuestStagePatch) Apply(stage *QuestStage) {
	if p.C != nil {
		stage.C = *p.C
	}
	if p.I != nil {
		stage.I = *p.I
	}
	if p.M != nil {
		stage.M = *p.M
	}
	if p.B != nil {
		stage.B = *p.B
	}
}

// Stage returns a default stage with the patch applied.
func (p QuestStagePatch) Stage() QuestStage {
	stage := QuestStage{B: []any{}}
	p.Apply(&stage)
	return stage
}

type QuestKey struct {
	ItemType       string       `json:"ItemType"`
	Completed      bool         `json:"Completed,omitempty"`
	Unlock         bool         `json:"unlock,omitempty"`
	CompletionDate *time.Time   `json:"CompletionDate,omitempty"`
	Progress       []QuestStage `json:"Progress,omitempty"`
}

func (q *QuestKey) Key() string { return q.ItemType }

type Polarity struct {
	Slot  int    `json:"Slot"`
	Value string `json:"Value"`
}

// Equipment is a suit or weapon instance.
type Equipment struct {
	ItemID       string     `json:"ItemId"`
	ItemType     string     `json:"ItemType"`
	ItemName     string     `json:"ItemName,omitempty"`
	XP           int        `json:"XP,omitempty"`
	Features     int        `json:"Features,omitempty"`
	Polarity     []Polarity `json:"Polarity,omitempty"`
	ModularParts []string   `json:"ModularParts,omitempty"`
}

func (e *Equipment) Key() string { return e.ItemID }

type PetDetails struct {
	Name            string    `json:"Name"`
	IsPuppy         bool      `json:"IsPuppy"`
	HasCollar       bool      `json:"HasCollar"`
	PrintsRemaining int       `json:"PrintsRemaining"`
	Status          string    `json:"Status"`
	HatchDate       time.Time `json:"HatchDate"`
	IsMale          bool      `json:"IsMale"`
	Size            float64   `json:"Size"`
}

type KubrowPet struct {
	ItemID   string      `json:"ItemId"`
	ItemType string      `json:"ItemType"`
	Details  *PetDetails `json:"Details,omitempty"`
}

func (p *KubrowPet) Key() string { return p.ItemID }

type KubrowPetEgg struct {
	ItemID   string `json:"ItemId"`
	ItemType string `json:"ItemType"`
}

func (e *KubrowPetEgg) Key() string { return e.ItemID }

// PendingRecipe is a blueprint in the foundry. Weapons consumed as
// ingredients are held here until the recipe is claimed.
type PendingRecipe struct {
	ItemID         string       `json:"ItemId"`
	ItemType       string       `json:"ItemType"`
	CompletionDate time.Time    `json:"CompletionDate"`
	LongGuns       []*Equipment `json:"LongGuns,omitempty"`
	Pistols        []*Equipment `json:"Pistols,omitempty"`
	Melee          []*Equipment `json:"Melee,omitempty"`
	KubrowPet      string       `json:"KubrowPet,omitempty"`
	SuitToUnbrand  string       `json:"SuitToUnbrand,omitempty"`
}

func (p *PendingRecipe) Key() string { return p.ItemID }

// Hold stores a consumed weapon under its category.
func (p *PendingRecipe) Hold(category gamedata.Category, eq *Equipment) {
	switch category {
	case gamedata.CategoryLongGuns:
		p.LongGuns = append(p.LongGuns, eq)
	case gamedata.CategoryPistols:
		p.Pistols = append(p.Pistols, eq)
	case gamedata.CategoryMelee:
		p.Melee = append(p.Melee, eq)
	}
}

// SpectreLoadout is a staged copy of a player loadout, one per result type.
type SpectreLoadout struct {
	ItemType             string   `json:"ItemType"`
	Suits                string   `json:"Suits"`
	LongGuns             string   `json:"LongGuns"`
	LongGunsModularParts []string `json:"LongGunsModularParts,omitempty"`
	Pistols              string   `json:"Pistols"`
	PistolsModularParts  []string `json:"PistolsModularParts,omitempty"`
	Melee                string   `json:"Melee"`
	MeleeModularParts    []string `json:"MeleeModularParts,omitempty"`
}

func (s *SpectreLoadout) Key() string { return s.ItemType }

// Complete reports whether every slot is set.
func (s *SpectreLoadout) Complete() bool {
	return s.Suits != "" && s.LongGuns != "" && s.Pistols != "" && s.Melee != ""
}

type WeeklyMission struct {
	MissionIndex     int    `json:"MissionIndex"`
	CompletedMission bool   `json:"CompletedMission"`
	JobManifest      string `json:"JobManifest"`
	WeekCount        int    `json:"WeekCount"`
	Challenges       []any  `json:"Challenges"`
}

type Affiliation struct {
	Tag            string          `json:"Tag"`
	Standing       int             `json:"Standing"`
	Title          int             `json:"Title"`
	WeeklyMissions []WeeklyMission `json:"WeeklyMissions,omitempty"`
}

func (a *Affiliation) Key() string { return a.Tag }

// SlotBin names a capacity bucket.
type SlotBin string

const (
	SuitBin   SlotBin = "SuitBin"
	WeaponBin SlotBin = "WeaponBin"
)

type Slots struct {
	Slots int `json:"Slots"`
	Extra int `json:"Extra"`
}

// Inventory is the per-account aggregate. It is loaded once per request,
// mutated in place and saved once.
type Inventory struct {
	AccountOwnerID string `json:"accountOwnerId"`
	RegularCredits int    `json:"RegularCredits"`
	PremiumCredits int    `json:"PremiumCredits"`
	ActiveQuest    string `json:"ActiveQuest"`

	QuestKeys Collection[*QuestKey]  `json:"QuestKeys"`
	MiscItems Collection[*TypeCount] `json:"MiscItems"`
	Recipes   Collection[*TypeCount] `json:"Recipes"`

	Suits           Collection[*Equipment] `json:"Suits"`
	LongGuns        Collection[*Equipment] `json:"LongGuns"`
	Pistols         Collection[*Equipment] `json:"Pistols"`
	Melee           Collection[*Equipment] `json:"Melee"`
	OperatorAmps    Collection[*Equipment] `json:"OperatorAmps"`
	SpaceGuns       Collection[*Equipment] `json:"SpaceGuns"`
	SpaceMelee      Collection[*Equipment] `json:"SpaceMelee"`
	SentinelWeapons Collection[*Equipment] `json:"SentinelWeapons"`

	KubrowPets             Collection[*KubrowPet]      `json:"KubrowPets"`
	KubrowPetEggs          Collection[*KubrowPetEgg]   `json:"KubrowPetEggs"`
	PendingRecipes         Collection[*PendingRecipe]  `json:"PendingRecipes"`
	PendingSpectreLoadouts Collection[*SpectreLoadout] `json:"PendingSpectreLoadouts"`
	Affiliations           Collection[*Affiliation]    `json:"Affiliations"`

	SuitBin   Slots `json:"SuitBin"`
	WeaponBin Slots `json:"WeaponBin"`
}

// New returns an empty inventory with the starting slot allowance.
func New(ownerID string) *Inventory {
	return &Inventory{
		AccountOwnerID: ownerID,
		SuitBin:        Slots{Slots: 3},
		WeaponBin:      Slots{Slots: 10},
	}
}

// Equipment returns the collection for an equipment category, or nil.
func (inv *Inventory) Equipment(category gamedata.Category) *Collection[*Equipment] {
	switch category {
	case gamedata.CategorySuits:
		return &inv.Suits
	case gamedata.CategoryLongGuns:
		return &inv.LongGuns
	case gamedata.CategoryPistols:
		return &inv.Pistols
	case gamedata.CategoryMelee:
		return &inv.Melee
	case gamedata.CategoryOperatorAmps:
		return &inv.OperatorAmps
	case gamedata.CategorySpaceGuns:
		return &inv.SpaceGuns
	case gamedata.CategorySpaceMelee:
		return &inv.SpaceMelee
	case gamedata.CategorySentinelWeapon:
		return &inv.SentinelWeapons
	}
	return nil
}

// Bin returns the capacity bucket for bin.
func (inv *Inventory) Bin(bin SlotBin) *Slots {
	if bin == SuitBin {
		return &inv.SuitBin
	}
	return &inv.WeaponBin
}

// FindQuestKey returns the quest key for itemType, if present.
func (inv *Inventory) FindQuestKey(itemType string) (*QuestKey, bool) {
	return inv.QuestKeys.Find(itemType)
}
