package inventory

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
)

// SlotChange is the client's delta for a capacity bucket.
type SlotChange struct {
	Count    int `json:"count"`
	Platinum int `json:"platinum"`
	Slots    int `json:"Slots"`
}

// Changes describes which inventory fields an operation touched. It is
// returned to callers in place of the whole aggregate. Stacks carry signed
// deltas; instance lists carry the added instances.
type Changes struct {
	RegularCredits int
	PremiumCredits int
	MiscItems      []TypeCount
	Recipes        []TypeCount
	QuestKeys      []QuestKey
	Equipment      map[gamedata.Category][]Equipment
	KubrowPets     []KubrowPet
	KubrowPetEggs  []KubrowPetEgg
	Bins           map[SlotBin]SlotChange
}

func (c *Changes) IsEmpty() bool {
	return c.RegularCredits == 0 && c.PremiumCredits == 0 &&
		len(c.MiscItems) == 0 && len(c.Recipes) == 0 && len(c.QuestKeys) == 0 &&
		len(c.Equipment) == 0 && len(c.KubrowPets) == 0 && len(c.KubrowPetEggs) == 0 &&
		len(c.Bins) == 0
}

// addStack folds delta into list, summing counts of the same item type.
func addStack(list []TypeCount, delta TypeCount) []TypeCount {
	if _, i, ok := lo.FindIndexOf(list, func(tc TypeCount) bool { return tc.ItemType == delta.ItemType }); ok {
		list[i].ItemCount += delta.ItemCount
		return list
	}
	return append(list, delta)
}

func (c *Changes) AddEquipment(category gamedata.Category, eq Equipment) {
	if c.Equipment == nil {
		c.Equipment = make(map[gamedata.Category][]Equipment)
	}
	c.Equipment[category] = append(c.Equipment[category], eq)
}

func (c *Changes) addBin(bin SlotBin, delta SlotChange) {
	if c.Bins == nil {
		c.Bins = make(map[SlotBin]SlotChange)
	}
	cur := c.Bins[bin]
	cur.Count += delta.Count
	cur.Platinum += delta.Platinum
	cur.Slots += delta.Slots
	c.Bins[bin] = cur
}

// Merge folds other into c.
func (c *Changes) Merge(other *Changes) {
	if other == nil {
		return
	}
	c.RegularCredits += other.RegularCredits
	c.PremiumCredits += other.PremiumCredits
	for _, tc := range other.MiscItems {
		c.MiscItems = addStack(c.MiscItems, tc)
	}
	for _, tc := range other.Recipes {
		c.Recipes = addStack(c.Recipes, tc)
	}
	c.QuestKeys = append(c.QuestKeys, other.QuestKeys...)
	for category, list := range other.Equipment {
		for _, eq := range list {
			c.AddEquipment(category, eq)
		}
	}
	c.KubrowPets = append(c.KubrowPets, other.KubrowPets...)
	c.KubrowPetEggs = append(c.KubrowPetEggs, other.KubrowPetEggs...)
	for bin, delta := range other.Bins {
		c.addBin(bin, delta)
	}
}

// MarshalJSON emits only the touched fields, keyed the way the client keys
// its inventory.
func (c Changes) MarshalJSON() ([]byte, error) {
	out := make(map[string]any)
	if c.RegularCredits != 0 {
		out["RegularCredits"] = c.RegularCredits
	}
	if c.PremiumCredits != 0 {
		out["PremiumCredits"] = c.PremiumCredits
	}
	if len(c.MiscItems) > 0 {
		out["MiscItems"] = c.MiscItems
	}
	if len(c.Recipes) > 0 {
		out["Recipes"] = c.Recipes
	}
	if len(c.QuestKeys) > 0 {
		out["QuestKeys"] = c.QuestKeys
	}
	for category, list := range c.Equipment {
		out[string(category)] = list
	}
	if len(c.KubrowPets) > 0 {
		out["KubrowPets"] = c.KubrowPets
	}
	if len(c.KubrowPetEggs) > 0 {
		out["KubrowPetEggs"] = c.KubrowPetEggs
	}
	for bin, delta := range c.Bins {
		out[string(bin)] = delta
	}
	return json.Marshal(out)
}
