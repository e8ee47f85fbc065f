package crafting

import (
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// WebUIRecipe marks a gild requested from the web UI: no rename, no XP
// reset and no ingredient cost.
const WebUIRecipe = "webui"

type GildRequest struct {
	ItemID        string            `json:"ItemId"`
	Category      gamedata.Category `json:"Category"`
	ItemName      string            `json:"ItemName"`
	Recipe        string            `json:"Recipe"`
	PolarizeSlot  int               `json:"PolarizeSlot,omitempty"`
	PolarizeValue string            `json:"PolarizeValue,omitempty"`
}

type AffiliationMod struct {
	Tag      string `json:"Tag"`
	Standing int    `json:"Standing"`
}

type GildResult struct {
	Changes         *inventory.Changes `json:"InventoryChanges"`
	AffiliationMods []AffiliationMod   `json:"AffiliationMods"`
}

// GildWeapon marks a modular weapon gilded. Unless requested from the web
// UI, it also renames the weapon, resets its XP, consumes the gild recipe's
// secret ingredients and applies the recipe's standing change.
func (s *Service) GildWeapon(inv *inventory.Inventory, req GildRequest) (*GildResult, error) {
	list := inv.Equipment(req.Category)
	if list == nil {
		return nil, simerr.Newf(simerr.KindUnsupportedCategory, "unknown equipment category %s", req.Category)
	}
	weapon, ok := list.Find(req.ItemID)
	if !ok {
		return nil, simerr.NotFoundf("weapon with %s not found in category %s", req.ItemID, req.Category)
	}

	var (
		debits      []inventory.TypeCount
		affiliation *inventory.Affiliation
		standing    *gamedata.StandingChange
	)
	if req.Recipe != WebUIRecipe {
		recipe, ok := s.catalog.Recipe(req.Recipe)
		if !ok {
			return nil, simerr.NotFoundf("unknown recipe %s", req.Recipe)
		}
		for _, ing := range recipe.SecretIngredients {
			debit := inventory.TypeCount{ItemType: ing.ItemType, ItemCount: -ing.ItemCount}
			if err := inventory.CheckStack(&inv.MiscItems, debit); err != nil {
				return nil, err
			}
			debits = append(debits, debit)
		}
		if standing = recipe.SyndicateStandingChange; standing != nil {
			if affiliation, ok = inv.Affiliations.Find(standing.Tag); !ok {
				return nil, simerr.NotFoundf("affiliation %s not found", standing.Tag)
			}
		}
	}

	result := &GildResult{Changes: &inventory.Changes{}, AffiliationMods: []AffiliationMod{}}
	if len(debits) > 0 {
		delta, err := s.items.AddMiscItems(inv, debits)
		if err != nil {
			return nil, err
		}
		result.Changes.Merge(delta)
	}

	weapon.Features |= inventory.FeatureGilded
	if req.Recipe != WebUIRecipe {
		weapon.ItemName = req.ItemName
		weapon.XP = 0
	}
	if req.Category != gamedata.CategoryOperatorAmps && req.PolarizeSlot != 0 && req.PolarizeValue != "" {
		weapon.Polarity = []inventory.Polarity{{Slot: req.PolarizeSlot, Value: req.PolarizeValue}}
	}
	result.Changes.AddEquipment(req.Category, *weapon)

	if affiliation != nil {
		affiliation.Standing += standing.Value
		result.AffiliationMods = append(result.AffiliationMods, AffiliationMod{Tag: standing.Tag, Standing: standing.Value})
	}
	return result, nil
}
