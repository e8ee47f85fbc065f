package crafting

import (
	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/engine"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// actionPlan is a validated secret ingredient action, ready to apply.
type actionPlan struct {
	kind     gamedata.SecretIngredientAction
	petType  string
	targetID string
	loadout  *inventory.SpectreLoadout
}

func (a actionPlan) apply(s *Service, inv *inventory.Inventory, pr *inventory.PendingRecipe) *inventory.Changes {
	switch a.kind {
	case gamedata.ActionCreateKubrow:
		pet, changes := s.items.AddKubrowPet(inv, a.petType)
		pr.KubrowPet = pet.ItemID
		return changes
	case gamedata.ActionDistillPrint:
		pr.KubrowPet = a.targetID
		pet, _ := inv.KubrowPets.Find(a.targetID)
		pet.Details.PrintsRemaining--
	case gamedata.ActionSpectreLoadoutCopy:
		if a.loadout != nil {
			inv.PendingSpectreLoadouts.Remove(a.loadout.ItemType)
			inv.PendingSpectreLoadouts.Append(a.loadout)
			s.log.Debug("pending spectre loadout", zap.Any("loadout", a.loadout))
		}
	case gamedata.ActionUnbrand:
		pr.SuitToUnbrand = a.targetID
	}
	return nil
}

// planAction validates the recipe's secret ingredient action. Ids for the
// action follow the ingredient ids.
func (s *Service) planAction(inv *inventory.Inventory, recipe gamedata.Recipe, ids []string) (actionPlan, error) {
	plan := actionPlan{kind: recipe.SecretIngredientAction}
	extra := len(recipe.Ingredients)

	switch recipe.SecretIngredientAction {
	case gamedata.ActionNone:

	case gamedata.ActionCreateKubrow:
		candidate, ok := engine.ElementFrom(s.rand, recipe.SecretIngredients)
		if !ok {
			return plan, simerr.New(simerr.KindConfiguration, "companion recipe has no candidates")
		}
		plan.petType = candidate.ItemType

	case gamedata.ActionDistillPrint:
		id := idAt(ids, extra)
		pet, ok := inv.KubrowPets.Find(id)
		if !ok || pet.Details == nil {
			return plan, simerr.NotFoundf("companion %q not found", id)
		}
		plan.targetID = id

	case gamedata.ActionSpectreLoadoutCopy:
		loadout, err := s.planSpectreLoadout(inv, recipe, ids[min(extra, len(ids)):])
		if err != nil {
			return plan, err
		}
		plan.loadout = loadout

	case gamedata.ActionUnbrand:
		id := idAt(ids, extra)
		if !inv.Suits.Has(id) {
			return plan, simerr.NotFoundf("suit %q to unbrand not found", id)
		}
		plan.targetID = id

	default:
		return plan, simerr.InvalidRequestf("unsupported secret ingredient action %s", recipe.SecretIngredientAction)
	}
	return plan, nil
}

// planSpectreLoadout reads each slot's instance into a staged loadout. The
// walk stops at the first KeepCurrentLoadout id; a loadout is returned only
// when every slot was filled.
func (s *Service) planSpectreLoadout(inv *inventory.Inventory, recipe gamedata.Recipe, ids []string) (*inventory.SpectreLoadout, error) {
	loadout := &inventory.SpectreLoadout{ItemType: recipe.ResultType}

	for i, secret := range recipe.SecretIngredients {
		oid := idAt(ids, i)
		if oid == KeepCurrentLoadout {
			break
		}
		if oid == "" {
			return nil, simerr.InvalidRequestf("no item given for spectre slot %s", secret.ItemType)
		}

		var (
			category gamedata.Category
			slot     *string
			parts    *[]string
		)
		switch secret.ItemType {
		case gamedata.SpectreSlotSuit:
			category, slot = gamedata.CategorySuits, &loadout.Suits
		case gamedata.SpectreSlotPistol:
			category, slot, parts = gamedata.CategoryPistols, &loadout.Pistols, &loadout.PistolsModularParts
		case gamedata.SpectreSlotLongGun:
			category, slot, parts = gamedata.CategoryLongGuns, &loadout.LongGuns, &loadout.LongGunsModularParts
		default:
			category, slot, parts = gamedata.CategoryMelee, &loadout.Melee, &loadout.MeleeModularParts
		}

		item, ok := inv.Equipment(category).Find(oid)
		if !ok {
			return nil, simerr.NotFoundf("%s item %s not found", category, oid)
		}
		*slot = item.ItemType
		if parts != nil {
			*parts = item.ModularParts
		}
	}

	if !loadout.Complete() {
		return nil, nil
	}
	return loadout, nil
}
