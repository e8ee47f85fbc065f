// Package crafting starts foundry recipes and gilds modular weapons.
//
// Both operations check every lookup before touching the inventory, so a
// failed call leaves it exactly as it was.
package crafting

import (
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/engine"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// KeepCurrentLoadout is the id the client sends for a spectre slot to keep
// the staged loadout unchanged.
const KeepCurrentLoadout = "ffffffffffffffffffffffff"

type Service struct {
	items   *inventory.Service
	catalog *gamedata.Catalog
	log     *zap.Logger
	rand    engine.Source
	now     func() time.Time
}

type Option func(*Service)

// WithSource replaces the unseeded source used for companion draws.
func WithSource(src engine.Source) Option {
	return func(s *Service) { s.rand = src }
}

func NewService(items *inventory.Service, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		items:   items,
		catalog: items.Catalog(),
		log:     log.Named("crafting"),
		rand:    engine.Entropy,
		now:     items.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type StartRecipeRequest struct {
	RecipeName string   `json:"RecipeName"`
	Ids        []string `json:"Ids"`
}

type StartRecipeResult struct {
	RecipeID string             `json:"RecipeId"`
	Changes  *inventory.Changes `json:"InventoryChanges,omitempty"`
}

// ingredientPlan is what one ingredient slot will consume.
type ingredientPlan struct {
	egg      string
	category gamedata.Category
	weapon   string
	stack    gamedata.TypeCount
}

// isInstanceID reports whether an ingredient id names an owned instance
// rather than an item type.
func isInstanceID(id string) bool {
	return id != "" && id[0] != '/'
}

func idAt(ids []string, i int) string {
	if i < len(ids) {
		return ids[i]
	}
	return ""
}

// StartRecipe debits the recipe's cost and ingredients and queues it in the
// foundry. Weapons used as ingredients move onto the pending recipe.
func (s *Service) StartRecipe(inv *inventory.Inventory, req StartRecipeRequest) (*StartRecipeResult, error) {
	recipe, ok := s.catalog.Recipe(req.RecipeName)
	if !ok {
		return nil, simerr.NotFoundf("unknown recipe %s", req.RecipeName)
	}

	plans, err := s.planIngredients(inv, recipe, req.Ids)
	if err != nil {
		return nil, err
	}
	action, err := s.planAction(inv, recipe, req.Ids)
	if err != nil {
		return nil, err
	}

	changes := s.items.UpdateCurrency(inv, recipe.BuildPrice, false)
	pr := &inventory.PendingRecipe{
		ItemID:         s.items.NewID(),
		ItemType:       req.RecipeName,
		CompletionDate: s.now().Add(time.Duration(recipe.BuildTime) * time.Second),
	}

	for _, plan := range plans {
		switch {
		case plan.egg != "":
			inv.KubrowPetEggs.Remove(plan.egg)
		case plan.weapon != "":
			eq, _ := inv.Equipment(plan.category).Remove(plan.weapon)
			pr.Hold(plan.category, eq)
			inventory.FreeUpSlot(inv, inventory.WeaponBin)
		default:
			delta, err := s.items.AddItem(inv, plan.stack.ItemType, -plan.stack.ItemCount)
			if err != nil {
				return nil, err
			}
			changes.Merge(delta)
		}
	}

	changes.Merge(action.apply(s, inv, pr))
	inv.PendingRecipes.Append(pr)

	return &StartRecipeResult{RecipeID: pr.ItemID, Changes: changes}, nil
}

func (s *Service) planIngredients(inv *inventory.Inventory, recipe gamedata.Recipe, ids []string) ([]ingredientPlan, error) {
	plans := make([]ingredientPlan, 0, len(recipe.Ingredients))
	used := make(map[string]bool)
	debits := make(map[string]int)

	for i, ing := range recipe.Ingredients {
		id := idAt(ids, i)
		if !isInstanceID(id) {
			debits[ing.ItemType] += ing.ItemCount
			plans = append(plans, ingredientPlan{stack: ing})
			continue
		}
		if used[id] {
			return nil, simerr.InvalidRequestf("item %s used for more than one ingredient", id)
		}
		used[id] = true

		if ing.ItemType == gamedata.KubrowPetEggItem {
			if !inv.KubrowPetEggs.Has(id) {
				return nil, simerr.NotFoundf("egg %s not found", id)
			}
			plans = append(plans, ingredientPlan{egg: id})
			continue
		}

		weapon, ok := s.catalog.Weapon(ing.ItemType)
		if !ok {
			if suit, isSuit := s.catalog.Suit(ing.ItemType); isSuit {
				weapon = gamedata.Weapon{Name: suit.Name, ProductCategory: suit.ProductCategory}
			} else {
				return nil, simerr.NotFoundf("no equipment data for ingredient %s", ing.ItemType)
			}
		}
		if !weapon.ProductCategory.IsWeapon() {
			return nil, simerr.Newf(simerr.KindUnsupportedCategory,
				"unexpected equipment ingredient type: %s", weapon.ProductCategory)
		}
		if !inv.Equipment(weapon.ProductCategory).Has(id) {
			return nil, simerr.NotFoundf("could not find equipment item %s to use for recipe", id).
				With("category", string(weapon.ProductCategory))
		}
		plans = append(plans, ingredientPlan{category: weapon.ProductCategory, weapon: id})
	}

	for itemType, count := range debits {
		if err := s.items.CanAddItem(inv, itemType, -count); err != nil {
			return nil, err
		}
	}
	return plans, nil
}
