package gamedata

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

func TestStoreItemMapping(t *testing.T) {
	tests := []struct {
		name  string
		store string
		item  string
	}{
		{"misc", "/Lotus/StoreItems/Types/Items/MiscItems/Ferrite", "/Lotus/Types/Items/MiscItems/Ferrite"},
		{"mod", "/Lotus/StoreItems/Upgrades/Mods/Warframe/AvatarShieldMaxMod", "/Lotus/Upgrades/Mods/Warframe/AvatarShieldMaxMod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromStoreItem(tt.store); got != tt.item {
				t.Errorf("FromStoreItem() = %q, want %q", got, tt.item)
			}
			if got := ToStoreItem(tt.item); got != tt.store {
				t.Errorf("ToStoreItem() = %q, want %q", got, tt.store)
			}
			if got := ToStoreItem(tt.store); got != tt.store {
				t.Errorf("ToStoreItem() on a store item = %q", got)
			}
		})
	}

	if got := FromStoreItem("Ferrite"); got != "Ferrite" {
		t.Errorf("FromStoreItem() on a foreign path = %q", got)
	}
}

func TestChainStageLookup(t *testing.T) {
	c := Default()

	cs, err := c.ChainStage("/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain", 0)
	if err != nil {
		t.Fatalf("ChainStage() error = %v", err)
	}
	if cs.Key != "/Lotus/Types/Keys/VorsPrize/VorsPrizeMissionOneKey" {
		t.Errorf("stage 0 key = %q", cs.Key)
	}

	tests := []struct {
		name     string
		keyChain string
		stage    int
	}{
		{"unknown chain", "/Lotus/Types/Keys/Nope", 0},
		{"stage past end", "/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain", 3},
		{"negative stage", "/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.ChainStage(tt.keyChain, tt.stage); !errors.Is(err, simerr.ErrNotFound) {
				t.Errorf("ChainStage() error = %v, want not found", err)
			}
		})
	}
}

func TestKeyChainItemsAndMessage(t *testing.T) {
	c := Default()
	const vors = "/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain"

	items, err := c.KeyChainItems(vors, 2)
	if err != nil || len(items) != 2 {
		t.Fatalf("KeyChainItems() = %v, %v", items, err)
	}
	if _, err := c.KeyChainItems(vors, 1); simerr.KindOf(err) != simerr.KindNotFound {
		t.Errorf("KeyChainItems() on a stage without items: error = %v", err)
	}

	msg, err := c.KeyChainMessage(vors, 1)
	if err != nil || msg.Sender != "/Lotus/Language/Bosses/Lotus" {
		t.Errorf("KeyChainMessage() = %+v, %v", msg, err)
	}
	if _, err := c.KeyChainMessage(vors, 0); simerr.KindOf(err) != simerr.KindNotFound {
		t.Errorf("KeyChainMessage() on a stage without a message: error = %v", err)
	}
}

func TestFixedRewardsStoreItems(t *testing.T) {
	r := FixedRewards{
		Credits:           100,
		Items:             []string{"/Lotus/StoreItems/A"},
		CountedItems:      []TypeCount{{ItemType: "/Lotus/Types/B", ItemCount: 3}},
		CountedStoreItems: []TypeCount{{ItemType: "/Lotus/StoreItems/C", ItemCount: 2}},
	}
	want := []TypeCount{
		{ItemType: "/Lotus/StoreItems/A", ItemCount: 1},
		{ItemType: "/Lotus/StoreItems/Types/B", ItemCount: 3},
		{ItemType: "/Lotus/StoreItems/C", ItemCount: 2},
	}
	if got := r.StoreItems(); !slices.Equal(got, want) {
		t.Errorf("StoreItems() = %v, want %v", got, want)
	}
}

func TestIsRecipe(t *testing.T) {
	c := Default()
	tests := []struct {
		itemType string
		want     bool
	}{
		{"/Lotus/Types/Recipes/Weapons/BoltorBlueprint", true},
		{"/Lotus/Weapons/SolarisUnited/LotusGildKitgunBlueprint", true},
		{"/Lotus/Types/Items/MiscItems/Ferrite", false},
	}
	for _, tt := range tests {
		if got := c.IsRecipe(tt.itemType); got != tt.want {
			t.Errorf("IsRecipe(%q) = %v, want %v", tt.itemType, got, tt.want)
		}
	}
}

// The built-in tables reference each other by path; a typo would only show
// up at runtime.
func TestTablesAreConsistent(t *testing.T) {
	c := Default()

	for name, key := range c.Keys {
		for i, stage := range key.ChainStages {
			if stage.Key == "" {
				continue
			}
			if _, ok := c.LevelKeyRewards(stage.Key); !ok {
				t.Errorf("%s stage %d: level key %s missing", name, i, stage.Key)
			}
		}
		for _, reward := range key.Rewards {
			if reward.RewardType == RewardStoreItem && !strings.HasPrefix(reward.ItemType, storeItemsPrefix) {
				t.Errorf("%s: store reward %s is not a store item", name, reward.ItemType)
			}
		}
	}

	for name, recipe := range c.Recipes {
		for i, ing := range recipe.Ingredients {
			if ing.ItemCount <= 0 {
				t.Errorf("%s ingredient %d has count %d", name, i, ing.ItemCount)
			}
			if strings.HasPrefix(ing.ItemType, "/Lotus/Weapons/") {
				if _, ok := c.Weapon(ing.ItemType); !ok {
					t.Errorf("%s ingredient %s missing from weapon table", name, ing.ItemType)
				}
			}
		}
		if recipe.SecretIngredientAction == ActionCreateKubrow && len(recipe.SecretIngredients) == 0 {
			t.Errorf("%s creates a companion from an empty pool", name)
		}
	}
}
