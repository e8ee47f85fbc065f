package inventory

import (
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/engine"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

const (
	kahlSyndicateTag    = "KahlSyndicate"
	kahlJobManifest     = "/Lotus/Syndicates/Kahl/KahlJobManifestVersionThree"
	defaultPrintsPerPet = 10
	petStatusStasis     = "STATUS_STASIS"
)

// Service applies item, currency and slot mutations to an Inventory using
// the static catalog to decide where an item type lives.
type Service struct {
	catalog         *gamedata.Catalog
	log             *zap.Logger
	infiniteCredits bool
	now             func() time.Time
	rand            engine.Source
	newID           func() string
}

type Option func(*Service)

// WithInfiniteCredits makes UpdateCurrency a no-op.
func WithInfiniteCredits(on bool) Option {
	return func(s *Service) { s.infiniteCredits = on }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSource replaces the unseeded random source used for pet traits.
func WithSource(src engine.Source) Option {
	return func(s *Service) { s.rand = src }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(catalog *gamedata.Catalog, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		log:     log,
		now:     time.Now,
		rand:    engine.Entropy,
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Catalog() *gamedata.Catalog { return s.catalog }

func (s *Service) Now() time.Time { return s.now() }

func (s *Service) NewID() string { return s.newID() }

// UpdateCurrency debits price from the regular or premium balance. Negative
// prices credit. Balances are not checked.
func (s *Service) UpdateCurrency(inv *Inventory, price int, premium bool) *Changes {
	changes := &Changes{}
	if s.infiniteCredits || price == 0 {
		return changes
	}
	if premium {
		inv.PremiumCredits -= price
		changes.PremiumCredits = -price
	} else {
		inv.RegularCredits -= price
		changes.RegularCredits = -price
	}
	return changes
}

// CheckStack reports whether list can absorb delta: a debit needs an existing
// stack holding at least the debited amount.
func CheckStack(list *Collection[*TypeCount], delta TypeCount) error {
	if delta.ItemCount >= 0 {
		return nil
	}
	stack, ok := list.Find(delta.ItemType)
	if !ok {
		return simerr.NotFoundf("item %s not found in inventory", delta.ItemType)
	}
	if stack.ItemCount+delta.ItemCount < 0 {
		return simerr.InvalidRequestf("insufficient %s: have %d, need %d",
			delta.ItemType, stack.ItemCount, -delta.ItemCount)
	}
	return nil
}

// applyStack adds delta to list. A stack that reaches zero is removed.
func applyStack(list *Collection[*TypeCount], delta TypeCount) error {
	if err := CheckStack(list, delta); err != nil {
		return err
	}
	stack, ok := list.Find(delta.ItemType)
	if !ok {
		list.Append(&TypeCount{ItemType: delta.ItemType, ItemCount: delta.ItemCount})
		return nil
	}
	stack.ItemCount += delta.ItemCount
	if stack.ItemCount == 0 {
		list.Remove(delta.ItemType)
	}
	return nil
}

// AddMiscItems applies every delta or none of them.
func (s *Service) AddMiscItems(inv *Inventory, items []TypeCount) (*Changes, error) {
	merged := make([]TypeCount, 0, len(items))
	for _, item := range items {
		merged = addStack(merged, item)
	}
	for _, item := range merged {
		if err := CheckStack(&inv.MiscItems, item); err != nil {
			return nil, err
		}
	}
	changes := &Changes{}
	for _, item := range merged {
		if err := applyStack(&inv.MiscItems, item); err != nil {
			return nil, err
		}
		changes.MiscItems = addStack(changes.MiscItems, item)
	}
	return changes, nil
}

// CanAddItem reports the error AddItem would return for the same arguments,
// without mutating inv.
func (s *Service) CanAddItem(inv *Inventory, itemType string, count int) error {
	_, isWeapon := s.catalog.Weapon(itemType)
	_, isSuit := s.catalog.Suit(itemType)
	switch {
	case isWeapon || isSuit:
		if count <= 0 {
			return simerr.InvalidRequestf("cannot remove %s by type; equipment is removed by id", itemType)
		}
	case itemType == gamedata.KubrowPetEggItem:
		if count < 0 && inv.KubrowPetEggs.Len() < -count {
			return simerr.InvalidRequestf("insufficient eggs: have %d, need %d", inv.KubrowPetEggs.Len(), -count)
		}
	case s.catalog.IsQuestKey(itemType):
	case s.catalog.IsRecipe(itemType):
		return CheckStack(&inv.Recipes, TypeCount{ItemType: itemType, ItemCount: count})
	default:
		return CheckStack(&inv.MiscItems, TypeCount{ItemType: itemType, ItemCount: count})
	}
	return nil
}

// AddItem grants count of itemType, or removes it when count is negative,
// routing the item to the bucket its type belongs in.
func (s *Service) AddItem(inv *Inventory, itemType string, count int) (*Changes, error) {
	if err := s.CanAddItem(inv, itemType, count); err != nil {
		return nil, err
	}
	changes := &Changes{}

	if weapon, ok := s.catalog.Weapon(itemType); ok {
		return changes, s.addEquipment(inv, changes, weapon.ProductCategory, WeaponBin, itemType, count)
	}
	if _, ok := s.catalog.Suit(itemType); ok {
		return changes, s.addEquipment(inv, changes, gamedata.CategorySuits, SuitBin, itemType, count)
	}

	switch {
	case itemType == gamedata.KubrowPetEggItem:
		return changes, s.addEggs(inv, changes, count)
	case s.catalog.IsQuestKey(itemType):
		if count > 0 {
			key := &QuestKey{ItemType: itemType}
			if inv.QuestKeys.Append(key) {
				changes.QuestKeys = append(changes.QuestKeys, *key)
			} else {
				s.log.Debug("quest key already owned", zap.String("itemType", itemType))
			}
		}
		return changes, nil
	case s.catalog.IsRecipe(itemType):
		delta := TypeCount{ItemType: itemType, ItemCount: count}
		if err := applyStack(&inv.Recipes, delta); err != nil {
			return nil, err
		}
		changes.Recipes = []TypeCount{delta}
		return changes, nil
	}

	return s.AddMiscItems(inv, []TypeCount{{ItemType: itemType, ItemCount: count}})
}

// AddItems grants each item in order, folding the deltas into changes.
func (s *Service) AddItems(inv *Inventory, items []gamedata.TypeCount, changes *Changes) error {
	for _, item := range items {
		delta, err := s.AddItem(inv, item.ItemType, item.ItemCount)
		if err != nil {
			return err
		}
		changes.Merge(delta)
	}
	return nil
}

func (s *Service) addEquipment(inv *Inventory, changes *Changes, category gamedata.Category, bin SlotBin, itemType string, count int) error {
	if count <= 0 {
		return simerr.InvalidRequestf("cannot remove %s by type; equipment is removed by id", itemType)
	}
	list := inv.Equipment(category)
	if list == nil {
		return simerr.Newf(simerr.KindUnsupportedCategory, "no inventory bucket for category %s", category)
	}
	for i := 0; i < count; i++ {
		eq := &Equipment{ItemID: s.newID(), ItemType: itemType}
		list.Append(eq)
		changes.AddEquipment(category, *eq)
		s.occupySlot(inv, changes, bin)
	}
	return nil
}

func (s *Service) addEggs(inv *Inventory, changes *Changes, count int) error {
	if count < 0 {
		if inv.KubrowPetEggs.Len() < -count {
			return simerr.InvalidRequestf("insufficient eggs: have %d, need %d", inv.KubrowPetEggs.Len(), -count)
		}
		for i := 0; i < -count; i++ {
			inv.KubrowPetEggs.RemoveAt(0)
		}
		return nil
	}
	for i := 0; i < count; i++ {
		egg := &KubrowPetEgg{ItemID: s.newID(), ItemType: gamedata.KubrowPetEggItem}
		inv.KubrowPetEggs.Append(egg)
		changes.KubrowPetEggs = append(changes.KubrowPetEggs, *egg)
	}
	return nil
}

func (s *Service) occupySlot(inv *Inventory, changes *Changes, bin SlotBin) {
	inv.Bin(bin).Slots--
	changes.addBin(bin, SlotChange{Count: 1, Slots: -1})
}

// FreeUpSlot returns one slot to bin after an item leaves it.
func FreeUpSlot(inv *Inventory, bin SlotBin) {
	inv.Bin(bin).Slots++
}

// AddKubrowPet creates a companion of petType with default details.
func (s *Service) AddKubrowPet(inv *Inventory, petType string) (*KubrowPet, *Changes) {
	now := s.now().UTC()
	pet := &KubrowPet{
		ItemID:   s.newID(),
		ItemType: petType,
		Details: &PetDetails{
			HasCollar:       true,
			PrintsRemaining: defaultPrintsPerPet,
			Status:          petStatusStasis,
			HatchDate:       now.Truncate(24 * time.Hour),
			IsMale:          engine.IntFrom(s.rand, 0, 1) == 1,
			Size:            float64(engine.IntFrom(s.rand, 70, 80)) / 100,
		},
	}
	inv.KubrowPets.Append(pet)
	return pet, &Changes{KubrowPets: []KubrowPet{*pet}}
}

// SetupKahlSyndicate adds the Kahl affiliation with its first weekly mission.
func SetupKahlSyndicate(inv *Inventory) {
	inv.Affiliations.Append(&Affiliation{
		Tag:      kahlSyndicateTag,
		Title:    1,
		Standing: 1,
		WeeklyMissions: []WeeklyMission{{
			MissionIndex: 0,
			JobManifest:  kahlJobManifest,
			Challenges:   []any{},
		}},
	})
}

// AddKeyChainItems grants the items a key chain stage lists on trigger.
func (s *Service) AddKeyChainItems(inv *Inventory, keyChain string, stage int) (*Changes, error) {
	items, err := s.catalog.KeyChainItems(keyChain, stage)
	if err != nil {
		return nil, err
	}
	changes := &Changes{}
	for _, item := range items {
		delta, err := s.AddItem(inv, gamedata.FromStoreItem(item), 1)
		if err != nil {
			return nil, err
		}
		changes.Merge(delta)
	}
	return changes, nil
}
