package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/crafting"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/quest"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
	"github.com/MJE43/lotus-sim-go/internal/store"
)

const (
	vorsPrize = "/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain"
	ferrite   = "/Lotus/Types/Items/MiscItems/Ferrite"
	boltorBP  = "/Lotus/Types/Recipes/Weapons/BoltorBlueprint"
)

type recordingNotifier struct {
	mu       sync.Mutex
	accounts []string
}

func (n *recordingNotifier) InventoryChanged(accountID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.accounts = append(n.accounts, accountID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.accounts)
}

type testEnv struct {
	handler  http.Handler
	store    *store.Store
	notifier *recordingNotifier
}

// failingSaves fails the next n saves, then defers to the real store.
type failingSaves struct {
	*store.Store
	n int
}

func (f *failingSaves) SaveInventory(ctx context.Context, inv *inventory.Inventory, msgs ...gamedata.Message) error {
	if f.n > 0 {
		f.n--
		return errors.New("disk full")
	}
	return f.Store.SaveInventory(ctx, inv, msgs...)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, nil)
}

// newTestEnvWithStore serves from wrap(st) when wrap is non-nil.
func newTestEnvWithStore(t *testing.T, wrap func(*store.Store) InventoryStore) *testEnv {
	t.Helper()
	log := zap.NewNop()
	st, err := store.Open(context.Background(), ":memory:", log)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	items := inventory.NewService(gamedata.Default(), log)
	notifier := &recordingNotifier{}
	var served InventoryStore = st
	if wrap != nil {
		served = wrap(st)
	}
	server := NewServer(Config{
		Store:    served,
		Quests:   quest.NewService(items, st, log),
		Crafting: crafting.NewService(items, log),
		Notifier: notifier,
		Logger:   log,
	})
	return &testEnv{handler: server.Routes(), store: st, notifier: notifier}
}

func (e *testEnv) seed(t *testing.T, fn func(inv *inventory.Inventory)) {
	t.Helper()
	inv, err := e.store.LoadOrCreateInventory(context.Background(), "acct")
	if err != nil {
		t.Fatalf("LoadOrCreateInventory() error = %v", err)
	}
	fn(inv)
	if err := e.store.SaveInventory(context.Background(), inv); err != nil {
		t.Fatalf("SaveInventory() error = %v", err)
	}
}

func (e *testEnv) load(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := e.store.LoadInventory(context.Background(), "acct")
	if err != nil {
		t.Fatalf("LoadInventory() error = %v", err)
	}
	return inv
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp HealthCheckResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != HealthStatusHealthy {
		t.Errorf("status = %s", resp.Status)
	}
}

func TestMissingAccountID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/startRecipe.php", crafting.StartRecipeRequest{RecipeName: boltorBP})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if got := w.Header().Get("X-Error-Type"); got != string(simerr.KindInvalidRequest) {
		t.Errorf("X-Error-Type = %q", got)
	}
}

func TestMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/startRecipe.php?accountId=acct", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestStartRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(inv *inventory.Inventory) {
		inv.RegularCredits = 20000
		inv.MiscItems.Append(&inventory.TypeCount{ItemType: ferrite, ItemCount: 500})
		inv.MiscItems.Append(&inventory.TypeCount{ItemType: "/Lotus/Types/Items/MiscItems/PolymerBundle", ItemCount: 300})
		inv.MiscItems.Append(&inventory.TypeCount{ItemType: "/Lotus/Types/Items/MiscItems/Circuits", ItemCount: 400})
	})

	w := env.do(t, http.MethodPost, "/api/startRecipe.php?accountId=acct", crafting.StartRecipeRequest{RecipeName: boltorBP})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		RecipeID         string         `json:"RecipeId"`
		InventoryChanges map[string]any `json:"InventoryChanges"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.RecipeID == "" {
		t.Error("Expected a recipe id")
	}
	if resp.InventoryChanges["RegularCredits"] != float64(-15000) {
		t.Errorf("InventoryChanges = %v", resp.InventoryChanges)
	}

	inv := env.load(t)
	if inv.RegularCredits != 5000 {
		t.Errorf("credits = %d, want 5000", inv.RegularCredits)
	}
	if inv.MiscItems.Len() != 0 {
		t.Errorf("MiscItems = %d stacks, want 0", inv.MiscItems.Len())
	}
	if !inv.PendingRecipes.Has(resp.RecipeID) {
		t.Error("pending recipe not saved")
	}
	if env.notifier.count() != 1 {
		t.Errorf("notifications = %d, want 1", env.notifier.count())
	}
}

func TestFailedMutationIsNotSaved(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(inv *inventory.Inventory) { inv.RegularCredits = 20000 })

	w := env.do(t, http.MethodPost, "/api/startRecipe.php?accountId=acct", crafting.StartRecipeRequest{RecipeName: boltorBP})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	var engineErr EngineError
	if err := json.NewDecoder(w.Body).Decode(&engineErr); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if engineErr.Type != string(simerr.KindNotFound) {
		t.Errorf("error type = %s", engineErr.Type)
	}

	inv := env.load(t)
	if inv.RegularCredits != 20000 || inv.PendingRecipes.Len() != 0 {
		t.Errorf("failed request was persisted: credits %d, pending %d", inv.RegularCredits, inv.PendingRecipes.Len())
	}
	if env.notifier.count() != 0 {
		t.Error("failed request notified subscribers")
	}
}

func TestKeyChainEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(inv *inventory.Inventory) {
		inv.QuestKeys.Append(&inventory.QuestKey{
			ItemType: vorsPrize,
			Progress: []inventory.QuestStage{{B: []any{}}},
		})
	})

	w := env.do(t, http.MethodPost, "/api/giveKeyChainTriggeredItems.php?accountId=acct",
		quest.KeyChainInfo{KeyChain: vorsPrize, ChainStage: 0})
	if w.Code != http.StatusOK {
		t.Fatalf("items: status %d: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/giveKeyChainTriggeredMessage.php?accountId=acct",
		quest.KeyChainInfo{KeyChain: vorsPrize, ChainStage: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("message: status %d: %s", w.Code, w.Body.String())
	}

	inv := env.load(t)
	if !inv.MiscItems.Has("/Lotus/Types/Items/ShipFeatureItems/ArsenalFeatureItem") {
		t.Error("stage item not granted")
	}
	qk, _ := inv.FindQuestKey(vorsPrize)
	if len(qk.Progress) != 2 || !qk.Progress[0].I || !qk.Progress[1].M {
		t.Errorf("progress = %+v", qk.Progress)
	}

	inbox, err := env.store.Inbox(context.Background(), "acct")
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox) != 1 || inbox[0].Subject != "/Lotus/Language/G1Quests/VorsPrize_StageTwoInboxTitle" {
		t.Errorf("inbox = %+v", inbox)
	}

	w = env.do(t, http.MethodPost, "/api/giveKeyChainTriggeredItems.php?accountId=acct",
		quest.KeyChainInfo{KeyChain: vorsPrize, ChainStage: 5})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out of range stage: status %d", w.Code)
	}
}

func TestUpdateQuestEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(inv *inventory.Inventory) {
		inv.QuestKeys.Append(&inventory.QuestKey{ItemType: vorsPrize, Progress: []inventory.QuestStage{{B: []any{}}}})
	})

	w := env.do(t, http.MethodPost, "/api/updateQuest.php?accountId=acct", map[string]any{
		"QuestKeys": []inventory.QuestKey{{
			ItemType: vorsPrize,
			Progress: []inventory.QuestStage{{C: 1, B: []any{}}, {B: []any{}}},
		}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp updateQuestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.MissionRewards == nil {
		t.Error("MissionRewards should be an empty list")
	}

	qk, _ := env.load(t).FindQuestKey(vorsPrize)
	if len(qk.Progress) != 2 || qk.Progress[0].C != 1 {
		t.Errorf("progress = %+v", qk.Progress)
	}

	w = env.do(t, http.MethodPost, "/api/updateQuest.php?accountId=acct", map[string]any{"QuestKeys": []any{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty update: status %d", w.Code)
	}
}

func TestCompleteQuestEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/custom/completeQuest?accountId=acct&questKey="+vorsPrize, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	qk, ok := env.load(t).FindQuestKey(vorsPrize)
	if !ok || !qk.Completed || qk.CompletionDate == nil {
		t.Errorf("quest key = %+v", qk)
	}

	w = env.do(t, http.MethodGet, "/custom/completeQuest?accountId=acct&questKey=/Lotus/Types/Keys/Nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown quest: status %d", w.Code)
	}
}

func TestFailedSaveDeliversNoMessages(t *testing.T) {
	env := newTestEnvWithStore(t, func(st *store.Store) InventoryStore {
		return &failingSaves{Store: st, n: 1}
	})
	want := 0
	for _, cs := range gamedata.Default().ChainStages(vorsPrize) {
		if cs.MessageToSendWhenTriggered != nil {
			want++
		}
	}
	if want == 0 {
		t.Fatal("quest has no stage messages")
	}

	inboxLen := func() int {
		t.Helper()
		inbox, err := env.store.Inbox(context.Background(), "acct")
		if err != nil {
			t.Fatalf("Inbox() error = %v", err)
		}
		return len(inbox)
	}

	target := "/custom/completeQuest?accountId=acct&questKey=" + vorsPrize
	w := env.do(t, http.MethodGet, target, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("first attempt: status %d", w.Code)
	}
	if got := inboxLen(); got != 0 {
		t.Errorf("failed save delivered %d messages", got)
	}
	if env.notifier.count() != 0 {
		t.Error("failed save notified subscribers")
	}

	for attempt := 2; attempt <= 3; attempt++ {
		w = env.do(t, http.MethodGet, target, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status %d: %s", attempt, w.Code, w.Body.String())
		}
		if got := inboxLen(); got != want {
			t.Errorf("attempt %d: inbox has %d messages, want %d", attempt, got, want)
		}
	}
}

func TestGildWeaponEndpoint(t *testing.T) {
	env := newTestEnv(t)
	const zawID = "0123456789abcdef01234567"
	env.seed(t, func(inv *inventory.Inventory) {
		inv.Melee.Append(&inventory.Equipment{ItemID: zawID, ItemType: "/Lotus/Weapons/Ostron/Melee/LotusModularWeapon", XP: 100})
	})

	w := env.do(t, http.MethodPost, "/api/gildWeapon.php?accountId=acct&ItemId="+zawID+"&Category=Melee",
		map[string]any{"ItemName": "Sharp", "Recipe": crafting.WebUIRecipe})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	zaw, _ := env.load(t).Melee.Find(zawID)
	if zaw.Features&inventory.FeatureGilded == 0 {
		t.Errorf("weapon not gilded: %+v", zaw)
	}

	w = env.do(t, http.MethodPost, "/api/gildWeapon.php?accountId=acct&ItemId="+zawID+"&Category=Bogus",
		map[string]any{"Recipe": crafting.WebUIRecipe})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown category: status %d", w.Code)
	}
}

func TestInventoryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/inventory.php?accountId=acct", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var inv inventory.Inventory
	if err := json.NewDecoder(w.Body).Decode(&inv); err != nil {
		t.Fatalf("Failed to decode inventory: %v", err)
	}
	if inv.AccountOwnerID != "acct" || inv.WeaponBin.Slots != 10 {
		t.Errorf("inventory = %+v", inv)
	}
}

func TestRecoveryHandler(t *testing.T) {
	eh := NewErrorHandler(zap.NewNop())
	h := eh.RecoveryHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind simerr.Kind
		want int
	}{
		{simerr.KindNotFound, http.StatusNotFound},
		{simerr.KindInvalidRequest, http.StatusBadRequest},
		{simerr.KindUnsupportedCategory, http.StatusUnprocessableEntity},
		{simerr.KindConfiguration, http.StatusInternalServerError},
		{simerr.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.kind); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestAccountLocksSerialize(t *testing.T) {
	locks := newAccountLocks()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("acct")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
	if len(locks.locks) != 0 {
		t.Errorf("%d lock entries leaked", len(locks.locks))
	}
}
