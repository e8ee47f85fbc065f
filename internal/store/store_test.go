package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", zap.NewNop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadInventoryMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadInventory(context.Background(), "nobody")
	if simerr.KindOf(err) != simerr.KindNotFound {
		t.Fatalf("LoadInventory() error = %v, want not found", err)
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inv, err := s.LoadOrCreateInventory(ctx, "acct")
	if err != nil {
		t.Fatalf("LoadOrCreateInventory() error = %v", err)
	}
	if inv.WeaponBin.Slots != 10 {
		t.Errorf("new inventory WeaponBin = %d, want 10", inv.WeaponBin.Slots)
	}

	done := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	inv.RegularCredits = 4200
	inv.MiscItems.Append(&inventory.TypeCount{ItemType: "/Lotus/Types/Items/MiscItems/Ferrite", ItemCount: 300})
	inv.QuestKeys.Append(&inventory.QuestKey{
		ItemType:       "/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain",
		Completed:      true,
		CompletionDate: &done,
		Progress:       []inventory.QuestStage{{C: 1, I: true, M: true, B: []any{}}},
	})
	inv.Pistols.Append(&inventory.Equipment{ItemID: "0123456789abcdef01234567", ItemType: "/Lotus/Weapons/Tenno/Pistol/Bolto"})

	if err := s.SaveInventory(ctx, inv); err != nil {
		t.Fatalf("SaveInventory() error = %v", err)
	}

	got, err := s.LoadInventory(ctx, "acct")
	if err != nil {
		t.Fatalf("LoadInventory() error = %v", err)
	}
	if got.RegularCredits != 4200 {
		t.Errorf("RegularCredits = %d", got.RegularCredits)
	}
	if tc, ok := got.MiscItems.Find("/Lotus/Types/Items/MiscItems/Ferrite"); !ok || tc.ItemCount != 300 {
		t.Errorf("ferrite = %+v", tc)
	}
	qk, ok := got.FindQuestKey("/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain")
	if !ok || !qk.Completed || qk.CompletionDate == nil || !qk.CompletionDate.Equal(done) {
		t.Errorf("quest key = %+v", qk)
	}
	if !got.Pistols.Has("0123456789abcdef01234567") {
		t.Error("pistol lost in round trip")
	}

	again, err := s.LoadOrCreateInventory(ctx, "acct")
	if err != nil {
		t.Fatalf("LoadOrCreateInventory() error = %v", err)
	}
	if again.RegularCredits != 4200 {
		t.Error("LoadOrCreateInventory replaced an existing inventory")
	}
}

func TestSendMessage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	msgs := []gamedata.Message{
		{Sender: "/Lotus/Language/Bosses/Ordis", Subject: "First", Body: "hello", Attachments: []string{"/Lotus/StoreItems/Upgrades/Mods/Rifle/WeaponDamageAmountMod"}},
		{Sender: "/Lotus/Language/Bosses/Lotus", Subject: "Second", Body: "again", HighPriority: true},
	}
	if err := s.SendMessage(ctx, "acct", msgs...); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if err := s.SendMessage(ctx, "other", msgs[0]); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	inbox, err := s.Inbox(ctx, "acct")
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("inbox has %d messages, want 2", len(inbox))
	}
	if inbox[0].Subject != "First" || len(inbox[0].Attachments) != 1 {
		t.Errorf("first message = %+v", inbox[0])
	}
	if !inbox[1].HighPriority || len(inbox[1].Attachments) != 0 {
		t.Errorf("second message = %+v", inbox[1])
	}
}

func TestSaveInventoryCommitsMessages(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inv := inventory.New("acct")
	inv.RegularCredits = 10
	msg := gamedata.Message{Sender: "/Lotus/Language/Bosses/Ordis", Subject: "Done"}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := s.SaveInventory(canceled, inv, msg); err == nil {
		t.Fatal("expected an error saving with a canceled context")
	}
	if _, err := s.LoadInventory(ctx, "acct"); simerr.KindOf(err) != simerr.KindNotFound {
		t.Errorf("LoadInventory() error = %v, want not found", err)
	}
	inbox, err := s.Inbox(ctx, "acct")
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox) != 0 {
		t.Errorf("failed save delivered %d messages", len(inbox))
	}

	if err := s.SaveInventory(ctx, inv, msg); err != nil {
		t.Fatalf("SaveInventory() error = %v", err)
	}
	inbox, err = s.Inbox(ctx, "acct")
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox) != 1 || inbox[0].Subject != "Done" {
		t.Errorf("inbox = %+v", inbox)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.db")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s, err := Open(ctx, path, zap.NewNop())
		if err != nil {
			t.Fatalf("Open() #%d error = %v", i+1, err)
		}
		if _, err := s.LoadOrCreateInventory(ctx, "acct"); err != nil {
			t.Fatalf("LoadOrCreateInventory() #%d error = %v", i+1, err)
		}
		s.Close()
	}
}
