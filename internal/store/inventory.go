package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// LoadInventory returns the stored inventory for accountID.
func (s *Store) LoadInventory(ctx context.Context, accountID string) (*inventory.Inventory, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM inventories WHERE account_id = ?`, accountID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, simerr.NotFoundf("inventory for account %s not found", accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load inventory %s: %w", accountID, err)
	}

	inv := inventory.New(accountID)
	if err := json.Unmarshal([]byte(data), inv); err != nil {
		return nil, fmt.Errorf("store: decode inventory %s: %w", accountID, err)
	}
	return inv, nil
}

// LoadOrCreateInventory returns the stored inventory, creating an empty one
// the first time an account is seen.
func (s *Store) LoadOrCreateInventory(ctx context.Context, accountID string) (*inventory.Inventory, error) {
	inv, err := s.LoadInventory(ctx, accountID)
	if simerr.KindOf(err) != simerr.KindNotFound {
		return inv, err
	}
	inv = inventory.New(accountID)
	if err := s.SaveInventory(ctx, inv); err != nil {
		return nil, err
	}
	s.log.Debug("created inventory", zap.String("accountId", accountID))
	return inv, nil
}

// SaveInventory writes inv as a whole, replacing any previous version. Any
// msgs are delivered to the inventory owner's inbox in the same transaction,
// so neither is stored without the other.
func (s *Store) SaveInventory(ctx context.Context, inv *inventory.Inventory, msgs ...gamedata.Message) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("store: encode inventory %s: %w", inv.AccountOwnerID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin save tx: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventories (account_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		inv.AccountOwnerID, string(data), now, now)
	if err != nil {
		return fmt.Errorf("store: save inventory %s: %w", inv.AccountOwnerID, err)
	}
	if err := insertMessages(ctx, tx, inv.AccountOwnerID, now, msgs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit save tx: %w", err)
	}
	return nil
}
