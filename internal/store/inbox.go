package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
)

// InboxMessage is a delivered message as stored.
type InboxMessage struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	CreatedAt time.Time `json:"date"`
	gamedata.Message
}

// SendMessage stores msgs in ownerID's inbox in one transaction. Request
// handlers buffer messages instead and commit them through SaveInventory.
func (s *Store) SendMessage(ctx context.Context, ownerID string, msgs ...gamedata.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin inbox tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertMessages(ctx, tx, ownerID, s.now().UTC(), msgs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit inbox tx: %w", err)
	}
	return nil
}

func insertMessages(ctx context.Context, tx *sql.Tx, ownerID string, now time.Time, msgs []gamedata.Message) error {
	for _, msg := range msgs {
		att, err := json.Marshal(nonNil(msg.Attachments))
		if err != nil {
			return fmt.Errorf("store: encode attachments: %w", err)
		}
		counted, err := json.Marshal(nonNil(msg.CountedAttachments))
		if err != nil {
			return fmt.Errorf("store: encode counted attachments: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO inbox_messages
				(id, account_id, sender, subject, body, icon, attachments, counted_attachments, high_priority, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			inventory.NewID(), ownerID, msg.Sender, msg.Subject, msg.Body, msg.Icon,
			string(att), string(counted), msg.HighPriority, now)
		if err != nil {
			return fmt.Errorf("store: insert inbox message: %w", err)
		}
	}
	return nil
}

// Inbox returns ownerID's messages, oldest first.
func (s *Store) Inbox(ctx context.Context, ownerID string) ([]InboxMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, sender, subject, body, icon, attachments, counted_attachments, high_priority, created_at
		FROM inbox_messages WHERE account_id = ? ORDER BY created_at, rowid`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store: query inbox: %w", err)
	}
	defer rows.Close()

	out := []InboxMessage{}
	for rows.Next() {
		var (
			m            InboxMessage
			att, counted string
		)
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Sender, &m.Subject, &m.Body, &m.Icon,
			&att, &counted, &m.HighPriority, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan inbox message: %w", err)
		}
		if err := json.Unmarshal([]byte(att), &m.Attachments); err != nil {
			return nil, fmt.Errorf("store: decode attachments: %w", err)
		}
		if err := json.Unmarshal([]byte(counted), &m.CountedAttachments); err != nil {
			return nil, fmt.Errorf("store: decode counted attachments: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
