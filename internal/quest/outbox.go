package quest

import (
	"context"
	"fmt"
	"slices"

	"github.com/MJE43/lotus-sim-go/internal/gamedata"
)

// Outbox is a Messenger that holds one account's messages until the caller
// commits them together with the inventory.
type Outbox struct {
	ownerID string
	msgs    []gamedata.Message
}

func NewOutbox(ownerID string) *Outbox {
	return &Outbox{ownerID: ownerID}
}

func (o *Outbox) SendMessage(_ context.Context, ownerID string, msgs ...gamedata.Message) error {
	if ownerID != o.ownerID {
		return fmt.Errorf("outbox for %s cannot send to %s", o.ownerID, ownerID)
	}
	o.msgs = append(o.msgs, msgs...)
	return nil
}

// Messages returns the pending messages in send order.
func (o *Outbox) Messages() []gamedata.Message {
	return slices.Clone(o.msgs)
}
