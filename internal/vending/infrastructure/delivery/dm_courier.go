package delivery

import (
	"context"
	"fmt"

	"github.com/mumeireplit/vending/internal/pkg/logging"
)

const exhaustionNotice = "Sorry, no serial codes are available right now."

type directMessage struct {
	userID   string
	itemName string
	body     string
}

// DMCourier stands in for the chat platform's private-message channel.
// Deliveries are queued and drained by a background worker, so the purchase
// path only ever pays for a channel send; a full queue drops the message
// rather than blocking anyone.
type DMCourier struct {
	queue  chan directMessage
	logger logging.Logger
}

func NewDMCourier(queueSize int, logger logging.Logger) *DMCourier {
	return &DMCourier{
		queue:  make(chan directMessage, queueSize),
		logger: logger,
	}
}

func (c *DMCourier) DeliverSecret(ctx context.Context, userID string, itemName string, secret string) error {
	return c.enqueue(directMessage{userID: userID, itemName: itemName, body: secret})
}

func (c *DMCourier) DeliverExhaustionNotice(ctx context.Context, userID string, itemName string) error {
	return c.enqueue(directMessage{userID: userID, itemName: itemName, body: exhaustionNotice})
}

func (c *DMCourier) enqueue(dm directMessage) error {
	select {
	case c.queue <- dm:
		return nil
	default:
		return fmt.Errorf("delivery queue is full")
	}
}

// Run drains the queue until the context is cancelled.
func (c *DMCourier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case dm := <-c.queue:
			c.logger.Info("direct message delivered", "user", dm.userID, "item", dm.itemName)
		}
	}
}

// Pending reports how many deliveries are still queued.
func (c *DMCourier) Pending() int {
	return len(c.queue)
}
