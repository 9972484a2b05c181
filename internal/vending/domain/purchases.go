package domain

import "context"

// Receipt is the outcome of a committed purchase. SecretIssued is false when
// the item's pool ran dry; the purchase itself stays paid for and committed.
type Receipt struct {
	ID             string
	UserID         string
	ItemName       string
	PricePaid      uint32
	NewBalance     uint32
	RemainingStock int
	Secret         string
	SecretIssued   bool
}

// SecretCourier privately conveys an issued secret (or the exhaustion
// notice) to a user. Delivery happens outside the purchase transaction and
// is best-effort: no implementation may block a purchase or be consulted for
// its result.
type SecretCourier interface {
	DeliverSecret(ctx context.Context, userID string, itemName string, secret string) error
	DeliverExhaustionNotice(ctx context.Context, userID string, itemName string) error
}
