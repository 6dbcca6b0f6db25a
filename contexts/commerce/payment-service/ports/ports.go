package ports

import (
	"context"
	"time"

	"classbay/contexts/commerce/payment-service/domain/entities"
)

// PaymentGateway fetches the authoritative payment record for a reference.
// Token exchange against the gateway secret is an adapter concern.
type PaymentGateway interface {
	FetchPayment(ctx context.Context, paymentID string) (entities.Payment, error)
}

// LedgerItem is the reconciler's view of a purchase line, declared by the
// caller because the gateway carries no item manifest.
type LedgerItem struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
}

// LedgerUpsert carries the reconciled payment fields into the order ledger.
type LedgerUpsert struct {
	OrderID       string
	OwnerID       string
	Items         []LedgerItem
	TotalAmount   int64
	PaymentID     string
	PaymentMethod string
	PaymentStatus string
}

// LedgerOrder is the ledger row as visible to the reconciler.
type LedgerOrder struct {
	ID            string
	OwnerID       string
	Items         []LedgerItem
	TotalAmount   int64
	Status        string
	PaymentID     string
	PaymentMethod string
	PaymentStatus string
	Shipping      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLedger is the reconciler's write surface on the order store.
// UpsertPaid must be a single atomic statement: it merges payment fields,
// flips status to processing without an owner match, never reverts
// processing/delivered, binds the owner only when the stored owner is empty,
// and applies items only when the row is created (or was created item-less).
type OrderLedger interface {
	UpsertPaid(ctx context.Context, upsert LedgerUpsert, now time.Time) (LedgerOrder, error)
}

// Clock allows deterministic testing of reconciliation timestamps.
type Clock interface {
	Now() time.Time
}
