package ports

import (
	"context"
	"time"

	"classbay/contexts/commerce/order-service/domain/entities"
)

// Repository owns order persistence. Every write is a single atomic statement;
// upsert semantics are the ledger's only concurrency control. The paid upsert
// lives with the payment reconciler, which is its only caller.
type Repository interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	// GetOrder is owner-scoped: a row owned by someone else behaves as absent.
	GetOrder(ctx context.Context, orderID string, ownerID string) (entities.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, ownerID string, status entities.OrderStatus, updatedAt time.Time) (entities.Order, error)
}

// Clock allows deterministic testing of timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts order identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
