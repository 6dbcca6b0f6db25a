package memory

import (
	"context"
	"sync"
	"time"

	"classbay/contexts/commerce/payment-service/ports"
)

// Ledger is an in-memory order ledger mirroring the SQL upsert semantics.
type Ledger struct {
	mu     sync.Mutex
	orders map[string]ports.LedgerOrder
}

func NewLedger() *Ledger {
	return &Ledger{orders: make(map[string]ports.LedgerOrder)}
}

// Seed places an order row directly into the ledger.
func (l *Ledger) Seed(order ports.LedgerOrder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[order.ID] = order
}

// Get reads a row back for test assertions.
func (l *Ledger) Get(orderID string) (ports.LedgerOrder, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	order, ok := l.orders[orderID]
	return order, ok
}

func (l *Ledger) UpsertPaid(_ context.Context, upsert ports.LedgerUpsert, now time.Time) (ports.LedgerOrder, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.orders[upsert.OrderID]
	if !ok {
		created := ports.LedgerOrder{
			ID:            upsert.OrderID,
			OwnerID:       upsert.OwnerID,
			Items:         upsert.Items,
			TotalAmount:   upsert.TotalAmount,
			Status:        "processing",
			PaymentID:     upsert.PaymentID,
			PaymentMethod: upsert.PaymentMethod,
			PaymentStatus: upsert.PaymentStatus,
			CreatedAt:     now.UTC(),
			UpdatedAt:     now.UTC(),
		}
		l.orders[created.ID] = created
		return created, nil
	}

	if existing.Status != "processing" && existing.Status != "delivered" {
		existing.Status = "processing"
	}
	if existing.OwnerID == "" {
		existing.OwnerID = upsert.OwnerID
	}
	if len(existing.Items) == 0 {
		existing.Items = upsert.Items
	}
	existing.TotalAmount = upsert.TotalAmount
	existing.PaymentID = upsert.PaymentID
	existing.PaymentMethod = upsert.PaymentMethod
	existing.PaymentStatus = upsert.PaymentStatus
	existing.UpdatedAt = now.UTC()

	l.orders[existing.ID] = existing
	return existing, nil
}
