package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
)

// Store is an in-memory adapter implementing the order ledger ports for local
// runtime and tests. It is not intended as production persistence.
type Store struct {
	mu       sync.RWMutex
	orders   map[string]entities.Order
	sequence uint64
}

func NewStore(seedOrders []entities.Order) *Store {
	orders := make(map[string]entities.Order, len(seedOrders))
	for _, order := range seedOrders {
		orders[order.ID] = order
	}
	return &Store{orders: orders}
}

func (s *Store) CreateOrder(_ context.Context, order entities.Order) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[order.ID]; exists {
		return entities.Order{}, domainerrors.ErrDuplicateOrder
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) GetOrder(_ context.Context, orderID string, ownerID string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok || order.OwnerID != ownerID {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *Store) ListOrders(_ context.Context, ownerID string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.Order
	for _, order := range s.orders {
		if order.OwnerID == ownerID {
			items = append(items, order)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateOrderStatus(
	_ context.Context,
	orderID string,
	ownerID string,
	status entities.OrderStatus,
	updatedAt time.Time,
) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.OwnerID != ownerID {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt.UTC()
	s.orders[orderID] = order
	return order, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return fmt.Sprintf("order_%d", atomic.AddUint64(&s.sequence, 1)), nil
}
