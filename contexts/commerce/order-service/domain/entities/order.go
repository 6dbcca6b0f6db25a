package entities

import (
	"strings"
	"time"

	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a member of the order status enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Paid reports whether the status denotes a completed payment.
func (s OrderStatus) Paid() bool {
	return s == OrderStatusProcessing || s == OrderStatusDelivered
}

// OrderItem is a purchase-time snapshot of a catalog product.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
}

// Order is the central aggregate. TotalAmount is in currency minor units
// (whole won). PaymentID/PaymentMethod/PaymentStatus are set only by the
// payment reconciler. CreatedAt anchors the entitlement window.
type Order struct {
	ID            string
	OwnerID       string
	Items         []OrderItem
	TotalAmount   int64
	Status        OrderStatus
	PaymentID     string
	PaymentMethod string
	PaymentStatus string
	Shipping      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder validates a checkout-created order. Items carry the per-unit
// snapshot; the stored total falls back to the item sum when the caller did
// not supply one.
func NewOrder(
	id string,
	ownerID string,
	items []OrderItem,
	totalAmount int64,
	shipping string,
	createdAt time.Time,
) (Order, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(ownerID) == "" {
		return Order{}, domainerrors.ErrInvalidOrder
	}
	if len(items) == 0 {
		return Order{}, domainerrors.ErrInvalidOrder
	}

	var itemSum int64
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 || item.UnitPrice < 0 {
			return Order{}, domainerrors.ErrInvalidOrder
		}
		itemSum += item.UnitPrice * int64(item.Quantity)
	}
	if totalAmount <= 0 {
		totalAmount = itemSum
	}

	return Order{
		ID:          id,
		OwnerID:     ownerID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		Shipping:    shipping,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	}, nil
}

// IsPaid reports whether the order is in a paid state.
func (o Order) IsPaid() bool {
	return o.Status.Paid()
}
