package entities

import "time"

// PurchasedItem is the slice of an order line the entitlement check needs.
type PurchasedItem struct {
	ProductID int64
	Title     string
}

// PurchasedOrder is the download context's read-only view of an order row.
type PurchasedOrder struct {
	ID        string
	OwnerID   string
	Items     []PurchasedItem
	Status    string
	CreatedAt time.Time
}

// Paid reports whether the order is in a status that can carry entitlements.
func (o PurchasedOrder) Paid() bool {
	return o.Status == "processing" || o.Status == "delivered"
}
