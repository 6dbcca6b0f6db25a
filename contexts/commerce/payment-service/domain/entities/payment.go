package entities

import "time"

const StatusPaid = "paid"

// Payment is the gateway's authoritative view of one payment reference.
// Amount is in currency minor units (whole won).
type Payment struct {
	// ID is the gateway payment reference (imp_uid).
	ID string
	// OrderRef is the merchant order id attached at checkout (merchant_uid).
	OrderRef string
	Status   string
	Amount   int64
	Method   string
	PaidAt   time.Time
}

// Paid reports whether the gateway settled the payment.
func (p Payment) Paid() bool {
	return p.Status == StatusPaid
}
