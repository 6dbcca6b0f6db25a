// Package httptransport defines the JSON contracts of the payment endpoints.
package httptransport

// PaymentItemDTO mirrors an order line as declared by the checkout client.
type PaymentItemDTO struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category,omitempty"`
}

// VerifyPaymentRequest is the body of POST /payments/verify.
type VerifyPaymentRequest struct {
	PaymentID   string           `json:"payment_id"`
	OrderID     string           `json:"order_id"`
	Items       []PaymentItemDTO `json:"items,omitempty"`
	TotalAmount int64            `json:"total_amount,omitempty"`
}

// PaymentDTO is the gateway payment record as returned to clients.
type PaymentDTO struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method,omitempty"`
	PaidAt    string `json:"paid_at,omitempty"`
}

// LedgerOrderDTO is the reconciled order row after verification.
type LedgerOrderDTO struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Items         []PaymentItemDTO `json:"items"`
	TotalAmount   int64            `json:"total_amount"`
	Status        string           `json:"status"`
	PaymentID     string           `json:"payment_id,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	PaymentStatus string           `json:"payment_status,omitempty"`
	Shipping      string           `json:"shipping,omitempty"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type VerifyPaymentResponse struct {
	Payment PaymentDTO     `json:"payment"`
	Order   LedgerOrderDTO `json:"order"`
}

type GetPaymentResponse struct {
	Payment PaymentDTO `json:"payment"`
}

// ErrorResponse is the uniform error body for payment endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
