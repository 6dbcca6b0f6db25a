package httptransport

type OrderItemDTO struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category,omitempty"`
}

type OrderDTO struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	Items         []OrderItemDTO `json:"items"`
	TotalAmount   int64          `json:"total_amount"`
	Status        string         `json:"status"`
	PaymentID     string         `json:"payment_id,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	PaymentStatus string         `json:"payment_status,omitempty"`
	Shipping      string         `json:"shipping,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type CreateOrderRequest struct {
	ID          string         `json:"id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Items       []OrderItemDTO `json:"items"`
	TotalAmount int64          `json:"total_amount,omitempty"`
	Shipping    string         `json:"shipping,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Order OrderDTO `json:"order"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
