package errors

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order id already exists")
	ErrInvalidOrder   = errors.New("invalid order request")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrOwnerMismatch  = errors.New("order owner mismatch")
)
