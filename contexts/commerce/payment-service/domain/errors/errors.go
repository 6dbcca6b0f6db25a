package errors

import "errors"

var (
	ErrInvalidVerification = errors.New("payment reference and order id are required")
	ErrPaymentIncomplete   = errors.New("gateway has not settled this payment")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)
