package memory

import (
	"context"

	"classbay/contexts/commerce/payment-service/domain/entities"
	domainerrors "classbay/contexts/commerce/payment-service/domain/errors"
)

// Gateway is an in-memory payment gateway for development and tests.
type Gateway struct {
	payments map[string]entities.Payment
	down     bool
}

func NewGateway() *Gateway {
	return &Gateway{payments: make(map[string]entities.Payment)}
}

// Register seeds a payment record the gateway will return.
func (g *Gateway) Register(payment entities.Payment) {
	g.payments[payment.ID] = payment
}

// SetUnavailable makes every subsequent fetch fail like a gateway outage.
func (g *Gateway) SetUnavailable(down bool) {
	g.down = down
}

func (g *Gateway) FetchPayment(_ context.Context, paymentID string) (entities.Payment, error) {
	if g.down {
		return entities.Payment{}, domainerrors.ErrGatewayUnavailable
	}
	payment, ok := g.payments[paymentID]
	if !ok {
		return entities.Payment{}, domainerrors.ErrGatewayUnavailable
	}
	return payment, nil
}
