package queries

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/commerce/payment-service/domain/entities"
	domainerrors "classbay/contexts/commerce/payment-service/domain/errors"
	"classbay/contexts/commerce/payment-service/ports"
)

// GetPaymentQuery is a read-only passthrough to the gateway record.
type GetPaymentQuery struct {
	PaymentID string
}

type GetPaymentResult struct {
	Payment entities.Payment
}

type GetPaymentUseCase struct {
	Gateway ports.PaymentGateway
	Logger  *slog.Logger
}

func (u GetPaymentUseCase) Execute(ctx context.Context, query GetPaymentQuery) (GetPaymentResult, error) {
	if strings.TrimSpace(query.PaymentID) == "" {
		return GetPaymentResult{}, domainerrors.ErrInvalidVerification
	}
	payment, err := u.Gateway.FetchPayment(ctx, query.PaymentID)
	if err != nil {
		return GetPaymentResult{}, err
	}
	return GetPaymentResult{Payment: payment}, nil
}
