package commands

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/commerce/payment-service/application"
	"classbay/contexts/commerce/payment-service/domain/entities"
	domainerrors "classbay/contexts/commerce/payment-service/domain/errors"
	"classbay/contexts/commerce/payment-service/ports"
)

// VerifyPaymentCommand reconciles a gateway payment into the order ledger.
// OwnerID is the verified principal when one is present on the request; Items
// and ExpectedAmount are caller-declared and best-effort.
type VerifyPaymentCommand struct {
	PaymentID      string
	OrderID        string
	OwnerID        string
	Items          []ports.LedgerItem
	ExpectedAmount int64
}

type VerifyPaymentResult struct {
	Payment entities.Payment
	Order   ports.LedgerOrder
}

type VerifyPaymentUseCase struct {
	Gateway ports.PaymentGateway
	Ledger  ports.OrderLedger
	Clock   ports.Clock
	Logger  *slog.Logger
}

// Execute fetches the gateway's record and upserts the ledger to a paid state.
// The call is idempotent: repeating it for the same (payment, order) pair is a
// no-op upsert converging on the same row.
func (u VerifyPaymentUseCase) Execute(ctx context.Context, cmd VerifyPaymentCommand) (VerifyPaymentResult, error) {
	if strings.TrimSpace(cmd.PaymentID) == "" || strings.TrimSpace(cmd.OrderID) == "" {
		return VerifyPaymentResult{}, domainerrors.ErrInvalidVerification
	}

	logger := application.ResolveLogger(u.Logger)

	payment, err := u.Gateway.FetchPayment(ctx, cmd.PaymentID)
	if err != nil {
		return VerifyPaymentResult{}, err
	}
	if !payment.Paid() {
		logger.Warn("verification rejected unsettled payment",
			"event", "payment_verify_unsettled",
			"module", "commerce/payment-service",
			"layer", "application",
			"payment_id", payment.ID,
			"order_id", cmd.OrderID,
			"gateway_status", payment.Status,
		)
		return VerifyPaymentResult{}, domainerrors.ErrPaymentIncomplete
	}

	// The gateway amount is authoritative. A mismatch against the locally
	// expected amount is logged for operators but never blocks delivery.
	if cmd.ExpectedAmount > 0 && cmd.ExpectedAmount != payment.Amount {
		logger.Warn("payment amount mismatch, reconciling to gateway amount",
			"event", "payment_verify_amount_mismatch",
			"module", "commerce/payment-service",
			"layer", "application",
			"payment_id", payment.ID,
			"order_id", cmd.OrderID,
			"expected_amount", cmd.ExpectedAmount,
			"gateway_amount", payment.Amount,
		)
	}

	order, err := u.Ledger.UpsertPaid(ctx, ports.LedgerUpsert{
		OrderID:       cmd.OrderID,
		OwnerID:       cmd.OwnerID,
		Items:         cmd.Items,
		TotalAmount:   payment.Amount,
		PaymentID:     payment.ID,
		PaymentMethod: payment.Method,
		PaymentStatus: payment.Status,
	}, u.Clock.Now())
	if err != nil {
		return VerifyPaymentResult{}, err
	}

	if strings.TrimSpace(order.OwnerID) == "" {
		// Known gap: a payment confirmed before any authenticated checkout
		// leaves the row owner-less until a principal is bound.
		logger.Warn("reconciled order has no bound owner",
			"event", "payment_verify_ownerless_order",
			"module", "commerce/payment-service",
			"layer", "application",
			"payment_id", payment.ID,
			"order_id", order.ID,
		)
	}

	logger.Info("payment reconciled",
		"event", "payment_verified",
		"module", "commerce/payment-service",
		"layer", "application",
		"payment_id", payment.ID,
		"order_id", order.ID,
		"amount", payment.Amount,
		"status", order.Status,
	)
	return VerifyPaymentResult{Payment: payment, Order: order}, nil
}
