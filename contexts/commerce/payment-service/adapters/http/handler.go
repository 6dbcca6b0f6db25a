package httpadapter

import (
	"context"
	"log/slog"

	"classbay/contexts/commerce/payment-service/application/commands"
	"classbay/contexts/commerce/payment-service/application/queries"
	"classbay/contexts/commerce/payment-service/domain/entities"
	"classbay/contexts/commerce/payment-service/ports"
	httptransport "classbay/contexts/commerce/payment-service/transport/http"
)

const timeLayout = "2006-01-02T15:04:05Z"

type Handler struct {
	VerifyPayment commands.VerifyPaymentUseCase
	GetPayment    queries.GetPaymentUseCase
	Logger        *slog.Logger
}

// VerifyPaymentHandler godoc
// @Summary Verify a payment
// @Description Confirms a gateway payment and reconciles the referenced order
// @Description to a paid state. Authentication is optional; when a principal
// @Description is present it is bound as the order owner.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.VerifyPaymentRequest true "Verification payload"
// @Success 200 {object} httptransport.VerifyPaymentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payments/verify [post]
func (h Handler) VerifyPaymentHandler(
	ctx context.Context,
	ownerID string,
	req httptransport.VerifyPaymentRequest,
) (httptransport.VerifyPaymentResponse, error) {
	result, err := h.VerifyPayment.Execute(ctx, commands.VerifyPaymentCommand{
		PaymentID:      req.PaymentID,
		OrderID:        req.OrderID,
		OwnerID:        ownerID,
		Items:          mapItemsFromDTO(req.Items),
		ExpectedAmount: req.TotalAmount,
	})
	if err != nil {
		return httptransport.VerifyPaymentResponse{}, err
	}
	return httptransport.VerifyPaymentResponse{
		Payment: mapPayment(result.Payment),
		Order:   mapLedgerOrder(result.Order),
	}, nil
}

// GetPaymentHandler godoc
// @Summary Get a gateway payment
// @Description Returns the gateway's record for one payment reference.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param payment_id path string true "Gateway payment id"
// @Success 200 {object} httptransport.GetPaymentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payments/{payment_id} [get]
func (h Handler) GetPaymentHandler(ctx context.Context, paymentID string) (httptransport.GetPaymentResponse, error) {
	result, err := h.GetPayment.Execute(ctx, queries.GetPaymentQuery{PaymentID: paymentID})
	if err != nil {
		return httptransport.GetPaymentResponse{}, err
	}
	return httptransport.GetPaymentResponse{Payment: mapPayment(result.Payment)}, nil
}

func mapPayment(payment entities.Payment) httptransport.PaymentDTO {
	dto := httptransport.PaymentDTO{
		PaymentID: payment.ID,
		OrderID:   payment.OrderRef,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Method:    payment.Method,
	}
	if !payment.PaidAt.IsZero() {
		dto.PaidAt = payment.PaidAt.UTC().Format(timeLayout)
	}
	return dto
}

func mapLedgerOrder(order ports.LedgerOrder) httptransport.LedgerOrderDTO {
	items := make([]httptransport.PaymentItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, httptransport.PaymentItemDTO{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return httptransport.LedgerOrderDTO{
		ID:            order.ID,
		UserID:        order.OwnerID,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Shipping:      order.Shipping,
		CreatedAt:     order.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:     order.UpdatedAt.UTC().Format(timeLayout),
	}
}

func mapItemsFromDTO(items []httptransport.PaymentItemDTO) []ports.LedgerItem {
	mapped := make([]ports.LedgerItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, ports.LedgerItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return mapped
}
