package queries

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/commerce/order-service/application"
	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
	"classbay/contexts/commerce/order-service/ports"
)

// GetOrderQuery is an owner-scoped single-order read. Cross-owner access is
// indistinguishable from a missing order.
type GetOrderQuery struct {
	OrderID string
	OwnerID string
}

type GetOrderResult struct {
	Order entities.Order
}

type GetOrderUseCase struct {
	Orders ports.Repository
	Logger *slog.Logger
}

func (u GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (GetOrderResult, error) {
	if strings.TrimSpace(query.OrderID) == "" || strings.TrimSpace(query.OwnerID) == "" {
		return GetOrderResult{}, domainerrors.ErrOrderNotFound
	}
	order, err := u.Orders.GetOrder(ctx, query.OrderID, query.OwnerID)
	if err != nil {
		return GetOrderResult{}, err
	}
	application.ResolveLogger(u.Logger).Debug("order fetched",
		"event", "order_fetched",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", order.ID,
	)
	return GetOrderResult{Order: order}, nil
}
