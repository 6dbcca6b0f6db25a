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

// ListOrdersQuery returns the owner's orders, newest first.
type ListOrdersQuery struct {
	OwnerID string
}

type ListOrdersResult struct {
	Orders []entities.Order
}

type ListOrdersUseCase struct {
	Orders ports.Repository
	Logger *slog.Logger
}

func (u ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (ListOrdersResult, error) {
	if strings.TrimSpace(query.OwnerID) == "" {
		return ListOrdersResult{}, domainerrors.ErrInvalidOrder
	}
	orders, err := u.Orders.ListOrders(ctx, query.OwnerID)
	if err != nil {
		return ListOrdersResult{}, err
	}
	application.ResolveLogger(u.Logger).Debug("orders listed",
		"event", "orders_listed",
		"module", "commerce/order-service",
		"layer", "application",
		"order_count", len(orders),
	)
	return ListOrdersResult{Orders: orders}, nil
}
