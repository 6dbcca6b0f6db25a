package commands

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/commerce/order-service/application"
	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
	"classbay/contexts/commerce/order-service/ports"
)

// UpdateOrderStatusCommand patches the status of an owner-scoped order.
type UpdateOrderStatusCommand struct {
	OrderID string
	OwnerID string
	Status  entities.OrderStatus
}

type UpdateOrderStatusResult struct {
	Order entities.Order
}

type UpdateOrderStatusUseCase struct {
	Orders ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (UpdateOrderStatusResult, error) {
	if strings.TrimSpace(cmd.OrderID) == "" || strings.TrimSpace(cmd.OwnerID) == "" {
		return UpdateOrderStatusResult{}, domainerrors.ErrInvalidOrder
	}
	if !cmd.Status.Valid() {
		return UpdateOrderStatusResult{}, domainerrors.ErrInvalidStatus
	}

	order, err := u.Orders.UpdateOrderStatus(ctx, cmd.OrderID, cmd.OwnerID, cmd.Status, u.Clock.Now())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	logger := application.ResolveLogger(u.Logger)
	logger.Info("order status updated",
		"event", "order_status_updated",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", order.ID,
		"status", string(order.Status),
	)
	return UpdateOrderStatusResult{Order: order}, nil
}
