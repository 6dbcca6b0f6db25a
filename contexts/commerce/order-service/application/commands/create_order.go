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

// CreateOrderCommand creates a pending order for the authenticated owner.
// OrderID may be caller-supplied (merchant reference) or left blank for a
// server-generated id.
type CreateOrderCommand struct {
	OrderID     string
	OwnerID     string
	Items       []entities.OrderItem
	TotalAmount int64
	Shipping    string
}

type CreateOrderResult struct {
	Order entities.Order
}

type CreateOrderUseCase struct {
	Orders      ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if strings.TrimSpace(cmd.OwnerID) == "" {
		return CreateOrderResult{}, domainerrors.ErrInvalidOrder
	}

	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		generated, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return CreateOrderResult{}, err
		}
		orderID = generated
	}

	order, err := entities.NewOrder(orderID, cmd.OwnerID, cmd.Items, cmd.TotalAmount, cmd.Shipping, u.Clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	stored, err := u.Orders.CreateOrder(ctx, order)
	if err != nil {
		return CreateOrderResult{}, err
	}

	logger := application.ResolveLogger(u.Logger)
	logger.Info("order created",
		"event", "order_created",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", stored.ID,
		"owner_id", stored.OwnerID,
		"total_amount", stored.TotalAmount,
	)
	return CreateOrderResult{Order: stored}, nil
}
