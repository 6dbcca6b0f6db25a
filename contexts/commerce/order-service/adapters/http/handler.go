package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/commerce/order-service/application/commands"
	"classbay/contexts/commerce/order-service/application/queries"
	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
	httptransport "classbay/contexts/commerce/order-service/transport/http"
)

const timeLayout = "2006-01-02T15:04:05Z"

type Handler struct {
	CreateOrder       commands.CreateOrderUseCase
	UpdateOrderStatus commands.UpdateOrderStatusUseCase
	GetOrder          queries.GetOrderUseCase
	ListOrders        queries.ListOrdersUseCase
	Logger            *slog.Logger
}

// CreateOrderHandler godoc
// @Summary Create an order
// @Description Creates a pending order for the authenticated principal.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateOrderRequest true "Order payload"
// @Success 200 {object} httptransport.OrderResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /orders [post]
func (h Handler) CreateOrderHandler(ctx context.Context, ownerID string, req httptransport.CreateOrderRequest) (httptransport.OrderResponse, error) {
	// A body-supplied user id must agree with the authenticated principal.
	if strings.TrimSpace(req.UserID) != "" && req.UserID != ownerID {
		return httptransport.OrderResponse{}, domainerrors.ErrOwnerMismatch
	}

	result, err := h.CreateOrder.Execute(ctx, commands.CreateOrderCommand{
		OrderID:     req.ID,
		OwnerID:     ownerID,
		Items:       mapItemsFromDTO(req.Items),
		TotalAmount: req.TotalAmount,
		Shipping:    req.Shipping,
	})
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return httptransport.OrderResponse{Order: MapOrder(result.Order)}, nil
}

// ListOrdersHandler godoc
// @Summary List my orders
// @Description Returns the authenticated principal's orders, newest first.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListOrdersResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /orders [get]
func (h Handler) ListOrdersHandler(ctx context.Context, ownerID string) (httptransport.ListOrdersResponse, error) {
	result, err := h.ListOrders.Execute(ctx, queries.ListOrdersQuery{OwnerID: ownerID})
	if err != nil {
		return httptransport.ListOrdersResponse{}, err
	}
	orders := make([]httptransport.OrderDTO, 0, len(result.Orders))
	for _, order := range result.Orders {
		orders = append(orders, MapOrder(order))
	}
	return httptransport.ListOrdersResponse{Orders: orders}, nil
}

// GetOrderHandler godoc
// @Summary Get one order
// @Description Returns one order scoped to the authenticated owner.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param order_id path string true "Order id"
// @Success 200 {object} httptransport.OrderResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /orders/{order_id} [get]
func (h Handler) GetOrderHandler(ctx context.Context, ownerID string, orderID string) (httptransport.OrderResponse, error) {
	result, err := h.GetOrder.Execute(ctx, queries.GetOrderQuery{OrderID: orderID, OwnerID: ownerID})
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return httptransport.OrderResponse{Order: MapOrder(result.Order)}, nil
}

// UpdateOrderStatusHandler godoc
// @Summary Patch order status
// @Description Updates the status of an owner-scoped order.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order_id path string true "Order id"
// @Param request body httptransport.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} httptransport.OrderResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /orders/{order_id} [patch]
func (h Handler) UpdateOrderStatusHandler(
	ctx context.Context,
	ownerID string,
	orderID string,
	req httptransport.UpdateOrderStatusRequest,
) (httptransport.OrderResponse, error) {
	result, err := h.UpdateOrderStatus.Execute(ctx, commands.UpdateOrderStatusCommand{
		OrderID: orderID,
		OwnerID: ownerID,
		Status:  entities.OrderStatus(req.Status),
	})
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return httptransport.OrderResponse{Order: MapOrder(result.Order)}, nil
}

// MapOrder converts an order entity into its transport shape.
func MapOrder(order entities.Order) httptransport.OrderDTO {
	items := make([]httptransport.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, httptransport.OrderItemDTO{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return httptransport.OrderDTO{
		ID:            order.ID,
		OwnerID:       order.OwnerID,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Shipping:      order.Shipping,
		CreatedAt:     order.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:     order.UpdatedAt.UTC().Format(timeLayout),
	}
}

func mapItemsFromDTO(items []httptransport.OrderItemDTO) []entities.OrderItem {
	mapped := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, entities.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return mapped
}
