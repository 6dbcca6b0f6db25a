package orderservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	orderservice "classbay/contexts/commerce/order-service"
	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"
	httptransport "classbay/contexts/commerce/order-service/transport/http"
)

func TestCreateOrderGeneratesIDAndSumsItems(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil, nil)

	resp, err := module.Handler.CreateOrderHandler(context.Background(), "user-1", httptransport.CreateOrderRequest{
		Items: []httptransport.OrderItemDTO{
			{ProductID: 1, Title: "Intro to Watercolor", UnitPrice: 30000, Quantity: 1, Category: "art"},
			{ProductID: 2, Title: "Figure Drawing Basics", UnitPrice: 15000, Quantity: 1, Category: "art"},
		},
	})
	if err != nil {
		t.Fatalf("create order should succeed: %v", err)
	}
	if resp.Order.ID == "" {
		t.Fatalf("expected a generated order id")
	}
	if resp.Order.Status != string(entities.OrderStatusPending) {
		t.Fatalf("new order should be pending, got %q", resp.Order.Status)
	}
	if resp.Order.TotalAmount != 45000 {
		t.Fatalf("expected total 45000, got %d", resp.Order.TotalAmount)
	}
	if resp.Order.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", resp.Order.OwnerID)
	}
}

func TestCreateOrderRejectsForeignUserID(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil, nil)

	_, err := module.Handler.CreateOrderHandler(context.Background(), "user-1", httptransport.CreateOrderRequest{
		UserID: "user-2",
		Items: []httptransport.OrderItemDTO{
			{ProductID: 1, Title: "Intro to Watercolor", UnitPrice: 30000, Quantity: 1},
		},
	})
	if !errors.Is(err, domainerrors.ErrOwnerMismatch) {
		t.Fatalf("expected owner mismatch, got %v", err)
	}
}

func TestCreateOrderRejectsDuplicateID(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil, nil)

	req := httptransport.CreateOrderRequest{
		ID: "order-dup",
		Items: []httptransport.OrderItemDTO{
			{ProductID: 1, Title: "Intro to Watercolor", UnitPrice: 30000, Quantity: 1},
		},
	}
	if _, err := module.Handler.CreateOrderHandler(context.Background(), "user-1", req); err != nil {
		t.Fatalf("first create should succeed: %v", err)
	}
	_, err := module.Handler.CreateOrderHandler(context.Background(), "user-1", req)
	if !errors.Is(err, domainerrors.ErrDuplicateOrder) {
		t.Fatalf("expected duplicate order, got %v", err)
	}
}

func TestGetOrderMasksCrossOwnerAccess(t *testing.T) {
	module := orderservice.NewInMemoryModule([]entities.Order{
		{
			ID:      "order-a",
			OwnerID: "user-a",
			Items: []entities.OrderItem{
				{ProductID: 1, Title: "Intro to Watercolor", UnitPrice: 30000, Quantity: 1},
			},
			TotalAmount: 30000,
			Status:      entities.OrderStatusProcessing,
			CreatedAt:   time.Now().UTC().Add(-time.Hour),
		},
	}, nil)

	if _, err := module.Handler.GetOrderHandler(context.Background(), "user-a", "order-a"); err != nil {
		t.Fatalf("owner lookup should succeed: %v", err)
	}

	_, err := module.Handler.GetOrderHandler(context.Background(), "user-b", "order-a")
	if !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("cross-owner lookup must read as not found, got %v", err)
	}

	_, err = module.Handler.GetOrderHandler(context.Background(), "user-b", "order-missing")
	if !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("missing order must read as not found, got %v", err)
	}
}

func TestListOrdersIsOwnerScopedNewestFirst(t *testing.T) {
	now := time.Now().UTC()
	module := orderservice.NewInMemoryModule([]entities.Order{
		{ID: "order-old", OwnerID: "user-a", Items: []entities.OrderItem{{ProductID: 1, Title: "A", UnitPrice: 1000, Quantity: 1}}, Status: entities.OrderStatusPending, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "order-new", OwnerID: "user-a", Items: []entities.OrderItem{{ProductID: 2, Title: "B", UnitPrice: 1000, Quantity: 1}}, Status: entities.OrderStatusPending, CreatedAt: now.Add(-time.Hour)},
		{ID: "order-other", OwnerID: "user-b", Items: []entities.OrderItem{{ProductID: 3, Title: "C", UnitPrice: 1000, Quantity: 1}}, Status: entities.OrderStatusPending, CreatedAt: now},
	}, nil)

	resp, err := module.Handler.ListOrdersHandler(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(resp.Orders) != 2 {
		t.Fatalf("expected 2 orders for user-a, got %d", len(resp.Orders))
	}
	if resp.Orders[0].ID != "order-new" || resp.Orders[1].ID != "order-old" {
		t.Fatalf("expected newest first, got %q then %q", resp.Orders[0].ID, resp.Orders[1].ID)
	}
}

func TestUpdateOrderStatusValidatesEnum(t *testing.T) {
	module := orderservice.NewInMemoryModule([]entities.Order{
		{ID: "order-a", OwnerID: "user-a", Items: []entities.OrderItem{{ProductID: 1, Title: "A", UnitPrice: 1000, Quantity: 1}}, Status: entities.OrderStatusPending, CreatedAt: time.Now().UTC()},
	}, nil)

	_, err := module.Handler.UpdateOrderStatusHandler(context.Background(), "user-a", "order-a", httptransport.UpdateOrderStatusRequest{Status: "refunded"})
	if !errors.Is(err, domainerrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}

	resp, err := module.Handler.UpdateOrderStatusHandler(context.Background(), "user-a", "order-a", httptransport.UpdateOrderStatusRequest{Status: "delivered"})
	if err != nil {
		t.Fatalf("valid status should succeed: %v", err)
	}
	if resp.Order.Status != string(entities.OrderStatusDelivered) {
		t.Fatalf("expected delivered, got %q", resp.Order.Status)
	}

	_, err = module.Handler.UpdateOrderStatusHandler(context.Background(), "user-b", "order-a", httptransport.UpdateOrderStatusRequest{Status: "cancelled"})
	if !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("cross-owner patch must read as not found, got %v", err)
	}
}
