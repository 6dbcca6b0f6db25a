package httpserver

import (
	"time"

	downloadservice "classbay/contexts/commerce/download-service"
	downloadentities "classbay/contexts/commerce/download-service/domain/entities"
	orderservice "classbay/contexts/commerce/order-service"
	orderentities "classbay/contexts/commerce/order-service/domain/entities"
	paymentservice "classbay/contexts/commerce/payment-service"
	paymententities "classbay/contexts/commerce/payment-service/domain/entities"
	authservice "classbay/contexts/identity-access/auth-service"
	authentities "classbay/contexts/identity-access/auth-service/domain/entities"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestServer wires the full route surface against in-memory modules.
// Seeded state: u1 owns paid order o1 (product 1, file f1, created 10 days
// ago); the gateway has settled payment imp_1 for order-new.
func newTestServer() *Server {
	auth := authservice.NewInMemoryModule(map[string]authentities.Principal{
		"u1-token":    {ID: "u1", Email: "u1@classbay.io", Role: "authenticated"},
		"u2-token":    {ID: "u2", Email: "u2@classbay.io", Role: "authenticated"},
		"admin-token": {ID: "admin-1", Email: "ops@classbay.io", Role: "admin"},
	}, nil, nil)

	orders := orderservice.NewInMemoryModule([]orderentities.Order{
		{
			ID:      "o1",
			OwnerID: "u1",
			Items: []orderentities.OrderItem{
				{ProductID: 1, Title: "Intro to Watercolor", UnitPrice: 45000, Quantity: 1, Category: "art"},
			},
			TotalAmount: 45000,
			Status:      orderentities.OrderStatusProcessing,
			CreatedAt:   testNow.Add(-10 * 24 * time.Hour),
			UpdatedAt:   testNow.Add(-10 * 24 * time.Hour),
		},
	}, nil)

	payments := paymentservice.NewInMemoryModule([]paymententities.Payment{
		{
			ID:       "imp_1",
			OrderRef: "order-new",
			Status:   paymententities.StatusPaid,
			Amount:   45000,
			Method:   "card",
			PaidAt:   testNow.Add(-time.Minute),
		},
	}, nil)

	downloads := downloadservice.NewInMemoryModule(testNow, time.Hour, nil)
	downloads.Store.SeedOrder(downloadentities.PurchasedOrder{
		ID:        "o1",
		OwnerID:   "u1",
		Items:     []downloadentities.PurchasedItem{{ProductID: 1, Title: "Intro to Watercolor"}},
		Status:    "processing",
		CreatedAt: testNow.Add(-10 * 24 * time.Hour),
	})
	downloads.Store.SeedProduct(1, "Intro to Watercolor", []downloadentities.FileDescriptor{
		{ID: "f1", Filename: "watercolor-workbook.pdf", StoragePath: "courses/1/watercolor-workbook.pdf", Size: 2048, Type: "pdf"},
	})

	return New(auth, orders, payments, downloads, nil, ":0")
}
