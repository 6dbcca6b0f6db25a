package services

import (
	"errors"
	"testing"
	"time"

	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
)

func TestEvaluateEntitlementUnpaidStatuses(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, status := range []string{"pending", "shipped", "cancelled"} {
		order := entities.PurchasedOrder{ID: "o1", Status: status, CreatedAt: now.Add(-time.Hour)}
		if _, err := EvaluateEntitlement(order, now); !errors.Is(err, domainerrors.ErrPaymentRequired) {
			t.Fatalf("status %q: expected payment required, got %v", status, err)
		}
	}
}

func TestEvaluateEntitlementRemainingDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entities.PurchasedOrder{ID: "o1", Status: "processing", CreatedAt: now.Add(-10 * 24 * time.Hour)}

	entitlement, err := EvaluateEntitlement(order, now)
	if err != nil {
		t.Fatalf("paid order inside window should be entitled: %v", err)
	}
	if entitlement.RemainingDays != 355 {
		t.Fatalf("expected 355 remaining days, got %d", entitlement.RemainingDays)
	}
}

func TestEvaluateEntitlementWindowEdge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	atEdge := entities.PurchasedOrder{ID: "o1", Status: "delivered", CreatedAt: now.Add(-EntitlementWindow)}
	if _, err := EvaluateEntitlement(atEdge, now); err != nil {
		t.Fatalf("exactly at the window edge should be entitled: %v", err)
	}

	past := entities.PurchasedOrder{ID: "o1", Status: "delivered", CreatedAt: now.Add(-EntitlementWindow - time.Second)}
	if _, err := EvaluateEntitlement(past, now); !errors.Is(err, domainerrors.ErrEntitlementExpired) {
		t.Fatalf("past the window edge should be expired, got %v", err)
	}
}

func TestResolveFileFirstMatchWins(t *testing.T) {
	manifest := []entities.FileDescriptor{
		{ID: "f1", Filename: "first.pdf"},
		{ID: "f1", Filename: "shadowed.pdf"},
		{ID: "f2", Filename: "second.pdf"},
	}

	file, ok := ResolveFile(manifest, "f1")
	if !ok || file.Filename != "first.pdf" {
		t.Fatalf("expected first match, got %+v ok=%v", file, ok)
	}
	if _, ok := ResolveFile(manifest, "missing"); ok {
		t.Fatalf("missing id must not resolve")
	}
}
