// Package services holds the pure entitlement rules of the download context.
package services

import (
	"fmt"
	"time"

	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
)

// EntitlementWindow is how long a paid order keeps its download rights,
// anchored at the order's creation time.
const EntitlementWindow = 365 * 24 * time.Hour

// Entitlement is the outcome of a permitted evaluation.
type Entitlement struct {
	RemainingDays int
}

// EvaluateEntitlement decides whether an order still carries download rights
// at the given instant. Unpaid orders are denied regardless of age; paid
// orders are denied once more than the entitlement window has elapsed since
// creation, with the elapsed days carried on the error.
func EvaluateEntitlement(order entities.PurchasedOrder, now time.Time) (Entitlement, error) {
	if !order.Paid() {
		return Entitlement{}, domainerrors.ErrPaymentRequired
	}

	elapsed := now.Sub(order.CreatedAt)
	elapsedDays := int(elapsed.Hours() / 24)
	if elapsed > EntitlementWindow {
		return Entitlement{}, fmt.Errorf("%w (elapsed %d days)", domainerrors.ErrEntitlementExpired, elapsedDays)
	}

	windowDays := int(EntitlementWindow.Hours() / 24)
	return Entitlement{RemainingDays: windowDays - elapsedDays}, nil
}

// ResolveFile returns the first descriptor in the manifest whose id matches.
func ResolveFile(manifest []entities.FileDescriptor, fileID string) (entities.FileDescriptor, bool) {
	for _, file := range manifest {
		if file.ID == fileID {
			return file, true
		}
	}
	return entities.FileDescriptor{}, false
}
