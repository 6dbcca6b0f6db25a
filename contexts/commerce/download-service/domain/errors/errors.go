package errors

import "errors"

var (
	// ErrOrderNotFound also masks cross-owner orders so lookups never leak
	// existence to a non-owner.
	ErrOrderNotFound = errors.New("order not found")

	ErrPaymentRequired    = errors.New("payment not completed")
	ErrEntitlementExpired = errors.New("entitlement expired")
	ErrFileNotEntitled    = errors.New("no download authorization for this file")
	ErrFileNotFound       = errors.New("file not found")
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
