package errors

import "errors"

var (
	ErrMissingCredential   = errors.New("authorization bearer token is required")
	ErrInvalidCredential   = errors.New("credential rejected by identity provider")
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
)
