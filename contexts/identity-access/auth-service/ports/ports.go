package ports

import (
	"context"

	"classbay/contexts/identity-access/auth-service/domain/entities"
)

// TokenVerifier validates a raw bearer token against the identity provider
// and returns the authenticated principal.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (entities.Principal, error)
}
