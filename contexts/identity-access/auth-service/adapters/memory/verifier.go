package memory

import (
	"context"
	"sync"

	"classbay/contexts/identity-access/auth-service/domain/entities"
	domainerrors "classbay/contexts/identity-access/auth-service/domain/errors"
)

// Verifier is an in-memory token verifier for local runtime and tests.
// It maps opaque tokens directly to principals.
type Verifier struct {
	mu     sync.RWMutex
	tokens map[string]entities.Principal
}

func NewVerifier(seed map[string]entities.Principal) *Verifier {
	tokens := make(map[string]entities.Principal, len(seed))
	for token, principal := range seed {
		tokens[token] = principal
	}
	return &Verifier{tokens: tokens}
}

// Register binds a token to a principal.
func (v *Verifier) Register(token string, principal entities.Principal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[token] = principal
}

func (v *Verifier) VerifyToken(_ context.Context, token string) (entities.Principal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	principal, ok := v.tokens[token]
	if !ok {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
	return principal, nil
}
