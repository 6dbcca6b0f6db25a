package queries

import (
	"context"
	"log/slog"
	"strings"

	"classbay/contexts/identity-access/auth-service/application"
	"classbay/contexts/identity-access/auth-service/domain/entities"
	domainerrors "classbay/contexts/identity-access/auth-service/domain/errors"
	"classbay/contexts/identity-access/auth-service/ports"
)

// AuthenticateQuery carries the raw Authorization header value.
type AuthenticateQuery struct {
	AuthorizationHeader string
}

type AuthenticateUseCase struct {
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

// Execute extracts the bearer token and resolves it to a principal.
// Header parsing failures and provider rejections are both credential errors;
// provider transport failures surface separately so the boundary can map 500.
func (u AuthenticateUseCase) Execute(ctx context.Context, query AuthenticateQuery) (entities.Principal, error) {
	token, err := extractBearerToken(query.AuthorizationHeader)
	if err != nil {
		return entities.Principal{}, err
	}

	principal, err := u.Verifier.VerifyToken(ctx, token)
	if err != nil {
		logger := application.ResolveLogger(u.Logger)
		logger.Warn("token verification failed",
			"event", "auth_token_verify_failed",
			"module", "identity-access/auth-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Principal{}, err
	}
	if principal.IsZero() {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
	return principal, nil
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domainerrors.ErrMissingCredential
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", domainerrors.ErrMissingCredential
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", domainerrors.ErrMissingCredential
	}
	return token, nil
}
