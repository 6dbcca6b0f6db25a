package authservice_test

import (
	"context"
	"errors"
	"testing"

	authservice "classbay/contexts/identity-access/auth-service"
	"classbay/contexts/identity-access/auth-service/application/queries"
	"classbay/contexts/identity-access/auth-service/domain/entities"
	domainerrors "classbay/contexts/identity-access/auth-service/domain/errors"
)

func TestAuthenticateResolvesBearerToken(t *testing.T) {
	module := authservice.NewInMemoryModule(map[string]entities.Principal{
		"valid-token": {ID: "u1", Email: "u1@classbay.io", Role: "authenticated"},
	}, nil, nil)

	principal, err := module.Authenticate.Execute(context.Background(), queries.AuthenticateQuery{
		AuthorizationHeader: "Bearer valid-token",
	})
	if err != nil {
		t.Fatalf("authentication should succeed: %v", err)
	}
	if principal.ID != "u1" {
		t.Fatalf("expected principal u1, got %q", principal.ID)
	}
}

func TestAuthenticateRejectsMalformedHeaders(t *testing.T) {
	module := authservice.NewInMemoryModule(nil, nil, nil)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic dXNlcg==", "valid-token"} {
		_, err := module.Authenticate.Execute(context.Background(), queries.AuthenticateQuery{
			AuthorizationHeader: header,
		})
		if !errors.Is(err, domainerrors.ErrMissingCredential) {
			t.Fatalf("header %q: expected missing credential, got %v", header, err)
		}
	}
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	module := authservice.NewInMemoryModule(nil, nil, nil)

	_, err := module.Authenticate.Execute(context.Background(), queries.AuthenticateQuery{
		AuthorizationHeader: "Bearer nope",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}
