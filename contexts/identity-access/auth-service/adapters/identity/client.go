package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"classbay/contexts/identity-access/auth-service/application"
	"classbay/contexts/identity-access/auth-service/domain/entities"
	domainerrors "classbay/contexts/identity-access/auth-service/domain/errors"
)

// Client calls the external identity provider's user endpoint to exchange a
// bearer token for the authenticated principal. One bounded round trip, no
// retries; retry is pushed to the caller.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, apiKey string, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("identity base url is required")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  application.ResolveLogger(logger),
	}, nil
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) VerifyToken(ctx context.Context, token string) (entities.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return entities.Principal{}, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("identity provider request failed",
			"event", "auth_identity_request_failed",
			"module", "identity-access/auth-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		return entities.Principal{}, domainerrors.ErrIdentityUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	default:
		c.logger.Error("identity provider returned unexpected status",
			"event", "auth_identity_unexpected_status",
			"module", "identity-access/auth-service",
			"layer", "adapter",
			"status", resp.StatusCode,
		)
		return entities.Principal{}, domainerrors.ErrIdentityUnavailable
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Principal{}, domainerrors.ErrIdentityUnavailable
	}
	if strings.TrimSpace(body.ID) == "" {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}

	return entities.Principal{
		ID:    body.ID,
		Email: body.Email,
		Role:  body.Role,
	}, nil
}
