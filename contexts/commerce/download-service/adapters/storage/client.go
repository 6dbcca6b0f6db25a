// Package storage signs download URLs against a Supabase-style object store.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"classbay/contexts/commerce/download-service/application"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
)

// Client mints signed object URLs over the store's HTTP API. One bounded
// round trip per sign, no retries.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	http       *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, serviceKey string, bucket string, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storage base url is required")
	}
	if strings.TrimSpace(serviceKey) == "" {
		return nil, errors.New("storage service key is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("storage bucket is required")
	}
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		http:       &http.Client{Timeout: 10 * time.Second},
		logger:     application.ResolveLogger(logger),
	}, nil
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

func (c *Client) SignURL(ctx context.Context, storagePath string, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(signRequest{ExpiresIn: int(ttl.Seconds())})
	if err != nil {
		return "", fmt.Errorf("encode sign request: %w", err)
	}

	endpoint := c.baseURL + "/object/sign/" + c.bucket + "/" + strings.TrimLeft(storagePath, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build sign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", c.unavailable(storagePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.unavailable(storagePath, fmt.Errorf("store returned status %d", resp.StatusCode))
	}

	var body signResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", c.unavailable(storagePath, fmt.Errorf("decode sign response: %w", err))
	}
	if strings.TrimSpace(body.SignedURL) == "" {
		return "", c.unavailable(storagePath, errors.New("store returned an empty signed url"))
	}

	// The store answers with a path relative to its own origin.
	if strings.HasPrefix(body.SignedURL, "http") {
		return body.SignedURL, nil
	}
	return c.baseURL + "/" + strings.TrimLeft(body.SignedURL, "/"), nil
}

func (c *Client) unavailable(storagePath string, err error) error {
	c.logger.Error("object store sign failed",
		"event", "storage_sign_failed",
		"module", "commerce/download-service",
		"layer", "adapter",
		"storage_path", storagePath,
		"error", err.Error(),
	)
	return domainerrors.ErrStorageUnavailable
}
