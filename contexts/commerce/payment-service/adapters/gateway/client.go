package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"classbay/contexts/commerce/payment-service/application"
	"classbay/contexts/commerce/payment-service/domain/entities"
	domainerrors "classbay/contexts/commerce/payment-service/domain/errors"
)

// Client talks to the external payment gateway. Each fetch is two bounded
// round trips: exchange the configured secret for a short-lived access token,
// then read the payment record. No retries; the caller repeats the whole
// verification if it fails.
type Client struct {
	baseURL string
	key     string
	secret  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, key string, secret string, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("gateway base url is required")
	}
	if strings.TrimSpace(key) == "" || strings.TrimSpace(secret) == "" {
		return nil, errors.New("gateway key and secret are required")
	}
	return &Client{
		baseURL: baseURL,
		key:     key,
		secret:  secret,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  application.ResolveLogger(logger),
	}, nil
}

// envelope is the gateway's uniform response wrapper.
type envelope struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Response json.RawMessage `json:"response"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type paymentResponse struct {
	ImpUID      string `json:"imp_uid"`
	MerchantUID string `json:"merchant_uid"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	PayMethod   string `json:"pay_method"`
	PaidAt      int64  `json:"paid_at"`
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	token, err := c.issueToken(ctx)
	if err != nil {
		return entities.Payment{}, err
	}

	endpoint := c.baseURL + "/payments/" + url.PathEscape(paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Authorization", token)

	var body paymentResponse
	if err := c.do(req, &body); err != nil {
		c.logger.Error("gateway payment fetch failed",
			"event", "payment_gateway_fetch_failed",
			"module", "commerce/payment-service",
			"layer", "adapter",
			"payment_id", paymentID,
			"error", err.Error(),
		)
		return entities.Payment{}, domainerrors.ErrGatewayUnavailable
	}

	payment := entities.Payment{
		ID:       body.ImpUID,
		OrderRef: body.MerchantUID,
		Status:   body.Status,
		Amount:   body.Amount,
		Method:   body.PayMethod,
	}
	if body.PaidAt > 0 {
		payment.PaidAt = time.Unix(body.PaidAt, 0).UTC()
	}
	return payment, nil
}

func (c *Client) issueToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"imp_key":    c.key,
		"imp_secret": c.secret,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/getToken", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body tokenResponse
	if err := c.do(req, &body); err != nil {
		c.logger.Error("gateway token exchange failed",
			"event", "payment_gateway_token_failed",
			"module", "commerce/payment-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		return "", domainerrors.ErrGatewayUnavailable
	}
	if strings.TrimSpace(body.AccessToken) == "" {
		return "", domainerrors.ErrGatewayUnavailable
	}
	return body.AccessToken, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var wrapped envelope
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	if wrapped.Code != 0 {
		return fmt.Errorf("gateway error code %d: %s", wrapped.Code, wrapped.Message)
	}
	if err := json.Unmarshal(wrapped.Response, out); err != nil {
		return fmt.Errorf("decode gateway payload: %w", err)
	}
	return nil
}
