package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	paymenthttp "classbay/contexts/commerce/payment-service/transport/http"
)

func TestVerifyPaymentWithoutAuthentication(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"payment_id":"imp_1","order_id":"order-new","total_amount":45000}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp paymenthttp.VerifyPaymentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.Status != "processing" {
		t.Fatalf("expected processing order, got %q", resp.Order.Status)
	}
	if resp.Order.UserID != "" {
		t.Fatalf("anonymous verification must leave the owner unbound, got %q", resp.Order.UserID)
	}
}

func TestVerifyPaymentBindsAuthenticatedPrincipal(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"payment_id":"imp_1","order_id":"order-new"}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer u1-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp paymenthttp.VerifyPaymentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.UserID != "u1" {
		t.Fatalf("expected owner u1, got %q", resp.Order.UserID)
	}
}

func TestVerifyPaymentRejectsMalformedBody(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVerifyPaymentMissingOrderReference(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader([]byte(`{"payment_id":"imp_1"}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetPaymentGatewayOutageMapsToInternalError(t *testing.T) {
	server := newTestServer()
	server.payments.Gateway.SetUnavailable(true)

	req := httptest.NewRequest(http.MethodGet, "/payments/imp_1", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", rr.Code, rr.Body.String())
	}
}
