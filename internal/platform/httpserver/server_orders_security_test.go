package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	orderhttp "classbay/contexts/commerce/order-service/transport/http"
)

func TestOrdersRequireAuthorization(t *testing.T) {
	server := newTestServer()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/orders"},
		{http.MethodGet, "/orders/o1"},
		{http.MethodPatch, "/orders/o1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", tc.method, tc.path, rr.Code, rr.Body.String())
		}
	}
}

func TestCreateOrderReturnsOrder(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"items":[{"product_id":2,"title":"Figure Drawing Basics","unit_price":15000,"quantity":1}]}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer u1-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp orderhttp.OrderResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.OwnerID != "u1" || resp.Order.Status != "pending" {
		t.Fatalf("unexpected order: %+v", resp.Order)
	}
}

func TestCreateOrderRejectsForeignUserID(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"user_id":"u2","items":[{"product_id":2,"title":"Figure Drawing Basics","unit_price":15000,"quantity":1}]}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer u1-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetOrderMasksCrossOwner(t *testing.T) {
	server := newTestServer()

	owned := httptest.NewRequest(http.MethodGet, "/orders/o1", nil)
	owned.Header.Set("Authorization", "Bearer u1-token")
	ownedRR := httptest.NewRecorder()
	server.mux.ServeHTTP(ownedRR, owned)
	if ownedRR.Code != http.StatusOK {
		t.Fatalf("owner read: expected 200, got %d body=%s", ownedRR.Code, ownedRR.Body.String())
	}

	foreign := httptest.NewRequest(http.MethodGet, "/orders/o1", nil)
	foreign.Header.Set("Authorization", "Bearer u2-token")
	foreignRR := httptest.NewRecorder()
	server.mux.ServeHTTP(foreignRR, foreign)

	missing := httptest.NewRequest(http.MethodGet, "/orders/no-such-order", nil)
	missing.Header.Set("Authorization", "Bearer u2-token")
	missingRR := httptest.NewRecorder()
	server.mux.ServeHTTP(missingRR, missing)

	if foreignRR.Code != http.StatusNotFound || missingRR.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", foreignRR.Code, missingRR.Code)
	}
	// "exists but not yours" and "does not exist" must be indistinguishable.
	if foreignRR.Body.String() != missingRR.Body.String() {
		t.Fatalf("cross-owner and missing responses must match: %q vs %q",
			foreignRR.Body.String(), missingRR.Body.String())
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPatch, "/orders/o1", bytes.NewReader([]byte(`{"status":"refunded"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer u1-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
