package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	downloadhttp "classbay/contexts/commerce/download-service/transport/http"
)

func TestDownloadRequiresAuthorization(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/downloads/o1/f1", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDownloadIssuesSignedURLForOwner(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/downloads/o1/f1", nil)
	req.Header.Set("Authorization", "Bearer u1-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp downloadhttp.DownloadResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DownloadURL == "" || resp.Filename != "watercolor-workbook.pdf" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.RemainingDays != 355 {
		t.Fatalf("expected 355 remaining days, got %d", resp.RemainingDays)
	}
}

func TestDownloadMasksCrossOwnerOrder(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/downloads/o1/f1", nil)
	req.Header.Set("Authorization", "Bearer u2-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDownloadUnrelatedFileIsForbidden(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/downloads/o1/not-in-order", nil)
	req.Header.Set("Authorization", "Bearer u1-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDownloadStorageOutageMapsToInternalError(t *testing.T) {
	server := newTestServer()
	server.downloads.Store.SetSignUnavailable(true)

	req := httptest.NewRequest(http.MethodGet, "/downloads/o1/f1", nil)
	req.Header.Set("Authorization", "Bearer u1-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminDownloadRequiresAdminRights(t *testing.T) {
	server := newTestServer()

	anonymous := httptest.NewRequest(http.MethodGet, "/admin/downloads/f1", nil)
	anonymousRR := httptest.NewRecorder()
	server.mux.ServeHTTP(anonymousRR, anonymous)
	if anonymousRR.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", anonymousRR.Code, anonymousRR.Body.String())
	}

	regular := httptest.NewRequest(http.MethodGet, "/admin/downloads/f1", nil)
	regular.Header.Set("Authorization", "Bearer u1-token")
	regularRR := httptest.NewRecorder()
	server.mux.ServeHTTP(regularRR, regular)
	if regularRR.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", regularRR.Code, regularRR.Body.String())
	}
}

func TestAdminDownloadReturnsProductTitle(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/admin/downloads/f1", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp downloadhttp.AdminDownloadResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ProductTitle != "Intro to Watercolor" {
		t.Fatalf("expected product title, got %q", resp.ProductTitle)
	}
}

func TestHealthzIsOpen(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}
