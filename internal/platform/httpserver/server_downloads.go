package httpserver

import (
	"errors"
	"net/http"

	downloaderrors "classbay/contexts/commerce/download-service/domain/errors"
	downloadhttp "classbay/contexts/commerce/download-service/transport/http"
	authentities "classbay/contexts/identity-access/auth-service/domain/entities"
	autherrors "classbay/contexts/identity-access/auth-service/domain/errors"
	authservices "classbay/contexts/identity-access/auth-service/domain/services"
)

func (s *Server) handleIssueDownload(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireDownloadPrincipal(w, r)
	if !ok {
		return
	}

	orderID := r.PathValue("order_id")
	fileID := r.PathValue("file_id")
	resp, err := s.downloads.Handler.IssueDownloadHandler(r.Context(), principal.ID, orderID, fileID)
	if err != nil {
		writeDownloadDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminIssueDownload(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireDownloadPrincipal(w, r)
	if !ok {
		return
	}
	if !s.auth.Policy.Can(principal, authservices.ActionAdminDownload, authservices.Resource{}) {
		writeDownloadError(w, http.StatusForbidden, "forbidden", "administrator rights are required")
		return
	}

	fileID := r.PathValue("file_id")
	resp, err := s.downloads.Handler.AdminIssueDownloadHandler(r.Context(), principal.ID, fileID)
	if err != nil {
		writeDownloadDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) requireDownloadPrincipal(w http.ResponseWriter, r *http.Request) (authentities.Principal, bool) {
	principal, err := s.authenticate(r)
	if err != nil {
		switch {
		case errors.Is(err, autherrors.ErrIdentityUnavailable):
			writeDownloadError(w, http.StatusInternalServerError, "identity_unavailable", "identity provider unavailable")
		default:
			writeDownloadError(w, http.StatusUnauthorized, "unauthorized", "a valid bearer token is required")
		}
		return authentities.Principal{}, false
	}
	return principal, true
}

func writeDownloadDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, downloaderrors.ErrOrderNotFound):
		writeDownloadError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, downloaderrors.ErrFileNotFound):
		writeDownloadError(w, http.StatusNotFound, "file_not_found", err.Error())
	case errors.Is(err, downloaderrors.ErrPaymentRequired):
		writeDownloadError(w, http.StatusForbidden, "payment_required", err.Error())
	case errors.Is(err, downloaderrors.ErrEntitlementExpired):
		writeDownloadError(w, http.StatusForbidden, "entitlement_expired", err.Error())
	case errors.Is(err, downloaderrors.ErrFileNotEntitled):
		writeDownloadError(w, http.StatusForbidden, "file_not_entitled", err.Error())
	case errors.Is(err, downloaderrors.ErrStorageUnavailable):
		writeDownloadError(w, http.StatusInternalServerError, "storage_unavailable", err.Error())
	default:
		writeDownloadError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDownloadError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, downloadhttp.ErrorResponse{Code: code, Message: message})
}
