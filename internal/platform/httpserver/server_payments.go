package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	paymenterrors "classbay/contexts/commerce/payment-service/domain/errors"
	paymenthttp "classbay/contexts/commerce/payment-service/transport/http"
)

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	// Verification accepts unauthenticated calls: the gateway confirms the
	// payment before any account may exist. A valid principal, when present,
	// is bound as the order owner.
	ownerID := ""
	if principal, err := s.authenticate(r); err == nil {
		ownerID = principal.ID
	}

	var req paymenthttp.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePaymentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payments.Handler.VerifyPaymentHandler(r.Context(), ownerID, req)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("payment_id")
	resp, err := s.payments.Handler.GetPaymentHandler(r.Context(), paymentID)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePaymentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymenterrors.ErrInvalidVerification),
		errors.Is(err, paymenterrors.ErrPaymentIncomplete):
		writePaymentError(w, http.StatusBadRequest, "verification_failed", err.Error())
	case errors.Is(err, paymenterrors.ErrGatewayUnavailable):
		writePaymentError(w, http.StatusInternalServerError, "gateway_unavailable", err.Error())
	default:
		writePaymentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePaymentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, paymenthttp.ErrorResponse{Code: code, Message: message})
}
