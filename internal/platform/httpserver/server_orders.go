package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	ordererrors "classbay/contexts/commerce/order-service/domain/errors"
	orderhttp "classbay/contexts/commerce/order-service/transport/http"
	authentities "classbay/contexts/identity-access/auth-service/domain/entities"
	autherrors "classbay/contexts/identity-access/auth-service/domain/errors"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireOrderPrincipal(w, r)
	if !ok {
		return
	}

	var req orderhttp.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.orders.Handler.CreateOrderHandler(r.Context(), principal.ID, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireOrderPrincipal(w, r)
	if !ok {
		return
	}

	resp, err := s.orders.Handler.ListOrdersHandler(r.Context(), principal.ID)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireOrderPrincipal(w, r)
	if !ok {
		return
	}

	orderID := r.PathValue("order_id")
	resp, err := s.orders.Handler.GetOrderHandler(r.Context(), principal.ID, orderID)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireOrderPrincipal(w, r)
	if !ok {
		return
	}

	var req orderhttp.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	orderID := r.PathValue("order_id")
	resp, err := s.orders.Handler.UpdateOrderStatusHandler(r.Context(), principal.ID, orderID, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) requireOrderPrincipal(w http.ResponseWriter, r *http.Request) (authentities.Principal, bool) {
	principal, err := s.authenticate(r)
	if err != nil {
		switch {
		case errors.Is(err, autherrors.ErrIdentityUnavailable):
			writeOrderError(w, http.StatusInternalServerError, "identity_unavailable", "identity provider unavailable")
		default:
			writeOrderError(w, http.StatusUnauthorized, "unauthorized", "a valid bearer token is required")
		}
		return authentities.Principal{}, false
	}
	return principal, true
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		writeOrderError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, ordererrors.ErrOwnerMismatch):
		writeOrderError(w, http.StatusForbidden, "owner_mismatch", err.Error())
	case errors.Is(err, ordererrors.ErrDuplicateOrder):
		writeOrderError(w, http.StatusConflict, "duplicate_order", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidOrder),
		errors.Is(err, ordererrors.ErrInvalidStatus):
		writeOrderError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{Code: code, Message: message})
}
