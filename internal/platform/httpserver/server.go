package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	downloadservice "classbay/contexts/commerce/download-service"
	orderservice "classbay/contexts/commerce/order-service"
	paymentservice "classbay/contexts/commerce/payment-service"
	authservice "classbay/contexts/identity-access/auth-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "classbay/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	auth      authservice.Module
	orders    orderservice.Module
	payments  paymentservice.Module
	downloads downloadservice.Module
}

func New(
	authModule authservice.Module,
	orders orderservice.Module,
	payments paymentservice.Module,
	downloads downloadservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		auth:      authModule,
		orders:    orders,
		payments:  payments,
		downloads: downloads,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.HandleFunc("POST /orders", s.handleCreateOrder)
	s.mux.HandleFunc("GET /orders", s.handleListOrders)
	s.mux.HandleFunc("GET /orders/{order_id}", s.handleGetOrder)
	s.mux.HandleFunc("PATCH /orders/{order_id}", s.handleUpdateOrderStatus)

	s.mux.HandleFunc("POST /payments/verify", s.handleVerifyPayment)
	s.mux.HandleFunc("GET /payments/{payment_id}", s.handleGetPayment)

	s.mux.HandleFunc("GET /downloads/{order_id}/{file_id}", s.handleIssueDownload)
	s.mux.HandleFunc("GET /admin/downloads/{file_id}", s.handleAdminIssueDownload)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
