package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	downloadservice "classbay/contexts/commerce/download-service"
	downloadpostgres "classbay/contexts/commerce/download-service/adapters/postgres"
	"classbay/contexts/commerce/download-service/adapters/storage"
	orderservice "classbay/contexts/commerce/order-service"
	orderpostgres "classbay/contexts/commerce/order-service/adapters/postgres"
	paymentservice "classbay/contexts/commerce/payment-service"
	"classbay/contexts/commerce/payment-service/adapters/gateway"
	paymentpostgres "classbay/contexts/commerce/payment-service/adapters/postgres"
	authservice "classbay/contexts/identity-access/auth-service"
	"classbay/contexts/identity-access/auth-service/adapters/identity"
	"classbay/internal/platform/config"
	"classbay/internal/platform/db"
	"classbay/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	verifier, err := identity.NewClient(cfg.IdentityBaseURL, cfg.IdentityAPIKey, logger)
	if err != nil {
		return nil, err
	}
	authModule := authservice.NewModule(authservice.Dependencies{
		Verifier:        verifier,
		AdminIdentities: cfg.AdminIdentities,
		Logger:          logger,
	})

	orderRepo := orderpostgres.NewRepository(pg.DB, logger)
	orderModule := orderservice.NewModule(orderservice.Dependencies{
		Orders:      orderRepo,
		Clock:       orderpostgres.SystemClock{},
		IDGenerator: orderpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	paymentGateway, err := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayKey, cfg.GatewaySecret, logger)
	if err != nil {
		return nil, err
	}
	paymentModule := paymentservice.NewModule(paymentservice.Dependencies{
		Gateway: paymentGateway,
		Ledger:  paymentpostgres.NewLedger(pg.DB),
		Clock:   paymentpostgres.SystemClock{},
		Logger:  logger,
	})

	objectStore, err := storage.NewClient(cfg.StorageBaseURL, cfg.StorageServiceKey, cfg.StorageBucket, logger)
	if err != nil {
		return nil, err
	}
	downloadModule := downloadservice.NewModule(downloadservice.Dependencies{
		Orders:  downloadpostgres.NewOrderReader(pg.DB),
		Catalog: downloadpostgres.NewCatalog(pg.DB),
		Objects: objectStore,
		History: downloadpostgres.NewHistory(pg.DB),
		Clock:   downloadpostgres.SystemClock{},
		URLTTL:  cfg.DownloadURLTTL,
		Logger:  logger,
	})

	server := httpserver.New(authModule, orderModule, paymentModule, downloadModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
