package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	IdentityBaseURL string
	IdentityAPIKey  string

	GatewayBaseURL string
	GatewayKey     string
	GatewaySecret  string

	StorageBaseURL    string
	StorageServiceKey string
	StorageBucket     string

	// AdminIdentities is the allow-list of principal ids/emails treated as
	// administrators in addition to the "admin" role claim.
	AdminIdentities []string

	DownloadURLTTL time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "classbay"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var admins []string
	for _, value := range strings.Split(os.Getenv("ADMIN_IDENTITIES"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			admins = append(admins, value)
		}
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		IdentityBaseURL: os.Getenv("IDENTITY_BASE_URL"),
		IdentityAPIKey:  os.Getenv("IDENTITY_API_KEY"),

		GatewayBaseURL: envDefault("GATEWAY_BASE_URL", "https://api.iamport.kr"),
		GatewayKey:     os.Getenv("GATEWAY_KEY"),
		GatewaySecret:  os.Getenv("GATEWAY_SECRET"),

		StorageBaseURL:    os.Getenv("STORAGE_BASE_URL"),
		StorageServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		StorageBucket:     envDefault("STORAGE_BUCKET", "course-files"),

		AdminIdentities: admins,

		DownloadURLTTL: time.Duration(envInt("DOWNLOAD_URL_TTL_SECONDS", 3600)) * time.Second,
	}, nil
}

func envDefault(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
