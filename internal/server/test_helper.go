package server

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"nfc-transfer-service/internal/config"
	"nfc-transfer-service/internal/database"
	"nfc-transfer-service/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// TestPassphrase is the transfer passphrase used by SetupTestServer
const TestPassphrase = "test-transfer-passphrase"

// TestEnv is a fully wired server over an in-memory SQLite database
type TestEnv struct {
	Server   *Server
	DB       *database.DB
	Config   *config.Config
	Registry *prometheus.Registry

	tokens services.TokenServiceInterface
}

func SetupTestServer(t *testing.T) *TestEnv {
	t.Helper()

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		t.Fatalf("failed to generate RSA keys: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    "testing",
			MetricsEnabled: true,
		},
		JWT: config.JWTConfig{
			AccessTokenDuration: time.Hour,
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "nfc-transfer-service-test",
		},
		Security: config.SecurityConfig{
			RateLimitPerSecond: 100,
			RateLimitBurst:     100,
		},
		Transfer: config.TransferConfig{Passphrase: TestPassphrase},
		Jobs: config.JobsConfig{
			AuditRetention:         24 * time.Hour,
			AuditRetentionSchedule: "@daily",
		},
	}

	db := database.SetupTestDB(t)
	registry := prometheus.NewRegistry()

	srv, err := New(db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), registry)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	return &TestEnv{
		Server:   srv,
		DB:       db,
		Config:   cfg,
		Registry: registry,
		tokens:   services.NewTokenService(&cfg.JWT),
	}
}

// TokenFor issues a session token for userID
func (env *TestEnv) TokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, _, err := env.tokens.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
