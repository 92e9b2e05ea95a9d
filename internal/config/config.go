package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DevelopmentPassphrase is used only outside production when
// TRANSFER_PASSPHRASE is unset.
const DevelopmentPassphrase = "development-only-transfer-passphrase"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Transfer TransferConfig
	Jobs     JobsConfig

	// Warnings collects non-fatal notes from Load, logged once a logger exists
	Warnings []string
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	MetricsEnabled   bool
	// DocsDir holds scalar.html and openapi.json. Empty disables /docs.
	DocsDir          string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	AutoMigrate   bool
	Seed          bool
	MigrationsDir string
	SeedsDir      string
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// TransferConfig holds the shared payload passphrase. It is never logged.
type TransferConfig struct {
	Passphrase string
}

type JobsConfig struct {
	AuditRetention         time.Duration
	AuditRetentionSchedule string
}

// ClientConfig configures a transfer client talking to this service
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	Passphrase string
}

// Load reads the server configuration from the environment. Secrets that
// production must provide explicitly are an error when missing there.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "localhost"),
			Environment:    getEnv("APP_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
			DocsDir:        getEnv("DOCS_DIR", "docs"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "nfc_user"),
			Password:        getEnv("DB_PASSWORD", "nfc_password"),
			Name:            getEnv("DB_NAME", "nfc_transfers"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			Seed:            getBoolEnv("SEED_DATABASE", false),
			MigrationsDir:   getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsDir:        getEnv("SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "nfc-transfer-service"),
		},
		Jobs: JobsConfig{
			AuditRetention:         getDurationEnv("AUDIT_RETENTION", 365*24*time.Hour),
			AuditRetentionSchedule: getEnv("AUDIT_RETENTION_SCHEDULE", "@daily"),
		},
	}

	cfg.Server.CORSAllowOrigins = cfg.corsOrigins(os.Getenv("CORS_ALLOW_ORIGINS"))

	var err error
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey, err = cfg.jwtKeys(os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY"))
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	cfg.Transfer.Passphrase, err = cfg.transferPassphrase(os.Getenv("TRANSFER_PASSPHRASE"))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}
	if c.JWT.AccessTokenDuration <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TOKEN_DURATION must be positive"))
	}
	if c.Jobs.AuditRetention <= 0 {
		errs = append(errs, errors.New("AUDIT_RETENTION must be positive"))
	}
	if c.Transfer.Passphrase == "" {
		errs = append(errs, errors.New("transfer passphrase must not be empty"))
	}

	return errors.Join(errs...)
}

// LoadClient reads the settings a transfer client needs
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		BaseURL:    getEnv("TRANSFER_API_URL", "http://localhost:8080"),
		Timeout:    getDurationEnv("TRANSFER_API_TIMEOUT", 10*time.Second),
		Passphrase: os.Getenv("TRANSFER_PASSPHRASE"),
	}

	if cfg.Passphrase == "" {
		return nil, errors.New("TRANSFER_PASSPHRASE must be set")
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *Config) warn(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// jwtKeys decodes base64 PEM keys. Outside production a missing pair is
// replaced by a fresh one, so tokens do not survive a restart.
func (c *Config) jwtKeys(privateB64, publicB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privateB64 != "" && publicB64 != "" {
		return decodeKeyPair(privateB64, publicB64)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
	}

	c.warn("JWT_PRIVATE_KEY/JWT_PUBLIC_KEY not set, generated an ephemeral RSA keypair")
	return GenerateRSAKeyPair()
}

// transferPassphrase falls back to DevelopmentPassphrase outside production
// so a local client and server agree out of the box.
func (c *Config) transferPassphrase(value string) (string, error) {
	if value != "" {
		return value, nil
	}

	if c.IsProduction() {
		return "", errors.New("TRANSFER_PASSPHRASE must be set in production")
	}

	c.warn("TRANSFER_PASSPHRASE not set, using the development passphrase")
	return DevelopmentPassphrase, nil
}

func (c *Config) corsOrigins(raw string) []string {
	if raw == "" {
		if c.IsProduction() {
			c.warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GenerateRSAKeyPair generates a new 2048-bit RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func decodeKeyPair(privateB64, publicB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := parseRSAPrivateKey(privatePEM)
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := parseRSAPublicKey(publicPEM)
	if err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// parseRSAPrivateKey accepts PKCS#1 and PKCS#8 PEM blocks
func parseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("private key is not PEM encoded")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return rsaKey, nil
}

func parseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("public key is not PEM encoded")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}
	return rsaKey, nil
}
