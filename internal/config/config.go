package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store        StoreConfig
	JWT          JWTConfig
	App          AppConfig
	Mock         MockConfig
	OAuth2Google OAuth2GoogleConfig
}

// StoreConfig holds the document store connection settings. All six
// variables must be present for the store path to be used; otherwise the
// service layer runs in fixture mode.
type StoreConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// MockConfig tunes fixture-mode behavior: synthetic latency and the seeded
// failure injector applied to status updates and bulk deletes.
type MockConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64
	Seed        int64
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	storePort, err := strconv.Atoi(getEnv("DB_PORT", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Store = StoreConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     storePort,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSL_MODE"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	minLatency, err := time.ParseDuration(getEnv("MOCK_MIN_LATENCY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_MIN_LATENCY: %w", err)
	}
	maxLatency, err := time.ParseDuration(getEnv("MOCK_MAX_LATENCY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_MAX_LATENCY: %w", err)
	}
	failureRate, err := strconv.ParseFloat(getEnv("MOCK_FAILURE_RATE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_FAILURE_RATE: %w", err)
	}
	seed, err := strconv.ParseInt(getEnv("MOCK_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_SEED: %w", err)
	}

	config.Mock = MockConfig{
		MinLatency:  minLatency,
		MaxLatency:  maxLatency,
		FailureRate: failureRate,
		Seed:        seed,
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration. The store variables are deliberately
// not required: their absence selects fixture mode instead of failing
// startup.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Mock.FailureRate < 0 || c.Mock.FailureRate > 1 {
		return fmt.Errorf("MOCK_FAILURE_RATE must be between 0 and 1")
	}
	if c.Mock.MaxLatency < c.Mock.MinLatency {
		return fmt.Errorf("MOCK_MAX_LATENCY must not be less than MOCK_MIN_LATENCY")
	}
	return nil
}

// StoreConfigured reports whether all six store variables are set. Any
// missing variable flips the whole service layer into fixture mode.
func (c *Config) StoreConfigured() bool {
	return c.Store.Host != "" &&
		c.Store.Port != 0 &&
		c.Store.User != "" &&
		c.Store.Password != "" &&
		c.Store.Name != "" &&
		c.Store.SSLMode != ""
}

// StoreURL returns the PostgreSQL connection string for the document store
func (c *Config) StoreURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Store.User,
		c.Store.Password,
		c.Store.Host,
		c.Store.Port,
		c.Store.Name,
		c.Store.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
