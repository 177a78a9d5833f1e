package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration, populated from the environment.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"true"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// JWTSecret verifies access tokens minted by the identity provider.
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// GatewayServerKey authenticates payment gateway webhook signatures.
	GatewayServerKey string `envconfig:"GATEWAY_SERVER_KEY" required:"true"`

	// RoutingBaseURL points at the distance provider; empty means
	// straight-line distances only.
	RoutingBaseURL    string `envconfig:"ROUTING_BASE_URL"`
	RoutingTimeoutSec int    `envconfig:"ROUTING_TIMEOUT_SEC" default:"5"`

	MerchantName     string `envconfig:"MERCHANT_NAME" default:"Kirim"`
	MerchantCity     string `envconfig:"MERCHANT_CITY" default:"Jakarta"`
	MerchantCurrency string `envconfig:"MERCHANT_CURRENCY_NUMERIC" default:"360"`

	BillingPerSeatRate int64  `envconfig:"BILLING_PER_SEAT_RATE" default:"50000"`
	BillingCurrency    string `envconfig:"BILLING_CURRENCY" default:"IDR"`

	RateLimitRequests  int64 `envconfig:"RATE_LIMIT_REQUESTS" default:"60"`
	RateLimitWindowSec int64 `envconfig:"RATE_LIMIT_WINDOW_SEC" default:"60"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
