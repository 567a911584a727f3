package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "freshmart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	Storefront    StorefrontConfig
	Demo          DemoAccountConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storefront.ensureFee(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FRESHMART_APP_ENV" required:"true"`
	Port         string `envconfig:"FRESHMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FRESHMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRESHMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"FRESHMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FRESHMART_REDIS_ADDR"`
	Password     string        `envconfig:"FRESHMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"FRESHMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FRESHMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FRESHMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FRESHMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FRESHMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FRESHMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// StorefrontConfig carries the page-level constants: the flat delivery
// fee, the projection caps, and the two UI timers.
type StorefrontConfig struct {
	DeliveryFee     string        `envconfig:"FRESHMART_DELIVERY_FEE" default:"30.00"`
	OfferLimit      int           `envconfig:"FRESHMART_OFFER_LIMIT" default:"6"`
	SuggestionLimit int           `envconfig:"FRESHMART_SUGGESTION_LIMIT" default:"6"`
	SearchDebounce  time.Duration `envconfig:"FRESHMART_SEARCH_DEBOUNCE" default:"300ms"`
	NoticeTTL       time.Duration `envconfig:"FRESHMART_NOTICE_TTL" default:"3s"`

	fee decimal.Decimal
}

// DeliveryFeeAmount returns the parsed flat delivery fee.
func (s StorefrontConfig) DeliveryFeeAmount() decimal.Decimal {
	return s.fee
}

func (s *StorefrontConfig) ensureFee() error {
	fee, err := decimal.NewFromString(strings.TrimSpace(s.DeliveryFee))
	if err != nil {
		return fmt.Errorf("parsing FRESHMART_DELIVERY_FEE: %w", err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("FRESHMART_DELIVERY_FEE must be non-negative")
	}
	s.fee = fee
	return nil
}

// DemoAccountConfig describes the single storefront login. The password
// is hashed at startup; plain text never leaves the config layer.
type DemoAccountConfig struct {
	Email       string `envconfig:"FRESHMART_DEMO_EMAIL" default:"shopper@freshmart.dev"`
	DisplayName string `envconfig:"FRESHMART_DEMO_NAME" default:"Demo Shopper"`
	Password    string `envconfig:"FRESHMART_DEMO_PASSWORD" default:"freshmart123"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FRESHMART_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"FRESHMART_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow  time.Duration `envconfig:"FRESHMART_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterIPLimit int           `envconfig:"FRESHMART_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}
