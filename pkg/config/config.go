package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Pricing  PricingConfig
	Shipping ShippingConfig
	Snapshot SnapshotConfig
	Redis    RedisConfig
	Toast    ToastConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Snapshot.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OYG_APP_ENV" required:"true"`
	Port         string `envconfig:"OYG_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"OYG_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OYG_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PricingConfig carries the flat tax rate and the free-shipping threshold.
// Amounts are decimal strings in the store's base currency.
type PricingConfig struct {
	TaxRate               decimal.Decimal `envconfig:"OYG_TAX_RATE" default:"0.0875"`
	FreeShippingThreshold decimal.Decimal `envconfig:"OYG_FREE_SHIPPING_THRESHOLD" default:"50"`
}

// ShippingConfig maps each shipping method to its cost and delivery estimate.
type ShippingConfig struct {
	StandardCost  decimal.Decimal `envconfig:"OYG_SHIPPING_STANDARD_COST" default:"0"`
	StandardDays  int             `envconfig:"OYG_SHIPPING_STANDARD_DAYS" default:"7"`
	ExpressCost   decimal.Decimal `envconfig:"OYG_SHIPPING_EXPRESS_COST" default:"9.99"`
	ExpressDays   int             `envconfig:"OYG_SHIPPING_EXPRESS_DAYS" default:"2"`
	OvernightCost decimal.Decimal `envconfig:"OYG_SHIPPING_OVERNIGHT_COST" default:"19.99"`
	OvernightDays int             `envconfig:"OYG_SHIPPING_OVERNIGHT_DAYS" default:"1"`
}

// SnapshotConfig picks the durable backend(s) for cart snapshots. Backend
// accepts a comma-separated list; multiple entries compose a stack that
// writes everywhere and reads from the first backend holding data.
type SnapshotConfig struct {
	Backend    string        `envconfig:"OYG_SNAPSHOT_BACKEND" default:"file"`
	Path       string        `envconfig:"OYG_SNAPSHOT_PATH" default:"cart_snapshot.json"`
	SQLitePath string        `envconfig:"OYG_SQLITE_PATH" default:"cart.db"`
	Scope      string        `envconfig:"OYG_SNAPSHOT_SCOPE" default:"default"`
	TTL        time.Duration `envconfig:"OYG_SNAPSHOT_TTL" default:"0"`

	MaxRetries   int           `envconfig:"OYG_SNAPSHOT_MAX_RETRIES" default:"3"`
	RetryBackoff time.Duration `envconfig:"OYG_SNAPSHOT_RETRY_BACKOFF" default:"100ms"`
}

const (
	SnapshotBackendFile   = "file"
	SnapshotBackendSQLite = "sqlite"
	SnapshotBackendRedis  = "redis"
)

// Backends returns the configured backend names. A comma-separated value
// composes a write-everywhere, read-first-available stack.
func (s SnapshotConfig) Backends() []string {
	parts := strings.Split(s.Backend, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (s SnapshotConfig) validate() error {
	names := s.Backends()
	if len(names) == 0 {
		return fmt.Errorf("no snapshot backend configured")
	}
	for _, name := range names {
		switch name {
		case SnapshotBackendFile, SnapshotBackendSQLite, SnapshotBackendRedis:
		default:
			return fmt.Errorf("unknown snapshot backend %q", name)
		}
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"OYG_REDIS_URL"`
	PoolSize     int           `envconfig:"OYG_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OYG_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OYG_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OYG_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OYG_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ToastConfig tunes the notification side channel.
type ToastConfig struct {
	DurationMS int `envconfig:"OYG_TOAST_DURATION_MS" default:"2000"`
}

// Duration returns the configured toast display hint.
func (t ToastConfig) Duration() time.Duration {
	if t.DurationMS <= 0 {
		return 0
	}
	return time.Duration(t.DurationMS) * time.Millisecond
}
