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
	Catalog  CatalogConfig
	Identity IdentityConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	MockAPI  MockAPIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
	SessionID    string `envconfig:"STOREFRONT_SESSION_ID" default:"local"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	BaseURL  string        `envconfig:"STOREFRONT_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout  time.Duration `envconfig:"STOREFRONT_CATALOG_TIMEOUT" default:"10s"`
	CacheTTL time.Duration `envconfig:"STOREFRONT_CATALOG_CACHE_TTL" default:"5m"`
}

type IdentityConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_IDENTITY_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout time.Duration `envconfig:"STOREFRONT_IDENTITY_TIMEOUT" default:"10s"`
}

// StorageConfig selects the persistence gateway backend. The memory backend
// keeps snapshots for the lifetime of the process only.
type StorageConfig struct {
	Backend    string `envconfig:"STOREFRONT_STORAGE_BACKEND" default:"sqlite"`
	SQLitePath string `envconfig:"STOREFRONT_STORAGE_SQLITE_PATH" default:"storefront.db"`
}

func (s StorageConfig) validate() error {
	switch strings.ToLower(s.Backend) {
	case StorageBackendMemory, StorageBackendSQLite, StorageBackendRedis:
		return nil
	}
	return fmt.Errorf("unknown storage backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CheckoutConfig carries the money rules applied at checkout time. Values are
// decimal strings so totals stay exact.
type CheckoutConfig struct {
	TaxRate               string `envconfig:"STOREFRONT_CHECKOUT_TAX_RATE" default:"0.08"`
	FreeShippingThreshold string `envconfig:"STOREFRONT_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"100"`
	ShippingFlatFee       string `envconfig:"STOREFRONT_CHECKOUT_SHIPPING_FLAT_FEE" default:"10"`
}

func (c CheckoutConfig) validate() error {
	for name, raw := range map[string]string{
		"tax rate":                c.TaxRate,
		"free shipping threshold": c.FreeShippingThreshold,
		"shipping flat fee":       c.ShippingFlatFee,
	} {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid checkout %s %q: %w", name, raw, err)
		}
		if value.IsNegative() {
			return fmt.Errorf("checkout %s must be non-negative", name)
		}
	}
	return nil
}

// TaxRateDecimal returns the parsed tax rate. validate() guarantees parse
// success after Load.
func (c CheckoutConfig) TaxRateDecimal() decimal.Decimal {
	return mustDecimal(c.TaxRate)
}

func (c CheckoutConfig) FreeShippingThresholdDecimal() decimal.Decimal {
	return mustDecimal(c.FreeShippingThreshold)
}

func (c CheckoutConfig) ShippingFlatFeeDecimal() decimal.Decimal {
	return mustDecimal(c.ShippingFlatFee)
}

type MockAPIConfig struct {
	Port string `envconfig:"STOREFRONT_MOCKAPI_PORT" default:"8080"`
}

func mustDecimal(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}
