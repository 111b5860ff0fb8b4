package config

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "storefront"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StorageBackendMemory = "memory"
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"

	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvLogLevel       = "STOREFRONT_LOG_LEVEL"
	EnvSessionID      = "STOREFRONT_SESSION_ID"
	EnvCatalogBaseURL = "STOREFRONT_CATALOG_BASE_URL"
	EnvStorageBackend = "STOREFRONT_STORAGE_BACKEND"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvTaxRate        = "STOREFRONT_CHECKOUT_TAX_RATE"
)
