package config

// EnvPrefix is passed to envconfig; variable names are fully qualified in
// struct tags so the prefix itself stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                = "OYG_APP_ENV"
	EnvPort                  = "OYG_APP_PORT"
	EnvLogLevel              = "OYG_LOG_LEVEL"
	EnvTaxRate               = "OYG_TAX_RATE"
	EnvFreeShippingThreshold = "OYG_FREE_SHIPPING_THRESHOLD"
	EnvSnapshotBackend       = "OYG_SNAPSHOT_BACKEND"
	EnvSnapshotPath          = "OYG_SNAPSHOT_PATH"
	EnvSQLitePath            = "OYG_SQLITE_PATH"
	EnvRedisURL              = "OYG_REDIS_URL"
)
