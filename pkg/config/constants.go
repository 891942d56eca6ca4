package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "DEVFOLIO"

const (
	AppEnvLocal = "local"
	AppEnvProd  = "prod"
)

const (
	EnvDBDSN  = "DEVFOLIO_DB_DSN"
	EnvDBHost = "DEVFOLIO_DB_HOST"
	EnvDBUser = "DEVFOLIO_DB_USER"
	EnvDBName = "DEVFOLIO_DB_NAME"

	EnvServerWorkers = "DEVFOLIO_SERVER_WORKERS"
	EnvServerThreads = "DEVFOLIO_SERVER_THREADS"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
