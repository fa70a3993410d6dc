package config

const (
	EnvPrefix = "atelier"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "ATELIER_APP_ENV"

	EnvDBDSN  = "ATELIER_DB_DSN"
	EnvDBHost = "ATELIER_DB_HOST"
	EnvDBUser = "ATELIER_DB_USER"
	EnvDBName = "ATELIER_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
