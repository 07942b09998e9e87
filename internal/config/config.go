package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	APIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetEnv() string
	GetLogLevel() string
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeoutSeconds() int
}

type mainConfig struct {
	EnvVars
	API
}

func New() Config {
	// A missing .env file is not an error, the environment may be set directly
	_ = godotenv.Load()
	return mainConfig{}
}
