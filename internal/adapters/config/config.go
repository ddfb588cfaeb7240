package config

import (
	"github.com/joho/godotenv"
)

// DefaultDBPath is the store file created next to the binary when no
// POS_DB_PATH override is present.
const DefaultDBPath = "pos.db"

type DBConfig struct {
	Path string
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	DB     DBConfig
	HTTP   HTTPConfig
	Logger LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		DB: DBConfig{
			Path: getStringEnv("POS_DB_PATH", DefaultDBPath),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "127.0.0.1"),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "pos"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
