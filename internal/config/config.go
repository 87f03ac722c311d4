package config

import (
	"github.com/Priyank118/fdanalytics/internal/logger"
)

// Config is the root application configuration.
type Config struct {
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Server   ServerConfig        `mapstructure:"server"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ShutdownTimeout int    `mapstructure:"shutdownTimeout"` // seconds
}

// PostgresConfig carries connection and pool tuning parameters.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"maxConns"`
	MinConns          int32  `mapstructure:"minConns"`
	MaxConnLifetime   int    `mapstructure:"maxConnLifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"maxConnIdleTime"`   // seconds
	HealthCheckPeriod int    `mapstructure:"healthCheckPeriod"` // seconds
}
