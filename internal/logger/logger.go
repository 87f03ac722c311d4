package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level          string                 `json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format         string                 `json:"format,omitempty" validate:"oneof=json console"`
	TimeField      string                 `json:"timeField,omitempty"`
	TimeFormat     string                 `json:"timeFormat,omitempty" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string                 `json:"serviceName,omitempty"`
	ServiceVersion string                 `json:"serviceVersion,omitempty"`
	Env            string                 `json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller     bool                   `json:"withCaller,omitempty"`
	Stacktrace     bool                   `json:"stacktrace,omitempty"`
	DebugLogPath   string                 `json:"debugLogPath,omitempty"`
	Fields         map[string]interface{} `json:"fields,omitempty"`
}

// New builds the root zerolog logger for the process. Production-like
// environments get JSON on stdout; dev gets a console writer, and dev+debug
// additionally mirrors everything into a log file for later digging.
func New(cfg *LoggerConfig) (zerolog.Logger, error) {
	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = cfg.TimeFormat

	logger := zerolog.New(cfg.writer()).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if cfg.Stacktrace {
		logger = logger.With().Stack().Logger()
	}
	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *LoggerConfig) writer() io.Writer {
	if c.Env != "dev" {
		return os.Stdout
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: c.TimeFormat,
	}
	if c.Level != "debug" {
		return console
	}

	// dev + debug: console for humans, file for full history; a failed file
	// open degrades to console only instead of crashing startup
	if err := os.MkdirAll(filepath.Dir(c.DebugLogPath), 0755); err != nil {
		return console
	}
	file, err := os.OpenFile(c.DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return console
	}
	return zerolog.MultiLevelWriter(console, file)
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}

	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}

	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if !c.Stacktrace && c.Env != "dev" {
		c.Stacktrace = true
	}

	if c.DebugLogPath == "" {
		c.DebugLogPath = "logs/debug.log"
	}

	if c.ServiceName == "" {
		c.ServiceName = "fdanalytics"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}

	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
