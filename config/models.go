package config

import "time"

// CORSConfig controls which cross-origin requests are allowed.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// MetricsConfig controls the Prometheus endpoint and the periodic traffic summary.
type MetricsConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Path           string        `mapstructure:"path"`
	ReportInterval time.Duration `mapstructure:"report_interval"`
}

// Config holds the application configuration.
type Config struct {
	ListenAddress     string        `mapstructure:"listen_address"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	CORS              CORSConfig    `mapstructure:"cors"`
	Metrics           MetricsConfig `mapstructure:"metrics"`
}
