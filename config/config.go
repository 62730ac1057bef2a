package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"urlintake/logging"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. URLINTAKE_CORS_ALLOWED_ORIGINS.
const EnvPrefix = "URLINTAKE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_address", "0.0.0.0:8000")
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("read_header_timeout", "10s")
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", logging.FormatText)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"*"})
	v.SetDefault("cors.allowed_headers", []string{"*"})
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.report_interval", "0s")
}

// LoadConfig builds the configuration from defaults, the optional config file
// named in cli, environment variables and finally the command line overrides.
func LoadConfig(cli *CliConfig) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cli != nil && cli.ConfigFile != "" {
		v.SetConfigFile(cli.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if cli != nil {
		if cli.ListenAddress != "" {
			v.Set("listen_address", cli.ListenAddress)
		}
		if cli.Debug {
			v.Set("log_level", "debug")
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&configuration); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func validate(c *Config) error {
	if c.ListenAddress == "" {
		return errors.New("listen_address is required")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
	}
	if c.Metrics.ReportInterval < 0 {
		return errors.New("metrics.report_interval must not be negative")
	}
	return nil
}

// Level returns the parsed log level. LoadConfig has already validated it.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
