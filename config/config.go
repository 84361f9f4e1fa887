// Package config loads renumber's settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RENUMBER_LOGGER_LEVEL.
const EnvPrefix = "RENUMBER"

// Config holds all configuration.
type Config struct {
	Logger     LoggerConfig
	Output     OutputConfig
	OCR        OCRConfig
	HTTPServer HTTPServerConfig
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OutputConfig struct {
	// Copy puts every result on the clipboard
	Copy bool
}

type OCRConfig struct {
	Language string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	MaxBodyBytes    int64
}

// Load loads configuration using Viper.
// Config file name: renumber.yaml, searched in ./config, . and
// $HOME/.config/renumber unless path names a file explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("renumber")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "renumber"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Output.Copy = v.GetBool("output.copy")
	cfg.OCR.Language = v.GetString("ocr.language")

	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.MaxBodyBytes = v.GetInt64("http_server.max_body_bytes")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("output.copy", false)
	v.SetDefault("ocr.language", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.rate_limit_per_min", 60)
	v.SetDefault("http_server.max_body_bytes", 1<<20)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative: %d", c.HTTPServer.RateLimitPerMin)
	}
	if c.HTTPServer.MaxBodyBytes <= 0 {
		return fmt.Errorf("http_server.max_body_bytes must be positive: %d", c.HTTPServer.MaxBodyBytes)
	}
	return nil
}
