package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Quick entry
	QuickAdd  QuickAddConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// QuickAddConfig tunes relative date resolution and batch sessions.
type QuickAddConfig struct {
	Timezone        string
	SessionCapacity int
	SessionTTL      time.Duration
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
	Clients   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskflow/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskflow/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Quick entry
	cfg.QuickAdd.Timezone = viper.GetString("quickadd.timezone")
	cfg.QuickAdd.SessionCapacity = viper.GetInt("quickadd.session_capacity")
	cfg.QuickAdd.SessionTTL = viper.GetDuration("quickadd.session_ttl")

	cfg.RateLimit.PerSecond = viper.GetFloat64("rate_limit.per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.Clients = viper.GetInt("rate_limit.clients")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "taskflow.db")
	viper.SetDefault("quickadd.timezone", "Local")
	viper.SetDefault("quickadd.session_capacity", 256)
	viper.SetDefault("quickadd.session_ttl", "30m")
	viper.SetDefault("rate_limit.per_second", 10)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.clients", 1024)
}
