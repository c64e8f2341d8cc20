package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN string `mapstructure:"dsn"`
}

type Rates struct {
	TTLSeconds             int `mapstructure:"ttl_seconds"`
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

func (r Rates) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

func (r Rates) RefreshInterval() time.Duration {
	return time.Duration(r.RefreshIntervalSeconds) * time.Second
}

type Currencies struct {
	Fiat   []string          `mapstructure:"fiat"`
	Crypto []string          `mapstructure:"crypto"`
	Words  map[string]string `mapstructure:"words"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Database   Database   `mapstructure:"database"`
	Rates      Rates      `mapstructure:"rates"`
	Currencies Currencies `mapstructure:"currencies"`
	LogLevel   string     `mapstructure:"log_level"`
}

// Init loads configuration from an optional config.yaml, an optional .env
// file and environment variables. Missing files are fine; everything has a
// default.
func Init() (*AppConfig, error) {
	var cfg AppConfig

	_ = godotenv.Load()

	if _, err := os.Stat("config.yaml"); err == nil {
		viper.SetConfigFile("config.yaml")
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("rates.ttl_seconds", 600)
	viper.SetDefault("rates.refresh_interval_seconds", 600)
	viper.SetDefault("log_level", "info")

	_ = viper.BindEnv("http_server.port", "HTTP_PORT")
	_ = viper.BindEnv("database.dsn", "DATABASE_DSN")
	_ = viper.BindEnv("rates.ttl_seconds", "RATES_TTL_SECONDS")
	_ = viper.BindEnv("rates.refresh_interval_seconds", "RATES_REFRESH_INTERVAL_SECONDS")
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
