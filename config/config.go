package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App        App             `mapstructure:"app"`
	Log        Logger          `mapstructure:"logger"`
	DB         Database        `mapstructure:"database"`
	API        API             `mapstructure:"api"`
	Cache      Cache           `mapstructure:"cache"`
	CoinGecko  CoinGecko       `mapstructure:"coingecko"`
	FearGreed  FearGreed       `mapstructure:"fear_greed"`
	Gemini     Gemini          `mapstructure:"gemini"`
	Market     Market          `mapstructure:"market"`
	TrustIndex TrustIndex      `mapstructure:"trust_index"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
}

type App struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type CoinGecko struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MarketsPerPage      int           `mapstructure:"markets_per_page"`
}

type FearGreed struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Gemini struct {
	BaseURL             string        `mapstructure:"base_url"`
	BaseModel           string        `mapstructure:"base_model"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
}

// Market selects where price enrichment data comes from. "live" hits
// CoinGecko and degrades to a synthetic random walk on failure, "synthetic"
// never leaves the process.
type Market struct {
	DataSource string `mapstructure:"data_source"`
}

type TrustIndex struct {
	HistoryDays int `mapstructure:"history_days"`
}

type SchedulerConfig struct {
	SnapshotCron string `mapstructure:"snapshot_cron"`
}

func Load() (*Config, error) {
	// .env is optional, real deployments inject the environment directly.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "crypto-soothsayer")
	viper.SetDefault("app.env", EnvDevelopment)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 5001)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("cache.default_expiration", 30*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("coingecko.base_url", "https://api.coingecko.com/api/v3")
	viper.SetDefault("coingecko.timeout", 15*time.Second)
	viper.SetDefault("coingecko.max_request_per_minute", 30)
	viper.SetDefault("coingecko.markets_per_page", 100)
	viper.SetDefault("fear_greed.base_url", "https://api.alternative.me")
	viper.SetDefault("fear_greed.timeout", 10*time.Second)
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("gemini.base_model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", 60*time.Second)
	viper.SetDefault("gemini.max_request_per_minute", 15)
	viper.SetDefault("gemini.max_token_per_minute", 1000000)
	viper.SetDefault("market.data_source", "live")
	viper.SetDefault("trust_index.history_days", 30)
	viper.SetDefault("scheduler.snapshot_cron", "0 * * * *")
}
