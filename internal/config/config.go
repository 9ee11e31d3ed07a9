package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	RailAPI   RailAPIConfig
	TrainInfo TrainInfoConfig
	RapidAPI  RapidAPIConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// GeminiConfig - generative language API used as the fallback
// city -> station code resolver.
type GeminiConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	RequestTimeout int // seconds
}

// RailAPIConfig - primary train search provider (RapidAPI).
type RailAPIConfig struct {
	BaseURL        string
	APIKey         string
	Host           string
	RequestTimeout int // seconds
}

// TrainInfoConfig - fallback train search provider.
type TrainInfoConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
}

// RapidAPIConfig - flight status provider (RapidAPI AeroDataBox).
type RapidAPIConfig struct {
	BaseURL        string
	APIKey         string
	Host           string
	RequestTimeout int // seconds
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	FlightsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Gemini: GeminiConfig{
			BaseURL:        viper.GetString("GEMINI_BASE_URL"),
			APIKey:         viper.GetString("GEMINI_API_KEY"),
			Model:          viper.GetString("GEMINI_MODEL"),
			RequestTimeout: viper.GetInt("GEMINI_REQUEST_TIMEOUT"),
		},
		RailAPI: RailAPIConfig{
			BaseURL:        viper.GetString("RAIL_API_BASE_URL"),
			APIKey:         viper.GetString("RAIL_API_KEY"),
			Host:           viper.GetString("RAIL_API_HOST"),
			RequestTimeout: viper.GetInt("RAIL_API_REQUEST_TIMEOUT"),
		},
		TrainInfo: TrainInfoConfig{
			BaseURL:        viper.GetString("TRAININFO_BASE_URL"),
			RequestTimeout: viper.GetInt("TRAININFO_REQUEST_TIMEOUT"),
		},
		RapidAPI: RapidAPIConfig{
			BaseURL:        viper.GetString("RAPIDAPI_BASE_URL"),
			APIKey:         viper.GetString("RAPIDAPI_KEY"),
			Host:           viper.GetString("RAPIDAPI_HOST"),
			RequestTimeout: viper.GetInt("RAPIDAPI_REQUEST_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FlightsCacheTTL: time.Duration(viper.GetInt("FLIGHTS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Gemini.RequestTimeout == 0 {
		cfg.Gemini.RequestTimeout = 10
	}
	if cfg.RailAPI.RequestTimeout == 0 {
		cfg.RailAPI.RequestTimeout = 15
	}
	if cfg.TrainInfo.BaseURL == "" {
		cfg.TrainInfo.BaseURL = "https://traininfo-diik.onrender.com"
	}
	if cfg.TrainInfo.RequestTimeout == 0 {
		cfg.TrainInfo.RequestTimeout = 20
	}
	if cfg.RapidAPI.RequestTimeout == 0 {
		cfg.RapidAPI.RequestTimeout = 15
	}
	if cfg.Cache.FlightsCacheTTL == 0 {
		cfg.Cache.FlightsCacheTTL = 120 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "trip-archive-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
