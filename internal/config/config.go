package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	AppPort       int    `mapstructure:"APP_PORT"`
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	KeyPrefix     string `mapstructure:"KEY_PREFIX"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`
	ChatModel     string `mapstructure:"CHAT_MODEL"`
	ImageModel    string `mapstructure:"IMAGE_MODEL"`
	ImageCount    int    `mapstructure:"IMAGE_COUNT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	ServerURL     string `mapstructure:"SERVER_URL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("STORE_BACKEND", BackendSQLite)
	viper.SetDefault("DATABASE_PATH", "/data/savant.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("KEY_PREFIX", "savant-")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "")
	viper.SetDefault("CHAT_MODEL", "gemini-2.5-flash")
	viper.SetDefault("IMAGE_MODEL", "imagen-3.0-generate-002")
	viper.SetDefault("IMAGE_COUNT", 2)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("SERVER_URL", "http://localhost:8000")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	return &cfg, nil
}
