package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса.
type AppConfig struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	TZ          string `envconfig:"TZ" default:"Local"`
	Port        int    `envconfig:"PORT" default:"8080"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	PGDSN string `envconfig:"PG_DSN"`

	RedisAddr string `envconfig:"REDIS_ADDR"`

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	} `envconfig:""`

	Gemini struct {
		APIKey  string        `envconfig:"GEMINI_API_KEY"`
		Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
		BaseURL string        `envconfig:"GEMINI_BASE_URL"`
		Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
	} `envconfig:""`

	Summary struct {
		Provider    string        `envconfig:"SUMMARY_PROVIDER" default:"gemini"`
		MinInterval time.Duration `envconfig:"SUMMARY_MIN_INTERVAL" default:"60s"`
		DailyLimit  int           `envconfig:"SUMMARY_DAILY_LIMIT" default:"3"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}

// Location возвращает часовой пояс из конфига.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		log.Fatalf("некорректный часовой пояс %q: %v", c.TZ, err)
	}
	return loc
}
