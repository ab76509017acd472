package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config (хранилище сессий диалогов)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Nominatim Config
	NominatimBaseURL string        `env:"NOMINATIM_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	NominatimEmail   string        `env:"NOMINATIM_EMAIL"`
	NominatimTimeout time.Duration `env:"NOMINATIM_TIMEOUT" envDefault:"8s"`
	NominatimPause   time.Duration `env:"NOMINATIM_PAUSE" envDefault:"100ms"`

	// Shelter Discovery Config
	ShelterRadiusKM float64 `env:"SHELTER_RADIUS_KM" envDefault:"5"`
	ShelterLimit    int     `env:"SHELTER_LIMIT" envDefault:"5"`

	// Session Config
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimEmail:   os.Getenv("NOMINATIM_EMAIL"),
		NominatimTimeout: getEnvAsDuration("NOMINATIM_TIMEOUT", 8*time.Second),
		NominatimPause:   getEnvAsDuration("NOMINATIM_PAUSE", 100*time.Millisecond),
		ShelterRadiusKM:  getEnvAsFloat("SHELTER_RADIUS_KM", 5),
		ShelterLimit:     getEnvAsInt("SHELTER_LIMIT", 5),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", 30*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	// Usage policy Nominatim требует контактный email
	if cfg.NominatimEmail == "" {
		return nil, fmt.Errorf("NOMINATIM_EMAIL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
