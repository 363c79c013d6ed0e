package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все параметры запуска ядра реестра.
type Config struct {
	Env               string
	LogLevel          string
	DataPath          string
	SiteOrigin        string
	MaxAssetSizeMB    int64
	DeployTick        time.Duration
	AIBaseURL         string
	AIModel           string
	AdminPasscodeHash string
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	logLevel := getEnv("LOG_LEVEL", "")
	if logLevel == "" {
		if env == "development" {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	maxAssetMB, err := getEnvInt64("MAX_ASSET_SIZE_MB", 2)
	if err != nil {
		return nil, err
	}
	if maxAssetMB <= 0 {
		return nil, fmt.Errorf("config: MAX_ASSET_SIZE_MB должен быть положительным")
	}

	deployTick, err := getEnvDuration("DEPLOY_TICK", 50*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:               env,
		LogLevel:          logLevel,
		DataPath:          getEnv("DATA_PATH", "./data/registry.db"),
		SiteOrigin:        getEnv("SITE_ORIGIN", "https://jacksoncartel.com"),
		MaxAssetSizeMB:    maxAssetMB,
		DeployTick:        deployTick,
		AIBaseURL:         getEnv("AI_BASE_URL", ""),
		AIModel:           getEnv("AI_MODEL", "gemini-2.5-flash"),
		AdminPasscodeHash: getEnv("ADMIN_PASSCODE_HASH", ""),
	}

	if env == "production" && cfg.AdminPasscodeHash == "" {
		return nil, fmt.Errorf("config: ADMIN_PASSCODE_HASH обязателен в production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s должен быть числом: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s должен быть длительностью вида 50ms: %w", key, err)
	}
	return value, nil
}
