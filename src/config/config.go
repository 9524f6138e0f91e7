package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default source is the public finished-matches feed this blog was
// built around. The column layout is fixed by convention with it.
const defaultSourceURL = "https://raw.githubusercontent.com/JOSPHATT/Finished_Matches/refs/heads/main/Finished_matches.csv"

type AppConfig struct {
	SourceURL    string
	TemplatePath string
	OutputPath   string
	DatabasePath string
	LogLevel     string
	Port         string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", err)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		SourceURL:    getEnv("SOURCE_URL", defaultSourceURL),
		TemplatePath: getEnv("TEMPLATE_PATH", "web/template.html"),
		OutputPath:   getEnv("OUTPUT_PATH", "index.html"),
		DatabasePath: getEnv("DATABASE_PATH", "./matchpulse.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", 20*time.Second),
		CacheTTL:     getEnvAsDuration("CACHE_TTL", 15*time.Minute),
	}

	log.Printf("Configuration loaded: Source=%s, Output=%s, LogLevel=%s, DBPath=%s",
		Cfg.SourceURL, Cfg.OutputPath, Cfg.LogLevel, Cfg.DatabasePath)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
