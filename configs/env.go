package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every piece of process configuration. MongoURI and
// GeminiAPIKey are mandatory; a process without them cannot serve a single
// request, so loading fails instead of deferring the error to request time.
type Config struct {
	MongoURI      string
	DBName        string
	GeminiAPIKey  string
	Port          string
	GeminiTimeout time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployments that inject real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        os.Getenv("DB_NAME"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		Port:          os.Getenv("PORT"),
		GeminiTimeout: 30 * time.Second,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if cfg.DBName == "" {
		cfg.DBName = "mydatabase"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		cfg.GeminiTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
