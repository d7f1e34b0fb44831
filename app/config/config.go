package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	JWTSecret        string
	DataFile         string
	UploadDir        string
	DatabaseURL      string
	SnapshotInterval time.Duration
}

var AppConfig *Config

// Load reads configuration from the environment. A .env file is honoured when
// present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "campus-events-secret-key"),
		DataFile:         getEnv("DATA_FILE", "data/campus_events.json"),
		UploadDir:        getEnv("UPLOAD_DIR", "static/uploads"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SnapshotInterval: getMinutesEnv("SNAPSHOT_INTERVAL_MINUTES", 5),
	}

	AppConfig = cfg
	return cfg
}

func Get() *Config {
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getMinutesEnv(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Printf("Invalid %s value %q, using default %d", key, v, fallback)
	}
	return time.Duration(fallback) * time.Minute
}
