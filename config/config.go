package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	StaticDir    string
	AllowOrigins string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to dev defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "5000"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		StaticDir:    getEnv("STATIC_DIR", "./static"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
