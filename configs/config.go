package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBSource string
	LogLevel string

	// The admin account is this credential pair, never a stored user.
	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment and defaults")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "coffecorner.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
