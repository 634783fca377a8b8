package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file if one exists. Missing files are fine; container
// deployments set real environment variables instead.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
