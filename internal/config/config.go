package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	CORSOrigin  string
	Env         string
}

// Load reads configuration from a .env file (if present) and the process
// environment. DATABASE_URL and JWT_SECRET are required; everything else
// has a default suitable for local development.
func Load() (*Config, error) {
	// .env is optional; deployments set the process environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        "8080",
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigin:  "*",
		Env:         "dev",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return cfg, nil
}
