// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	BaseURL     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	AutoMigrate bool
	// DeckSeed fixes every deal when non-zero.
	DeckSeed uint64
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Config{
		Port:        atoiDef(os.Getenv("PORT"), 8080),
		BaseURL:     strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "console"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AutoMigrate: asBool(os.Getenv("AUTO_MIGRATE")),
	}
	if s := os.Getenv("DECK_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DECK_SEED: %w", err)
		}
		c.DeckSeed = seed
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return Config{}, fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return c, nil
}

// JoinURL is the address a phone should open to watch table id. With no
// BASE_URL it falls back to host, as seen by the request.
func (c Config) JoinURL(host, id string) string {
	base := c.BaseURL
	if base == "" {
		base = "http://" + host
	}
	return fmt.Sprintf("%s/?table=%s", base, id)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
