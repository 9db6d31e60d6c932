package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the environment of the application. Every value can be set in the
// process environment or in a .env file of the working directory.
type Config struct {
	BuyKeyword  string // LOTS_BUY_KEYWORD
	SellKeyword string // LOTS_SELL_KEYWORD
	LogLevel    string // LOTS_LOG_LEVEL
	Addr        string // LOTS_ADDR
	Profile     string // LOTS_PROFILE, path to a mapping profile
}

// LoadConfig reads the .env file if any, then the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}
	return Config{
		BuyKeyword:  getEnv("LOTS_BUY_KEYWORD", "buy"),
		SellKeyword: getEnv("LOTS_SELL_KEYWORD", "sell"),
		LogLevel:    getEnv("LOTS_LOG_LEVEL", "info"),
		Addr:        getEnv("LOTS_ADDR", ":8080"),
		Profile:     getEnv("LOTS_PROFILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
