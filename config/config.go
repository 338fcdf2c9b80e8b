// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// defaultToken is the placeholder shipped in .env.example. Starting the
// bot with it still in place is a configuration error, not a typo worth
// retrying against the Telegram API.
const defaultToken = "PASTE_YOUR_BOT_TOKEN_HERE"

// Config holds everything the bot binary needs from the environment.
type Config struct {
	Token       string
	DatabaseURL string
}

// Load reads .env (outside production) and validates the bot settings.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	cfg := Config{
		Token:       os.Getenv("API_TOKEN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Token == "" || cfg.Token == defaultToken {
		return Config{}, fmt.Errorf("API_TOKEN is not set; put your bot token in .env")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	return cfg, nil
}
