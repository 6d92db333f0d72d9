// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config holds the server settings.
type Config struct {
	Port string
}

// Load reads an optional .env file and then the environment. A missing
// .env file is not an error; a present but unreadable one is.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	return fromEnv(), nil
}

func fromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return Config{Port: port}
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}
