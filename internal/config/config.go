package config

import (
	"flag"
	"os"
)

type Config struct {
	RunAddress        string
	DatabaseURI       string
	APIKey            string
	DownstreamAddress string
}

func New() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI (empty selects in-memory storage)")
	flag.StringVar(&cfg.APIKey, "k", "dev-api-key", "API key required on submission requests")
	flag.StringVar(&cfg.DownstreamAddress, "r", "", "downstream handoff consumer address (empty disables delivery)")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)
	cfg.APIKey = getEnv("API_KEY", cfg.APIKey)
	cfg.DownstreamAddress = getEnv("DOWNSTREAM_ADDRESS", cfg.DownstreamAddress)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
