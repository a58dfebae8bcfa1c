package config

import "os"

const (
	DefaultBaseURL = "https://zascript.com"
	DefaultPort    = "4000"
)

// Config holds the process-wide settings read once at startup. It is never
// mutated after Load returns.
type Config struct {
	BaseURL       string
	MobileBaseURL string // empty disables all mobile redirect behavior
	Port          string
}

func Load() *Config {
	cfg := &Config{
		BaseURL:       os.Getenv("BASE_URL"),
		MobileBaseURL: os.Getenv("MOBILE_BASE_URL"),
		Port:          os.Getenv("PORT"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	return cfg
}
