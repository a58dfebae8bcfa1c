package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BASE_URL", "")
	t.Setenv("MOBILE_BASE_URL", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.MobileBaseURL != "" {
		t.Errorf("MobileBaseURL = %q, want empty", cfg.MobileBaseURL)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "https://qr.example.com")
	t.Setenv("MOBILE_BASE_URL", "https://m.qr.example.com")
	t.Setenv("PORT", "9000")

	cfg := Load()
	if cfg.BaseURL != "https://qr.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.MobileBaseURL != "https://m.qr.example.com" {
		t.Errorf("MobileBaseURL = %q", cfg.MobileBaseURL)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
}
