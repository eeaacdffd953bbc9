package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:              ":8080",
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "talentnest",
		Environment:       "development",
		MaxBodyBytes:      1048576,
		OTPDigits:         8,
		SubmitGracePeriod: 3 * time.Second,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing mongo uri", func(c *Config) { c.MongoURI = "" }},
		{"missing database", func(c *Config) { c.MongoDatabase = " " }},
		{"prod without key", func(c *Config) { c.Environment = "production"; c.DataEncryptionKey = "" }},
		{"tiny body limit", func(c *Config) { c.MaxBodyBytes = 16 }},
		{"otp digits too low", func(c *Config) { c.OTPDigits = 4 }},
		{"otp digits too high", func(c *Config) { c.OTPDigits = 12 }},
		{"negative grace period", func(c *Config) { c.SubmitGracePeriod = -time.Second }},
	}

	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("OTP_DIGITS", "not-a-number")
	t.Setenv("ENSURE_SCHEMAS", "false")
	t.Setenv("GEO_TIMEOUT", "250ms")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.MongoDatabase != "talentnest" {
		t.Fatalf("expected default database, got %q", cfg.MongoDatabase)
	}
	if cfg.OTPDigits != 8 {
		t.Fatalf("expected fallback digits on bad input, got %d", cfg.OTPDigits)
	}
	if cfg.EnsureSchemas {
		t.Fatal("expected ENSURE_SCHEMAS=false to be honored")
	}
	if cfg.GeoTimeout != 250*time.Millisecond {
		t.Fatalf("expected parsed timeout, got %v", cfg.GeoTimeout)
	}
}
