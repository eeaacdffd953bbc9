package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr               string
	MongoURI           string
	MongoDatabase      string
	DataEncryptionKey  string
	FrontendDir        string
	Environment        string
	GeoBaseURL         string
	GeoTimeout         time.Duration
	HomeCountry        string
	CORSOrigins        []string
	EnsureSchemas      bool
	MaxBodyBytes       int64
	OTPDigits          int
	SubmitGracePeriod  time.Duration
	EmployeeNumberSeed int
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DATABASE", "talentnest"),
		DataEncryptionKey:  getEnv("DATA_ENCRYPTION_KEY", ""),
		FrontendDir:        getEnv("FRONTEND_DIR", "frontend/dist"),
		Environment:        getEnv("APP_ENV", "development"),
		GeoBaseURL:         getEnv("GEO_BASE_URL", "https://countriesnow.space/api/v0.1"),
		GeoTimeout:         getEnvDuration("GEO_TIMEOUT", 5*time.Second),
		HomeCountry:        getEnv("HOME_COUNTRY", "Sri Lanka"),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		EnsureSchemas:      getEnvBool("ENSURE_SCHEMAS", true),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		OTPDigits:          getEnvInt("OTP_DIGITS", 8),
		SubmitGracePeriod:  getEnvDuration("SUBMIT_GRACE_PERIOD", 3*time.Second),
		EmployeeNumberSeed: getEnvInt("EMPLOYEE_NUMBER_SEED", 1000),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.MongoURI) == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if strings.TrimSpace(c.MongoDatabase) == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.DataEncryptionKey) == "" {
		return fmt.Errorf("DATA_ENCRYPTION_KEY must be set in production for encryption at rest")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.OTPDigits < 6 || c.OTPDigits > 10 {
		return fmt.Errorf("OTP_DIGITS must be between 6 and 10")
	}
	if c.SubmitGracePeriod < 0 {
		return fmt.Errorf("SUBMIT_GRACE_PERIOD must not be negative")
	}
	return nil
}
