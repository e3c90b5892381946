package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is built once at startup and injected everywhere; nothing else in
// the codebase reads the environment directly.
type Config struct {
	Env  string
	Port string

	JWTSecret string
	TokenTTL  time.Duration

	OTPExpireMinutes int

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	AllowOrigins string

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Load collects all configuration from the environment. A missing or weak
// JWT secret is a startup failure, never a per-request condition.
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("APP_PORT", "8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         time.Duration(getEnvInt("JWT_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		OTPExpireMinutes: getEnvInt("OTP_EXPIRE_MINUTES", 10),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "employee_management"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		AllowOrigins:     getEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		AdminName:        getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET must be at least 32 characters; generate one with: openssl rand -base64 32")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
