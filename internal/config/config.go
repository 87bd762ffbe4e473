package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Attendance AttendanceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string

	// Seed loads the sample directory (departments, employees, memos,
	// tasks) into the store at startup.
	Seed bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AttendanceConfig holds clock rules.
type AttendanceConfig struct {
	// LateCutoff is the last on-time clock-in, HH:MM. Clocking in after it
	// marks the day late.
	LateCutoff string
}

func Load() (*Config, error) {
	// Absent .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("APP_SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_SEED: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Seed:        seed,
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Attendance = AttendanceConfig{
		LateCutoff: getEnv("ATTENDANCE_LATE_CUTOFF", "08:30"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}

	if _, valid := validator.IsValidClockTime(c.Attendance.LateCutoff); !valid {
		return fmt.Errorf("ATTENDANCE_LATE_CUTOFF must be in HH:MM format, got %q", c.Attendance.LateCutoff)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
