package config

import (
	"os"
	"strconv"
)

// Config collects every environment knob the services read, so no module
// reaches for os.Getenv at computation time.
type Config struct {
	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// Infra
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	// Payroll
	FallbackBasicPay float64 // used when an employee row has no basic pay
	LeavePolicy      string  // "overlap" or "anchor"

	// Face verification
	FaceAPIURL    string
	FaceThreshold float64

	// SMTP
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

const (
	defaultFallbackBasicPay = 30000
	defaultFaceThreshold    = 0.6
)

func Load() Config {
	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		FallbackBasicPay: envFloat("PAYROLL_FALLBACK_BASIC_PAY", defaultFallbackBasicPay),
		LeavePolicy:      envOr("PAYROLL_LEAVE_POLICY", "overlap"),

		FaceAPIURL:    os.Getenv("FACE_API_URL"),
		FaceThreshold: envFloat("FACE_MATCH_THRESHOLD", defaultFaceThreshold),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: envInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: envOr("SMTP_FROM", os.Getenv("SMTP_USER")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
