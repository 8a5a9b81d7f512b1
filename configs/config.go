package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether enough of the bucket settings are present to talk to R2.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != "" && r.PublicURL != ""
}

type Postgres struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Webhooks struct {
	ApproveURL    string
	CreatePostURL string
	Timeout       time.Duration
}

type Config struct {
	Port              string
	Environment       string
	LoginUsername     string
	LoginPassword     string
	SessionSecret     string
	SessionMode       string
	Postgres          Postgres
	Webhooks          Webhooks
	R2                R2
	AllowedOrigins    string
	PoolStatsSchedule string
	DashboardURL      string
}

const (
	SessionModeSecret = "secret"
	SessionModeSigned = "signed"
)

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("APP_ENV", "development"),
		LoginUsername: getEnv("LOGIN_USERNAME", ""),
		LoginPassword: getEnv("LOGIN_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionMode:   strings.ToLower(getEnv("SESSION_MODE", SessionModeSecret)),
		Postgres: Postgres{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			User:            getEnv("POSTGRES_USER", ""),
			Password:        getEnv("POSTGRES_PASSWORD", ""),
			Database:        getEnv("POSTGRES_DB", ""),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("POSTGRES_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Webhooks: Webhooks{
			ApproveURL:    getEnv("APPROVE_WEBHOOK_URL", "https://n8n.indicrm.io/webhook/approve-post"),
			CreatePostURL: getEnv("CREATE_POST_WEBHOOK_URL", "https://n8n.indicrm.io/webhook/social-media-post-create"),
			Timeout:       getEnvDuration("WEBHOOK_TIMEOUT", 30*time.Second),
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		AllowedOrigins:    getEnv("ALLOWED_ORIGINS", ""),
		PoolStatsSchedule: getEnv("POOL_STATS_SCHEDULE", "@every 00h10m00s"),
		DashboardURL:      getEnv("DASHBOARD_URL", "http://localhost:3000"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoginConfigured is false when any of the values the login check needs is unset.
func (c *Config) LoginConfigured() bool {
	return c.LoginUsername != "" && c.LoginPassword != "" && c.SessionSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
