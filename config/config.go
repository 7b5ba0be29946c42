package config

import (
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string
	APP_URL     string

	LOG_LEVEL  string
	LOG_FORMAT string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	// empty REDIS_URL keeps revoked sessions in memory
	REDIS_URL string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	STORE_CURRENCY        string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	Storage StorageConfig
)

const (
	StorageDriverS3    = "s3"
	StorageDriverLocal = "local"
)

type StorageConfig struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"local"`
	Bucket        string `env:"STORAGE_BUCKET" envDefault:"artwork"`
	LocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL"`

	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	APP_URL = strings.TrimRight(getEnv("APP_URL", "http://localhost:5173"), "/")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_FORMAT = getEnv("LOG_FORMAT", "json")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")

	REDIS_URL = getEnv("REDIS_URL", "")

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	STORE_CURRENCY = strings.ToLower(getEnv("STORE_CURRENCY", "usd"))

	// Google sign-in is optional; all three must be set to enable it.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	if err := env.Parse(&Storage); err != nil {
		log.Fatalf("Invalid storage configuration: %v", err)
	}
	if Storage.Driver == StorageDriverS3 && Storage.S3Endpoint == "" && Storage.PublicBaseURL == "" {
		log.Fatal("STORAGE_PUBLIC_BASE_URL or S3_ENDPOINT is required for the s3 storage driver")
	}
}

func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func StripeEnabled() bool {
	return STRIPE_SECRET_KEY != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
