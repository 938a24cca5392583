package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverLocal    = "local"
)

type Config struct {
	AppPort       string
	AppEnv        string
	StorageDriver string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	LocalStorePath string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		AppEnv:        os.Getenv("APP_ENV"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverPostgres),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),

		LocalStorePath: getEnv("LOCAL_STORE_PATH", "./data/gallery"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			log.Fatal("STORAGE_DRIVER=postgres but DB_HOST is not set")
		}
	case DriverLocal:
		// LocalStorePath always has a fallback.
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q (use %q or %q)", cfg.StorageDriver, DriverPostgres, DriverLocal)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
