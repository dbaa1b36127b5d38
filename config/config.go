package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret       string
	DefaultPassword string
	ClientUrl       string
	UploadDir       string
)

// LoadConfig reads the .env file if present and populates the configuration globals
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "acelerador")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	DefaultPassword = getEnv("DEFAULT_PASSWORD", "")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
	UploadDir = getEnv("UPLOAD_DIR", "./uploads/propostas")

	if JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
