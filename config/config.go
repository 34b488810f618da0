package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	OpenAIAPIKey      string
	FineTunedModelID  string
	RequestTimeoutSec int
	MaxRetries        int
	Temperature       float64
	MaxOutputTokens   int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "triage")
	ServerPort = getEnv("SERVER_PORT", "8080")

	OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	FineTunedModelID = getEnv("FINE_TUNED_MODEL_ID", "")
	if FineTunedModelID == "" {
		log.Fatal("FINE_TUNED_MODEL_ID is required: run the fine-tuning pipeline and set the resulting model id")
	}

	RequestTimeoutSec = getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)
	MaxRetries = getEnvInt("MAX_RETRIES", 3)
	Temperature = getEnvFloat("TEMPERATURE", 0.3)
	MaxOutputTokens = getEnvInt("MAX_OUTPUT_TOKENS", 500)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using default %g", key, fallback)
	}
	return fallback
}
