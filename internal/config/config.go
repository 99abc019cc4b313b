package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DB DBCredentials

	// Secrets Manager secret holding the DB credential blob; when empty the
	// local credentials file (or plain env vars) is used instead.
	AWSRegion         string
	DBSecretID        string
	DBCredentialsFile string

	BaseRate       float64
	SurgeRate      float64
	SurgeThreshold float64
	AuditTrailSize int
}

// DBCredentials mirrors the JSON credential blob stored in Secrets Manager or
// the local fallback file.
type DBCredentials struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	auditTrailSize, _ := strconv.Atoi(getEnv("AUDIT_TRAIL_SIZE", "5"))

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DB: DBCredentials{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "spms"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "parking_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		AWSRegion:         getEnv("AWS_REGION", "ap-southeast-1"),
		DBSecretID:        getEnv("DB_SECRET_ID", ""),
		DBCredentialsFile: getEnv("DB_CREDENTIALS_FILE", "dbCredentials.json"),

		BaseRate:       getEnvFloat("BASE_RATE", 15.0),
		SurgeRate:      getEnvFloat("SURGE_RATE", 5.0),
		SurgeThreshold: getEnvFloat("SURGE_THRESHOLD", 0.7),
		AuditTrailSize: auditTrailSize,
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return f
}
