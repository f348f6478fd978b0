package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DataSourceCSV      = "csv"
	DataSourceDynamoDB = "dynamodb"
)

// Config holds application configuration.
type Config struct {
	Port           int
	LogLevel       string
	DataSource     string
	DataDir        string
	TablePrefix    string
	MetricsEnabled bool

	AWS AWSConfig
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenvInt("PORT", 8080),
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		DataSource:     normalizeDataSource(getenv("DATA_SOURCE", DataSourceCSV)),
		DataDir:        getenv("DATA_DIR", "./data"),
		TablePrefix:    getenv("DYNAMODB_TABLE_PREFIX", "sales_"),
		MetricsEnabled: getenvBool("METRICS_ENABLED", true),
		AWS: AWSConfig{
			Region:           getenv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenv("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		},
	}
}

func normalizeDataSource(raw string) string {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case DataSourceDynamoDB:
		return v
	default:
		return DataSourceCSV
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
