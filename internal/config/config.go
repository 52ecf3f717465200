package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend names accepted by CUSTOMER_BACKEND / CLIENT_BACKEND.
const (
	BackendMemory    = "memory"
	BackendSimulator = "simulator"
	BackendDynamo    = "dynamo"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppName   string
	AppPort   string
	AppEnv    string
	LogLevel  string
	LogFormat string // "text" | "json"

	CustomerBackend  string
	ClientBackend    string
	SimulatorURL     string
	SimulatorTimeout time.Duration

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	SNSRegion   string
	SNSTopicARN string // lifecycle events are only logged when empty

	AllowedOrigins  []string // CORS allowed origins
	CreateRateLimit float64  // requests/second per IP on create endpoints
	CreateRateBurst int
	// TrustProxyHeaders lets X-Forwarded-For / X-Real-Ip replace the socket
	// address. Only enable it behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// DynamoTables holds the DynamoDB table name for each resource kind.
type DynamoTables struct {
	Customers string
	Clients   string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppName:   getEnv("APP_NAME", "ConNext Bank"),
		AppPort:   getEnv("APP_PORT", "3000"),
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		CustomerBackend:  strings.ToLower(getEnv("CUSTOMER_BACKEND", BackendMemory)),
		ClientBackend:    strings.ToLower(getEnv("CLIENT_BACKEND", BackendMemory)),
		SimulatorURL:     getEnv("SIMULATOR_URL", "http://localhost:5001"),
		SimulatorTimeout: time.Duration(getEnvInt("SIMULATOR_TIMEOUT_SECONDS", 10)) * time.Second,

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Customers: getEnv("DYNAMO_TABLE_CUSTOMERS", "customers"),
			Clients:   getEnv("DYNAMO_TABLE_CLIENTS", "clients"),
		},

		SNSRegion:   getEnv("SNS_REGION", "us-east-1"),
		SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),

		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		CreateRateLimit: getEnvFloat("CREATE_RATE_LIMIT", 5),
		CreateRateBurst: getEnvInt("CREATE_RATE_BURST", 10),

		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}
}

// UsesDynamo reports whether any resource kind is backed by DynamoDB.
func (c *Config) UsesDynamo() bool {
	return c.CustomerBackend == BackendDynamo || c.ClientBackend == BackendDynamo
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
