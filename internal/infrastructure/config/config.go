package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

// Config is the typed view of the environment.
//
// Every field has a local-friendly default so `go run ./cmd/api` works
// without any .env file (in-memory storage, gateways in mock mode).
type Config struct {
	Port string

	StorageDriver    string
	KeyPrefix        string
	CollectionsTable string
	AWSRegion        string
	DynamoDBEndpoint string
	AWSAccessKeyID   string
	AWSSecretKey     string
	DatabaseURL      string
	SQLitePath       string
	RedisAddress     string
	RedisPassword    string

	JWTSecret         string
	JWTExpiry         time.Duration
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	GoogleClientID    string
	AllowedEmails     []string
	CORSOrigins       []string

	PostalCodeBaseURL string
	FiscalAPIURL      string
	FiscalAPIKey      string
	FiscalMock        bool

	MercadoPagoAccessToken string
	PaymentMock            bool

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	SMSMock           bool

	StockAlertCron      string
	ExportArchiveBucket string
	ExportArchivePrefix string
	GCSCredentialsJSON  string
	LogLevel            string
}

func Load() Config {
	return Config{
		Port: getenvDefault("PORT", "8080"),

		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		KeyPrefix:        getenvDefault("STORAGE_KEY_PREFIX", "pauloCell_"),
		CollectionsTable: getenvDefault("COLLECTIONS_TABLE", "collections"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AWSAccessKeyID:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SQLitePath:       getenvDefault("SQLITE_PATH", "paulocell.db"),
		RedisAddress:     os.Getenv("REDIS_ADDRESS"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),

		JWTSecret:         getenvDefault("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry:         time.Duration(getenvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		AdminUsername:     getenvDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		AllowedEmails:     splitList(os.Getenv("ALLOWED_EMAILS")),
		CORSOrigins:       splitList(getenvDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		PostalCodeBaseURL: getenvDefault("POSTAL_CODE_BASE_URL", "https://viacep.com.br/ws"),
		FiscalAPIURL:      os.Getenv("FISCAL_API_URL"),
		FiscalAPIKey:      os.Getenv("FISCAL_API_KEY"),
		FiscalMock:        IsEnabled(os.Getenv("FISCAL_GATEWAY_MOCK")),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentMock:            IsEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")) || IsEnabled(os.Getenv("MERCADOPAGO_MOCK")),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		SMSMock:           IsEnabled(os.Getenv("SMS_MOCK")),

		StockAlertCron:      getenvDefault("STOCK_ALERT_CRON", "*/15 * * * *"),
		ExportArchiveBucket: os.Getenv("EXPORT_ARCHIVE_BUCKET"),
		ExportArchivePrefix: getenvDefault("EXPORT_ARCHIVE_PREFIX", "exports"),
		GCSCredentialsJSON:  os.Getenv("GCS_CREDENTIALS_JSON"),
		LogLevel:            getenvDefault("LOG_LEVEL", "info"),
	}
}

// IsEnabled reports whether a flag-like env value is switched on.
func IsEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
