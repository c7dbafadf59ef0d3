package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv    string
	Port       string
	JWTSecret  string
	BaseURL    string
	Database   DatabaseConfig
	AI         AIConfig
	Woo        WooConfig
	Twilio     TwilioConfig
	Resend     ResendConfig
	Klaviyo    KlaviyoConfig
	Creatomate CreatomateConfig
	Kafka      KafkaConfig
	Pricing    PricingConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Alter    bool
}

// AIConfig holds the text-completion provider configuration
type AIConfig struct {
	GeminiAPIKey string
	Model        string
}

// WooConfig holds WooCommerce store API credentials
type WooConfig struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	WebhookSecret  string
	SyncInterval   int // minutes
}

// TwilioConfig holds Twilio SMS credentials
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// ResendConfig holds Resend email credentials
type ResendConfig struct {
	APIKey    string
	FromEmail string
}

// KlaviyoConfig holds Klaviyo campaign credentials
type KlaviyoConfig struct {
	APIKey string
	ListID string
}

// CreatomateConfig holds Creatomate render credentials
type CreatomateConfig struct {
	APIKey     string
	TemplateID string
	// MaxConcurrent caps parallel render requests in bulk variation jobs
	MaxConcurrent int
}

// KafkaConfig holds the order-event broker configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// PricingConfig holds default quote pricing rates
type PricingConfig struct {
	PricePerSqft float64
	LaborRate    float64
	Markup       float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var kafkaBrokers []string
	if b := os.Getenv("KAFKA_BROKERS"); b != "" {
		for _, broker := range strings.Split(b, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				kafkaBrokers = append(kafkaBrokers, broker)
			}
		}
	}

	return &Config{
		NodeEnv:   getEnv("NODE_ENV", "development"),
		Port:      getEnv("PORT", "3001"),
		JWTSecret: jwtSecret,
		BaseURL:   getEnv("BASE_URL", "http://localhost:3001"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "wrapcommand"),
			Alter:    getEnv("DB_ALTER", "false") == "true",
		},
		AI: AIConfig{
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			Model:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Woo: WooConfig{
			StoreURL:       os.Getenv("WOO_STORE_URL"),
			ConsumerKey:    os.Getenv("WOO_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("WOO_CONSUMER_SECRET"),
			WebhookSecret:  os.Getenv("WOO_WEBHOOK_SECRET"),
			SyncInterval:   getEnvInt("WOO_SYNC_INTERVAL", 15),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		Resend: ResendConfig{
			APIKey:    os.Getenv("RESEND_API_KEY"),
			FromEmail: getEnv("RESEND_FROM_EMAIL", "quotes@wrapcommand.ai"),
		},
		Klaviyo: KlaviyoConfig{
			APIKey: os.Getenv("KLAVIYO_API_KEY"),
			ListID: os.Getenv("KLAVIYO_LIST_ID"),
		},
		Creatomate: CreatomateConfig{
			APIKey:        os.Getenv("CREATOMATE_API_KEY"),
			TemplateID:    os.Getenv("CREATOMATE_TEMPLATE_ID"),
			MaxConcurrent: getEnvInt("CREATOMATE_MAX_CONCURRENT", 4),
		},
		Kafka: KafkaConfig{
			Brokers: kafkaBrokers,
			Topic:   getEnv("KAFKA_ORDER_TOPIC", "order-events"),
		},
		Pricing: PricingConfig{
			PricePerSqft: getEnvFloat("PRICE_PER_SQFT", 8.50),
			LaborRate:    getEnvFloat("LABOR_RATE", 75),
			Markup:       getEnvFloat("PRICE_MARKUP", 1.35),
		},
	}, nil
}

// getEnv gets environment variable with default value
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
