package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Pricing Pricing `validate:"required"`

	Payment Payment `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID       string   `validate:"required"`
	Brokers       []string `validate:"required,min=1,dive,hostname_port"`
	PaymentsTopic string   `validate:"required"`
	PaidTopic     string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Pricing holds the rate tables as "threshold:value" pair lists. Simplified
// zeroes every rate, turning the same engine into the no-discount variant.
type Pricing struct {
	TierTable      string  `validate:"required"`
	ShippingTable  string  `validate:"required"`
	SubscriberRate float64 `validate:"gte=0,lt=1"`
	TaxRate        float64 `validate:"gte=0,lt=1"`
	Tolerance      float64 `validate:"gte=0,lt=1"`
	Simplified     bool
}

type Payment struct {
	VerifyURL string        `validate:"required,url"`
	APIKey    string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:       env("KAFKA_GROUP_ID", "order-service"),
			PaymentsTopic: env("KAFKA_PAYMENTS_TOPIC", "payment-events"),
			PaidTopic:     env("KAFKA_PAID_TOPIC", "order-paid"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Pricing: Pricing{
			TierTable:      env("PRICING_TIER_TABLE", "50:0.15,20:0.10,10:0.05"),
			ShippingTable:  env("PRICING_SHIPPING_TABLE", "100000:0,0:1500"),
			SubscriberRate: envFloat("PRICING_SUBSCRIBER_RATE", 0.10),
			TaxRate:        envFloat("PRICING_TAX_RATE", 0.08),
			Tolerance:      envFloat("PRICING_TOLERANCE", 0.01),
			Simplified:     envBool("PRICING_SIMPLIFIED", false),
		},

		Payment: Payment{
			VerifyURL: env("PAYMENT_VERIFY_URL", "http://localhost:4242/v1/intents"),
			APIKey:    env("PAYMENT_API_KEY", ""),
			Timeout:   envDuration("PAYMENT_VERIFY_TIMEOUT", 5*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
