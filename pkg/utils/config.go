package utils

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Broker   BrokerConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// DSN renders the keyword/value connection string pgx parses.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Name, c.User, c.Password, c.SSLMode)
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type PaymentConfig struct {
	SecretKey string
	Currency  string
}

type BrokerConfig struct {
	URL      string
	Exchange string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// TokenTTL is the fixed validity window of an issued access token.
const TokenTTL = time.Hour

func LoadConfig() (*Config, error) {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "bistro-boss")
	v.SetDefault("PORT", "5001")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "bistro")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("AMQP_EXCHANGE", "bistro_orders")
	v.SetDefault("CORS_ORIGINS", "*")

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("ACCESS_TOKEN_SECRET"),
			Expiry: TokenTTL,
		},
		Payment: PaymentConfig{
			SecretKey: v.GetString("PAYMENT_SECRET_KEY"),
			Currency:  v.GetString("PAYMENT_CURRENCY"),
		},
		Broker: BrokerConfig{
			URL:      v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
