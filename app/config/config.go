package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// AdminConfig holds the single privileged principal's credentials.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret []byte
	Expiry time.Duration
}

type Config struct {
	DB       *sql.DB
	Admin    AdminConfig
	JWT      JWTConfig
	Currency string
	Port     string
}

var AppConfig *Config

// Load reads the environment, connects to Postgres and builds the process
// configuration. Admin credentials and the JWT secret are loaded once here
// and handed to the auth package explicitly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret: []byte(getEnv("JWT_SECRET", "")),
			Expiry: parseExpiry(getEnv("JWT_EXPIRES_IN", "24h")),
		},
		Currency: getEnv("CURRENCY", "PKR"),
		Port:     getEnv("PORT", "8080"),
	}

	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set")
	}
	if len(cfg.JWT.Secret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}

	cfg.DB = initDB()
	AppConfig = cfg
	return cfg
}

func initDB() *sql.DB {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "college_payments"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	log.Println("Database connected successfully")
	return db
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseExpiry(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRES_IN %q, defaulting to 24h", raw)
		return 24 * time.Hour
	}
	return d
}
