package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string // HTTP listen port
	DBPath    string // Path of the SQLite database file
	JWTSecret string // JWT signing secret
	RedisAddr string // Redis server address
	RedisPass string // Redis password
	RedisDB   int    // Redis database number
	IsProd    bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:   os.Getenv("APP_PORT"),          // HTTP listen port
		DBPath:    os.Getenv("DB_PATH"),           // SQLite file path
		JWTSecret: os.Getenv("JWT_SECRET"),        // JWT signing secret
		RedisAddr: os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass: os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:   redisDB,                        // Redis database number
		IsProd:    os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "3000" // Default port of the original deployment
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data/delivery.db" // Default database location
	}
	return cfg
}
