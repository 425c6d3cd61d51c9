package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Execution deadlines for ledger operations: reads are shorter than the
	// transactional write, per the resource model.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// SeedChart controls whether the standard chart of accounts is seeded
	// at startup (idempotent either way).
	SeedChart bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("READ_TIMEOUT", "8s")
	viper.SetDefault("WRITE_TIMEOUT", "10s")
	viper.SetDefault("SEED_CHART", true)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SeedChart = viper.GetBool("SEED_CHART")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	readTimeout, err := time.ParseDuration(viper.GetString("READ_TIMEOUT"))
	if err != nil {
		readTimeout = 8 * time.Second
		log.Printf("Warning: invalid READ_TIMEOUT, defaulting to %s\n", readTimeout)
	}
	cfg.ReadTimeout = readTimeout

	writeTimeout, err := time.ParseDuration(viper.GetString("WRITE_TIMEOUT"))
	if err != nil {
		writeTimeout = 10 * time.Second
		log.Printf("Warning: invalid WRITE_TIMEOUT, defaulting to %s\n", writeTimeout)
	}
	cfg.WriteTimeout = writeTimeout

	return cfg, nil
}
