package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config aggregates the application settings
type Config struct {
	Database DatabaseConfig
	App      AppConfig
}

// DatabaseConfig holds the backing-store connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// URL, when set, overrides the individual fields. The seed tool
	// passes its connection-string argument through here.
	URL string
}

// AppConfig holds server settings
type AppConfig struct {
	Environment string
	Port        string
}

// Load reads configuration from the environment, with a .env file as
// an optional source
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Running without a .env file is fine.
		fmt.Println("No .env file found")
	}

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "inventory"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			URL:      getEnv("DATABASE_URL", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
	}

	return config, nil
}

// GetDSN returns the connection string, preferring an explicit URL
func (c *DatabaseConfig) GetDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
