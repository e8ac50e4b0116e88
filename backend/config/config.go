package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Log formats. Both are plain log lines; plain drops colours and file:line.
const (
	LogFormatText  = "text"
	LogFormatPlain = "plain"
)

type Config struct {
	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	ServerPort    string
	LogFormat     string
	CORSOrigins   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "course_catalog"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogFormat:     getEnv("LOG_FORMAT", LogFormatText),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatPlain:
	default:
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// UsePostgres reports whether entities live in postgres instead of process memory.
func (c *Config) UsePostgres() bool {
	return c.StorageDriver == DriverPostgres
}

// Colorize reports whether log output may carry ANSI colours.
func (c *Config) Colorize() bool {
	return c.LogFormat != LogFormatPlain
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
