package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DB struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"dinnerclub"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

func (c DB) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type Dinner struct {
	StartHour   int    `env:"DINNER_START_HOUR" envDefault:"18"`
	StartMinute int    `env:"DINNER_START_MINUTE" envDefault:"0"`
	Timezone    string `env:"DINNER_TIMEZONE" envDefault:"Europe/Copenhagen"`
}

func (c Dinner) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dinner timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type Kafka struct {
	Brokers     []string      `env:"KAFKA_BROKERS" envSeparator:","`
	Topic       string        `env:"KAFKA_TOPIC" envDefault:"order_history"`
	GroupID     string        `env:"KAFKA_GROUP_ID" envDefault:"order-history-consumer-group"`
	Poll        time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"2s"`
	BatchSize   int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	MaxAttempts int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"5"`
}

type Maintenance struct {
	Enabled     bool          `env:"MAINTENANCE_ENABLED" envDefault:"true"`
	Interval    time.Duration `env:"MAINTENANCE_INTERVAL" envDefault:"1h"`
	Concurrency int           `env:"MAINTENANCE_CONCURRENCY" envDefault:"4"`
}

type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"9000"`
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	DB          DB
	Dinner      Dinner
	Kafka       Kafka
	Maintenance Maintenance
}

// Load reads a .env file if one is found near the working directory and then
// parses the process environment.
func Load() (*Config, string, error) {
	path := LoadEnv()
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, path, err
	}
	return &cfg, path, nil
}

func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the file it loaded, or "" when none was found. Variables
// already set in the environment win over the file.
func LoadEnv() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			return envPath
		}
	}
	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			return examplePath
		}
	}
	return ""
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
