package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"transfers"`
	Password string `env:"DB_PASSWORD" envDefault:"transfers"`
	DBName   string `env:"DB_NAME" envDefault:"transfer_market"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type AuthConfig struct {
	Issuer          string        `env:"AUTH_ISSUER" envDefault:"transfer-market"`
	AccessSecret    string        `env:"AUTH_ACCESS_SECRET" envDefault:"access-secret"`
	AccessLifetime  time.Duration `env:"AUTH_ACCESS_LIFETIME" envDefault:"15m"`
	RefreshSecret   string        `env:"AUTH_REFRESH_SECRET" envDefault:"refresh-secret"`
	RefreshLifetime time.Duration `env:"AUTH_REFRESH_LIFETIME" envDefault:"168h"`
	BcryptCost      int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

type LogConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Level string `env:"LOG_LEVEL" envDefault:""`
}

// DSN собирает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
