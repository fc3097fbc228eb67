package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// devSecretKey solo sirve para desarrollo local; Validate avisa vía InsecureSecret.
const devSecretKey = "dev-only-secret-change-me-please-0123456789"

type (
	Config struct {
		Port      string `env:"PORT" envDefault:"8080"`
		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
		AppName   string `env:"APP_NAME" envDefault:"dogs-adoption"`

		Storage  StorageConfig
		HTTP     HTTPConfig     `envPrefix:"HTTP_"`
		Auth     AuthConfig     `envPrefix:"AUTH_"`
		Pictures PicturesConfig `envPrefix:"PICTURES_"`
	}

	StorageConfig struct {
		Driver     string `env:"STORAGE_DRIVER" envDefault:"memory"`
		DSN        string `env:"DB_DSN"`
		SQLitePath string `env:"SQLITE_PATH" envDefault:"dogs.db"`
	}

	HTTPConfig struct {
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	AuthConfig struct {
		SecretKey      string        `env:"SECRET_KEY"`
		AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
		BcryptCost     int           `env:"BCRYPT_COST" envDefault:"12"`

		// Identidad única sembrada en el store en memoria.
		Username     string `env:"USERNAME" envDefault:"johndoe"`
		FullName     string `env:"FULL_NAME" envDefault:"John Doe"`
		Email        string `env:"EMAIL" envDefault:"johndoe@example.com"`
		PasswordHash string `env:"PASSWORD_HASH" envDefault:"$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW"`
		Disabled     bool   `env:"DISABLED" envDefault:"false"`
	}

	PicturesConfig struct {
		URL      string        `env:"URL" envDefault:"https://dog.ceo/api/breeds/image/random"`
		Fallback string        `env:"FALLBACK" envDefault:"https://bit.ly/3gDmzHO"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
	}
)

// Load lee un .env opcional (si existe) y luego las variables de entorno.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		// godotenv no pisa variables ya definidas.
		_ = godotenv.Load(f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("config: DB_DSN is required for STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 14 {
		return fmt.Errorf("config: AUTH_BCRYPT_COST must be between 4 and 14, got %d", c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return errors.New("config: AUTH_ACCESS_TOKEN_TTL must be positive")
	}
	if strings.TrimSpace(c.Auth.Username) == "" {
		return errors.New("config: AUTH_USERNAME is required")
	}
	if c.Auth.SecretKey == "" {
		c.Auth.SecretKey = devSecretKey
	}
	if len(c.Auth.SecretKey) < 32 {
		return errors.New("config: AUTH_SECRET_KEY must be at least 32 characters")
	}
	return nil
}

// InsecureSecret indica que se está usando la clave de desarrollo.
func (c *Config) InsecureSecret() bool {
	return c.Auth.SecretKey == devSecretKey
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
