package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned when SECRET_KEY is not set. The secret signs the
// add-form CSRF tokens, so the server refuses to start without it.
var ErrMissingSecret = errors.New("SECRET_KEY is required to protect form submissions")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	GoEnv          string
	GinMode        string
	Port           string
	SecretKey      string
	DBDriver       string
	DatabaseDSN    string
	AllowedOrigins []string
}

// LoadENV loads variables from .env when GO_ENV is unset or "development".
// A missing .env file is not an error.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Get builds the configuration from the environment.
func Get() (*Config, error) {
	secret := os.Getenv("SECRET_KEY")
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}

	driver := strings.ToLower(getenv("DB_DRIVER", DriverSQLite))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, errors.New("DB_DRIVER must be \"sqlite\" or \"postgres\", got " + driver)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if driver == DriverPostgres {
			dsn = "host=localhost user=postgres dbname=cafe port=5432 sslmode=disable"
		} else {
			dsn = "cafes.db"
		}
	}

	origins := []string{"http://localhost:3000"}
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		GoEnv:          os.Getenv("GO_ENV"),
		GinMode:        os.Getenv("GIN_MODE"),
		Port:           getenv("PORT", "8083"),
		SecretKey:      secret,
		DBDriver:       driver,
		DatabaseDSN:    dsn,
		AllowedOrigins: origins,
	}, nil
}

func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
