package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvProduction is the APP_ENV value that enables HTTPS redirects and strict CORS.
const EnvProduction = "production"

const defaultDevOrigin = "http://localhost:3000"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port           int    `envconfig:"PORT" default:"4242"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	Env            string `envconfig:"APP_ENV" default:"development"`
	Version        string `envconfig:"VERSION" default:"dev"`
	DatabaseURL    string `envconfig:"DATABASE_URL" required:"true"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`
	StaticDir      string `envconfig:"STATIC_DIR" default:"public"`
	AllowedOrigin  string `envconfig:"ALLOWED_ORIGIN" default:""`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"465"`
	SMTPUsername string `envconfig:"SMTP_USERNAME" required:"true"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" required:"true"`
	MailFrom     string `envconfig:"MAIL_FROM" default:""`
	AdminEmail   string `envconfig:"ADMIN_EMAIL" default:""`

	StripeSecretKey       string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	DonationRefresh       time.Duration `envconfig:"DONATION_REFRESH_INTERVAL" default:"5m"`
	PaymentLinkTeam       string        `envconfig:"PAYMENT_LINK_TEAM" default:"https://book.stripe.com/test_eVa03g7WHdno7V6fZ2"`
	PaymentLinkIndividual string        `envconfig:"PAYMENT_LINK_INDIVIDUAL" default:"https://book.stripe.com/test_aEUg2e3Gr6Z08Za28b"`
}

// IsProduction reports whether the service runs behind the production proxy.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads an optional .env file and then environment variables into a Config.
// Variables already present in the environment take precedence over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUsername
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUsername
	}

	if cfg.AllowedOrigin == "" {
		if cfg.IsProduction() {
			return nil, errors.New("ALLOWED_ORIGIN is required when APP_ENV=production")
		}
		cfg.AllowedOrigin = defaultDevOrigin
	}

	return &cfg, nil
}

// DatabaseConfig is the subset of Config needed by maintenance commands.
type DatabaseConfig struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
}

// LoadDatabase reads only the database settings, so maintenance commands run
// without mail or payment credentials.
func LoadDatabase() (*DatabaseConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
