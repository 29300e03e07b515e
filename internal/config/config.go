package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"xutix/internal/paylink"
)

// Config is read from flags first; environment variables, including those
// loaded from a .env file, override flags.
type Config struct {
	RunAddress     string        `envconfig:"RUN_ADDRESS"`
	DatabaseURI    string        `envconfig:"DATABASE_URI"`
	RedisAddress   string        `envconfig:"REDIS_ADDRESS"`
	SessionSecret  string        `envconfig:"SESSION_SECRET"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL"`
	PaymentHost    string        `envconfig:"PAYMENT_HOST"`
	PaymentHandle  string        `envconfig:"PAYMENT_HANDLE"`
	SupportPhone   string        `envconfig:"SUPPORT_PHONE"`
	IntakeInterval time.Duration `envconfig:"INTAKE_INTERVAL"`
	SeedDemoOrders bool          `envconfig:"SEED_DEMO_ORDERS"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return parse(os.Args[0], os.Args[1:])
}

func parse(name string, args []string) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "postgres URI for admin orders (in-memory when empty)")
	flags.StringVar(&cfg.RedisAddress, "r", "", "redis address for sessions and the intake queue (in-memory when empty)")
	flags.StringVar(&cfg.SessionSecret, "s", "super-secret-session-key", "session token signing key")
	flags.DurationVar(&cfg.SessionTTL, "session-ttl", 24*time.Hour, "session lifetime")
	flags.StringVar(&cfg.PaymentHost, "payment-host", paylink.DefaultHost, "payment link host")
	flags.StringVar(&cfg.PaymentHandle, "payment-handle", paylink.DefaultHandle, "payee handle")
	flags.StringVar(&cfg.SupportPhone, "support-phone", paylink.DefaultPhone, "number that receives payment proof")
	flags.DurationVar(&cfg.IntakeInterval, "intake-interval", 5*time.Second, "order intake poll interval")
	flags.BoolVar(&cfg.SeedDemoOrders, "seed-demo", true, "seed the in-memory admin store with demo orders")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret must not be empty")
	}

	return cfg, nil
}

func (c *Config) Links() paylink.Links {
	return paylink.Links{Host: c.PaymentHost, Handle: c.PaymentHandle, Phone: c.SupportPhone}
}
