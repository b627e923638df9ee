package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Defaults applied when the matching variable is unset.
const (
	DefaultAddr            = "127.0.0.1:3030"
	DefaultStaticDir       = "public"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	Addr            string
	StaticDir       string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load charge la configuration depuis .env et l'environnement, puis la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            getEnvOrDefault("WBOOKS_ADDR", DefaultAddr),
		StaticDir:       getEnvOrDefault("WBOOKS_STATIC_DIR", DefaultStaticDir),
		LogLevel:        getEnvOrDefault("WBOOKS_LOG_LEVEL", DefaultLogLevel),
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if raw := strings.TrimSpace(os.Getenv("WBOOKS_SHUTDOWN_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: WBOOKS_SHUTDOWN_TIMEOUT invalide (%q): %w", raw, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les règles sur la configuration chargée.
func (c *Config) validate() error {
	_, port, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return fmt.Errorf("config: WBOOKS_ADDR invalide (%q): %w", c.Addr, err)
	}
	if port == "" {
		return fmt.Errorf("config: WBOOKS_ADDR invalide (%q): port manquant", c.Addr)
	}

	if strings.TrimSpace(c.StaticDir) == "" {
		return fmt.Errorf("config: WBOOKS_STATIC_DIR ne peut pas être vide")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: WBOOKS_LOG_LEVEL invalide (%q): %w", c.LogLevel, err)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: WBOOKS_SHUTDOWN_TIMEOUT doit être positif (%s)", c.ShutdownTimeout)
	}

	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
