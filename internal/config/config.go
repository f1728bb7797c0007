package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DataDir  string `env:"DATA_DIR" envDefault:"."`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// APIBaseURL is the backend that serves /v1/book-doctor, /v1/prescription-summary, etc.
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:5000"`
	ChatbotURL     string        `env:"CHATBOT_URL"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"0s"`

	ButtonResetDelay   time.Duration `env:"BUTTON_RESET_DELAY" envDefault:"1s"`
	NotificationTTL    time.Duration `env:"NOTIFICATION_TTL" envDefault:"3s"`
	EmergencyDialDelay time.Duration `env:"EMERGENCY_DIAL_DELAY" envDefault:"2s"`

	DefaultUserID   string `env:"DEFAULT_USER_ID" envDefault:"default_user"`
	EmergencyNumber string `env:"EMERGENCY_NUMBER" envDefault:"108"`

	AllowedOrigins       []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MessageRatePerMinute int      `env:"MESSAGE_RATE_PER_MINUTE" envDefault:"10"`
}

func Load() (*Config, error) {
	// .env is optional; env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"BUTTON_RESET_DELAY", c.ButtonResetDelay},
		{"NOTIFICATION_TTL", c.NotificationTTL},
		{"EMERGENCY_DIAL_DELAY", c.EmergencyDialDelay},
	} {
		if d.val <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.val)
		}
	}
	if c.GatewayTimeout < 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must not be negative")
	}
	if c.MessageRatePerMinute <= 0 {
		return fmt.Errorf("MESSAGE_RATE_PER_MINUTE must be positive")
	}
	if c.DefaultUserID == "" {
		return fmt.Errorf("DEFAULT_USER_ID must not be empty")
	}
	return nil
}
