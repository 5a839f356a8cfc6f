/*
Package config loads tradedash settings from an optional YAML file, applies
defaults, then overrides from the environment (including a .env file).
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini   GeminiConfig   `yaml:"gemini"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Email    EmailConfig    `yaml:"email"`
	Wallet   WalletConfig   `yaml:"wallet"`
	Insights InsightsConfig `yaml:"insights"`
}

type GeminiConfig struct {
	APIKey            string `yaml:"api_key"`
	Model             string `yaml:"model" default:"gemini-2.5-flash" validate:"required"`
	RequestsPerMinute int    `yaml:"requests_per_minute" default:"30" validate:"gte=0"`
	Burst             int    `yaml:"burst" default:"1" validate:"gte=1"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" default:":8080" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"90s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
}

type LogConfig struct {
	Level string `yaml:"level" default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string `yaml:"file"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server" default:"smtp.gmail.com"`
	SMTPPort   int    `yaml:"smtp_port" default:"587" validate:"gte=1,lte=65535"`
	SMTPUser   string `yaml:"smtp_user"`
	SMTPPass   string `yaml:"smtp_pass"`
	FromEmail  string `yaml:"from_email" validate:"omitempty,email"`
	ToEmail    string `yaml:"to_email" validate:"omitempty,email"`
}

// Enabled reports whether enough is set to send mail.
func (e EmailConfig) Enabled() bool {
	return e.SMTPServer != "" && e.SMTPUser != "" && e.SMTPPass != "" && e.ToEmail != ""
}

// Sender is the From address, falling back to the SMTP user.
func (e EmailConfig) Sender() string {
	if e.FromEmail != "" {
		return e.FromEmail
	}
	return e.SMTPUser
}

type WalletConfig struct {
	StartingCash float64 `yaml:"starting_cash" default:"100000" validate:"gt=0"`
}

type InsightsConfig struct {
	HistoricalPriceData string        `yaml:"historical_price_data" default:"Recent price action shows [trend]." validate:"required"`
	Concurrency         int           `yaml:"concurrency" default:"4" validate:"gte=1"`
	Timeout             time.Duration `yaml:"timeout" default:"60s"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SMTP_SERVER"); v != "" {
		c.Email.SMTPServer = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SMTP_PORT: %w", err)
		}
		c.Email.SMTPPort = port
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.Email.SMTPUser = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.Email.SMTPPass = v
	}
	if v := os.Getenv("TO_EMAIL"); v != "" {
		c.Email.ToEmail = v
	}
	return nil
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}
