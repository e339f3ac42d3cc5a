// internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env, an optional configs/config.yaml and the environment.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	return build(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "site-backend")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "production")
	_ = v.BindEnv("app.expose_error_details")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.request_timeout", 30*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("ai.provider", ProviderAnthropic)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.anthropic_api_key", "")
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("ai.base_url", "")

	v.SetDefault("mail.transport", TransportSMTP)
	v.SetDefault("mail.smtp.host", "")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.secure", false)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.smtp.timeout", 15*time.Second)
	v.SetDefault("mail.ses.region", "us-east-1")

	v.SetDefault("contact.to", "")
	v.SetDefault("contact.from", "")
	v.SetDefault("contact.from_name", "Cecola Development Website")
	v.SetDefault("contact.site", "cecoladevelopment.com")

	return v
}

func build(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := overrideFromEnv(&cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if !v.IsSet("app.expose_error_details") {
		cfg.App.ExposeErrorDetails = cfg.App.IsDevelopment()
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from the working directory or the project root.
func loadEnvFile() {
	possiblePaths := []string{".env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// overrideFromEnv applies the environment names used by the site's hosting
// setup. They win over the file and the nested MAIL_SMTP_* style keys.
func overrideFromEnv(cfg *Config) error {
	setString := func(dst *string, names ...string) {
		for _, name := range names {
			if val := os.Getenv(name); val != "" {
				*dst = val
				return
			}
		}
	}

	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.App.Environment, "APP_ENVIRONMENT", "NODE_ENV")

	setString(&cfg.AI.Provider, "AI_PROVIDER")
	setString(&cfg.AI.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&cfg.AI.GeminiAPIKey, "GEMINI_API_KEY")

	setString(&cfg.Mail.Transport, "MAIL_TRANSPORT")
	setString(&cfg.Mail.SMTP.Host, "SMTP_HOST")
	setString(&cfg.Mail.SMTP.Username, "SMTP_USER")
	setString(&cfg.Mail.SMTP.Password, "SMTP_PASS")
	setString(&cfg.Mail.SES.Region, "AWS_REGION")

	if val := os.Getenv("SMTP_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("SMTP_PORT must be a number: %w", err)
		}
		cfg.Mail.SMTP.Port = port
	}
	if val := os.Getenv("SMTP_SECURE"); val != "" {
		cfg.Mail.SMTP.Secure = val == "true"
	}

	setString(&cfg.Contact.To, "TIP_TO_EMAIL")
	setString(&cfg.Contact.From, "TIP_FROM_EMAIL")

	return nil
}

// applyDefaults fills values derived from other settings.
func applyDefaults(cfg *Config) {
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	cfg.Mail.Transport = strings.ToLower(strings.TrimSpace(cfg.Mail.Transport))

	// Mailbox providers reject a sender that differs from the authenticated user.
	if cfg.Contact.From == "" {
		cfg.Contact.From = cfg.Mail.SMTP.Username
	}
	if cfg.Contact.To == "" {
		cfg.Contact.To = cfg.Mail.SMTP.Username
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.AI.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderAnthropic, ProviderGemini, cfg.AI.Provider)
	}

	switch cfg.Mail.Transport {
	case TransportSMTP, TransportSES:
	default:
		return fmt.Errorf("mail.transport must be %q or %q, got %q", TransportSMTP, TransportSES, cfg.Mail.Transport)
	}

	if cfg.Mail.SMTP.Port <= 0 || cfg.Mail.SMTP.Port > 65535 {
		return fmt.Errorf("mail.smtp.port must be between 1 and 65535")
	}

	if cfg.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	return nil
}

// MailConfigured reports whether the selected transport has enough settings
// to be built. An unconfigured relay answers with SERVICE_UNAVAILABLE.
func (c *Config) MailConfigured() bool {
	if c.Contact.To == "" || c.Contact.From == "" {
		return false
	}
	switch c.Mail.Transport {
	case TransportSES:
		return c.Mail.SES.Region != ""
	default:
		return c.Mail.SMTP.Host != ""
	}
}
