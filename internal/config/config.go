// internal/config/config.go
package config

import "time"

// Config is the process-wide configuration. It is loaded once at start and
// handed to every component; nothing reads the environment after that.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	AI      AIConfig      `mapstructure:"ai"`
	Mail    MailConfig    `mapstructure:"mail"`
	Contact ContactConfig `mapstructure:"contact"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	// ExposeErrorDetails includes transport diagnostics in 5xx bodies.
	ExposeErrorDetails bool `mapstructure:"expose_error_details"`
}

// IsDevelopment reports whether the service runs in the development environment.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// RequestTimeout bounds a whole request, including the outbound call.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AIConfig selects and configures the text generation backend.
type AIConfig struct {
	Provider string `mapstructure:"provider"` // anthropic | gemini
	Model    string `mapstructure:"model"`

	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	// BaseURL overrides the provider endpoint. Anthropic only.
	BaseURL string `mapstructure:"base_url"`
}

// APIKey returns the credential of the selected provider.
func (a AIConfig) APIKey() string {
	switch a.Provider {
	case ProviderGemini:
		return a.GeminiAPIKey
	default:
		return a.AnthropicAPIKey
	}
}

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	TransportSMTP = "smtp"
	TransportSES  = "ses"
)

type MailConfig struct {
	Transport string     `mapstructure:"transport"` // smtp | ses
	SMTP      SMTPConfig `mapstructure:"smtp"`
	SES       SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Secure   bool          `mapstructure:"secure"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type SESConfig struct {
	Region string `mapstructure:"region"`
}

// ContactConfig holds the addressing of relayed contact submissions.
type ContactConfig struct {
	To       string `mapstructure:"to"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	Site     string `mapstructure:"site"`
}
