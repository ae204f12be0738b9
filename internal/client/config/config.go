// Package config loads runtime settings for the wecare CLI.
//
// Sources are layered: defaults, then a JSON file (path given via -c/-config),
// then command-line flags, then environment variables for secrets. Later
// sources take precedence over earlier ones. The merged result is validated
// before use.
package config

import "time"

// Config holds runtime settings for the wecare client.
type Config struct {
	// APIBaseURL is the provider's metadata API base.
	APIBaseURL string `validate:"required,url"`

	// UploadBaseURL is the provider's multipart upload base.
	UploadBaseURL string `validate:"required,url"`

	// TokenURL is the OAuth token endpoint for refresh grants.
	TokenURL string `validate:"required,url"`

	// AccountInfoURL is the endpoint used to validate the held token.
	AccountInfoURL string `validate:"required,url"`

	// RootFolderName is the dedicated root folder on the provider.
	RootFolderName string `validate:"required"`

	// MaxUploadSize is the client-side upload ceiling in bytes.
	MaxUploadSize int64 `validate:"gt=0"`

	// HTTPTimeout bounds each provider call made by the CLI's HTTP client.
	// The core itself defines no timeouts; this is caller policy.
	HTTPTimeout time.Duration `validate:"gte=0"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `validate:"oneof=debug info warn error"`

	// ClientID and ClientSecret identify this client to the OAuth token
	// endpoint. Normally supplied via environment.
	ClientID     string
	ClientSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://www.googleapis.com/drive/v3"
	c.UploadBaseURL = "https://www.googleapis.com/upload/drive/v3"
	c.TokenURL = "https://oauth2.googleapis.com/token"
	c.AccountInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	c.RootFolderName = "wecare"
	c.MaxUploadSize = 100 << 20
	c.HTTPTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and the environment. Later sources
// take precedence over earlier ones. The merged config is validated; an
// invalid config is returned together with the validation error.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
