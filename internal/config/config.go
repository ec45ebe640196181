// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Application identity constants.
const (
	AppName    = "Kane Portfolio API"
	AppVersion = "1.0.0"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Environment labels the deployment: development, staging, production.
	Environment string `koanf:"environment"`

	// APIKey is the shared secret expected in the x-api-key header.
	APIKey string `koanf:"api_key"`

	// AllowedOrigins lists origins for the general CORS policy.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// ContactWebhook receives contact messages when configured.
	ContactWebhook string `koanf:"contact_webhook"`

	// ContactTimeoutSeconds bounds the contact webhook POST.
	ContactTimeoutSeconds int `koanf:"contact_timeout_seconds"`

	// MCPWebhook receives forwarded MCP payloads when configured.
	MCPWebhook string `koanf:"mcp_webhook"`

	// MCPTimeoutSeconds bounds the MCP webhook POST.
	MCPTimeoutSeconds int `koanf:"mcp_timeout_seconds"`

	// RateLimitPerMinute caps requests per client address per minute window.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// DataPath optionally overrides the embedded seed document.
	DataPath string `koanf:"data_path"`

	// ContentDir holds long-form work write-ups as <slug>.md files.
	ContentDir string `koanf:"content_dir"`

	// ManifestPath points at the MCP tool manifest JSON document.
	ManifestPath string `koanf:"manifest_path"`

	// MaxWorkLimit caps GET /v1/work?limit.
	MaxWorkLimit int `koanf:"max_work_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":8080",
		Environment:           "development",
		APIKey:                "dev",
		AllowedOrigins:        []string{"https://watcharapon.dev"},
		ContactTimeoutSeconds: 10,
		MCPTimeoutSeconds:     15,
		RateLimitPerMinute:    60,
		ContentDir:            "data/content/work",
		ManifestPath:          "mcp.tools.json",
		MaxWorkLimit:          20,
	}
}
