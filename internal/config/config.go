package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration for the web process.
// Empty directory settings select the copies embedded in the binary.
type Config struct {
	Port string `env:"LANDING_WEB_PORT"`
	// PORT is set by Cloud Run and most PaaS hosts.
	PlatformPort string `env:"PORT" envDefault:"8080"`
	Addr         string `env:"LANDING_WEB_ADDR"`
	Env          string `env:"LANDING_WEB_ENV" envDefault:"local"`
	Dev          bool   `env:"LANDING_WEB_DEV"`
	LogLevel     string `env:"LANDING_WEB_LOG_LEVEL" envDefault:"info"`
	SiteURL      string `env:"LANDING_WEB_SITE_URL"`

	TemplatesDir string `env:"LANDING_WEB_TEMPLATES"`
	PublicDir    string `env:"LANDING_WEB_PUBLIC"`
	ContentDir   string `env:"LANDING_WEB_CONTENT"`
	LocalesDir   string `env:"LANDING_WEB_LOCALES"`

	CMS       CMSConfig
	Session   SessionConfig
	Locale    LocaleConfig
	Contact   ContactConfig
	Gallery   GalleryConfig
	Analytics AnalyticsConfig
}

// CMSConfig points at an optional remote catalog source.
type CMSConfig struct {
	BaseURL  string        `env:"LANDING_WEB_CMS_URL"`
	CacheTTL time.Duration `env:"LANDING_WEB_CONTENT_CACHE_TTL" envDefault:"5m"`
	Timeout  time.Duration `env:"LANDING_WEB_CMS_TIMEOUT" envDefault:"5s"`
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	SigningKey string `env:"LANDING_WEB_SESSION_SIGNING_KEY"`
}

// LocaleConfig lists the languages served.
type LocaleConfig struct {
	Default   string   `env:"LANDING_WEB_DEFAULT_LOCALE" envDefault:"pt"`
	Supported []string `env:"LANDING_WEB_LOCALES_SUPPORTED" envSeparator:"," envDefault:"pt,en"`
}

// ContactConfig configures outbound WhatsApp links.
type ContactConfig struct {
	WhatsAppHost   string `env:"LANDING_WEB_WHATSAPP_HOST" envDefault:"wa.me"`
	WhatsAppNumber string `env:"LANDING_WEB_WHATSAPP_NUMBER" envDefault:"5519989357148"`
}

// GalleryConfig tunes the portfolio grid.
type GalleryConfig struct {
	PageSize            int      `env:"LANDING_WEB_PAGE_SIZE" envDefault:"6"`
	Prefetch            int      `env:"LANDING_WEB_PREFETCH" envDefault:"3"`
	PlaceholderPatterns []string `env:"LANDING_WEB_PLACEHOLDER_PATTERNS" envSeparator:"," envDefault:"unsplash.com"`
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string `env:"LANDING_WEB_GA_MEASUREMENT_ID"`
	GTMContainerID   string `env:"LANDING_WEB_GTM_CONTAINER_ID"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr resolves the HTTP listen address: explicit address first, then
// LANDING_WEB_PORT, then PORT.
func (c Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	if p := strings.TrimSpace(c.Port); p != "" {
		return ":" + p
	}
	return ":" + strings.TrimSpace(c.PlatformPort)
}

// IsProd reports whether cookies should be marked secure and debug helpers disabled.
func (c Config) IsProd() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "prod", "production":
		return true
	}
	return false
}

// ValidationError lists invalid configuration fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.Fields, ", "))
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	var bad []string
	if c.Gallery.PageSize <= 0 {
		bad = append(bad, "LANDING_WEB_PAGE_SIZE")
	}
	if c.Gallery.Prefetch < 0 {
		bad = append(bad, "LANDING_WEB_PREFETCH")
	}
	if strings.TrimSpace(c.Locale.Default) == "" {
		bad = append(bad, "LANDING_WEB_DEFAULT_LOCALE")
	}
	if c.IsProd() && len(c.Session.SigningKey) < 32 {
		bad = append(bad, "LANDING_WEB_SESSION_SIGNING_KEY")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}
