package cms

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultLang     = "pt"
	defaultCacheTTL = 5 * time.Minute
)

// Client provides read-only access to the site catalog. It consults the remote
// CMS when a base URL is configured, then the local content directory, then the
// copy embedded in the binary.
type Client struct {
	baseURL     string
	http        *http.Client
	contentDir  string
	embedded    fs.FS
	defaultLang string
	logger      *zap.Logger

	cacheTTL time.Duration
	mu       sync.RWMutex
	cache    map[string]siteCacheEntry
}

// Option customises a Client.
type Option func(*Client)

// WithContentDir reads catalogs from dir before the embedded copy.
func WithContentDir(dir string) Option {
	return func(c *Client) { c.contentDir = strings.TrimSpace(dir) }
}

// WithEmbedded sets the last-resort catalog filesystem.
func WithEmbedded(fsys fs.FS) Option {
	return func(c *Client) { c.embedded = fsys }
}

// WithDefaultLang sets the language tried after the requested one.
func WithDefaultLang(lang string) Option {
	return func(c *Client) {
		if lang = normalizeLang(lang); lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithCacheTTL overrides how long loaded catalogs are reused. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.cacheTTL = d }
}

// WithHTTPClient replaces the HTTP client used for the remote CMS.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger attaches a logger for remote fallbacks and catalog problems.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient constructs a Client with the provided base URL, which may be empty.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSpace(baseURL)
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 5 * time.Second},
		defaultLang: defaultLang,
		logger:      zap.NewNop(),
		cacheTTL:    defaultCacheTTL,
		cache:       map[string]siteCacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	return lang
}
