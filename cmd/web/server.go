package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	web "landingpro.dev/web"
	"landingpro.dev/web/internal/cms"
	"landingpro.dev/web/internal/config"
	"landingpro.dev/web/internal/handlers"
	"landingpro.dev/web/internal/i18n"
	"landingpro.dev/web/internal/markdown"
	mw "landingpro.dev/web/internal/middleware"
	"landingpro.dev/web/internal/portfolio"
)

// server wires the page handlers to their dependencies.
type server struct {
	cfg     config.Config
	logger  *zap.Logger
	bundle  *i18n.Bundle
	content *cms.Client
	builder *handlers.Builder
	views   *renderer
	public  fs.FS
}

// dirOr returns dir as a filesystem, or embedded when dir is empty.
func dirOr(dir string, embedded fs.FS) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}

func newServer(cfg config.Config, logger *zap.Logger) (*server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.Load(dirOr(cfg.LocalesDir, web.LocalesFS()), cfg.Locale.Default, cfg.Locale.Supported)
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}
	views, err := newRenderer(dirOr(cfg.TemplatesDir, web.TemplatesFS()), bundle, cfg.Dev)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	public := dirOr(cfg.PublicDir, web.PublicFS())

	content := cms.NewClient(cfg.CMS.BaseURL,
		cms.WithContentDir(cfg.ContentDir),
		cms.WithEmbedded(web.ContentFS()),
		cms.WithDefaultLang(cfg.Locale.Default),
		cms.WithCacheTTL(cfg.CMS.CacheTTL),
		cms.WithHTTPClient(&http.Client{Timeout: cfg.CMS.Timeout}),
		cms.WithLogger(logger.Named("cms")),
	)

	builder := &handlers.Builder{
		Markdown:       markdown.New(),
		WhatsAppHost:   cfg.Contact.WhatsAppHost,
		WhatsAppNumber: cfg.Contact.WhatsAppNumber,
		PageSize:       cfg.Gallery.PageSize,
		SiteURL:        cfg.SiteURL,
		Locales:        bundle.Supported(),
		Analytics:      handlers.AnalyticsFromConfig(cfg.Analytics),
		GalleryOptions: portfolio.Options{
			Placeholder: portfolio.PlaceholderPatterns(cfg.Gallery.PlaceholderPatterns...),
			Images:      portfolio.AssetImages(public),
			Prefetch:    cfg.Gallery.Prefetch,
		},
	}

	return &server{
		cfg:     cfg,
		logger:  logger,
		bundle:  bundle,
		content: content,
		builder: builder,
		views:   views,
		public:  public,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if assets, err := fs.Sub(s.public, "assets"); err == nil {
		r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assets)))
	}

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(mw.Session)
		r.Use(mw.Locale(s.bundle))
		r.Use(mw.Theme)
		r.Use(mw.CSRF)
		r.Use(mw.VaryLocale)

		r.Get("/", s.homeHandler)
		r.Get(handlers.PortfolioPath, s.portfolioHandler)
		r.Get(handlers.FAQPath, s.faqHandler)
		r.Get(handlers.ContactPath, s.contactHandler)
		r.Get("/preferences/theme", s.themeGetHandler)
		r.Post("/preferences/theme", s.themePostHandler)
		r.NotFound(s.notFoundHandler)
	})
	return r
}
