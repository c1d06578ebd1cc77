package handlers

import (
	"net/url"
	"strings"

	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/contact"
	"landingpro.dev/web/internal/markdown"
	"landingpro.dev/web/internal/pagestate"
	"landingpro.dev/web/internal/portfolio"
)

// Fragment routes served to htmx.
const (
	PortfolioPath = "/portfolio"
	FAQPath       = "/faq"
	ContactPath   = "/contact"
)

// Builder turns a catalog and a page state into view models.
type Builder struct {
	Markdown       *markdown.Renderer
	WhatsAppHost   string
	WhatsAppNumber string
	GalleryOptions portfolio.Options
	PageSize       int
	SiteURL        string
	Locales        []string
	Analytics      Analytics
}

// Request is the per-request input of every view model.
type Request struct {
	Lang      string
	Site      *catalog.Site
	State     pagestate.State
	Dark      bool
	CSRFToken string
}

// InitialState is the state of a bare "/" for site.
func (b *Builder) InitialState(site *catalog.Site) pagestate.State {
	def := ""
	if site != nil {
		if c, ok := site.DefaultCategory(); ok {
			def = c.ID
		}
	}
	return pagestate.NewWithPageSize(def, b.PageSize)
}

// ParseState reads the page state from a query string.
func (b *Builder) ParseState(site *catalog.Site, q url.Values) pagestate.State {
	return pagestate.Parse(q, b.InitialState(site))
}

// Linker builds WhatsApp links with the site's localized messages.
func (b *Builder) Linker(site *catalog.Site) contact.Linker {
	var msgs catalog.Contact
	if site != nil {
		msgs = site.Contact
	}
	return contact.NewLinker(b.WhatsAppHost, b.WhatsAppNumber, msgs.InquiryMessage, msgs.PlanMessage)
}

var defaultMarkdown = markdown.New()

func (b *Builder) markdown() *markdown.Renderer {
	if b.Markdown == nil {
		return defaultMarkdown
	}
	return b.Markdown
}

func (b *Builder) siteURL(path string) string {
	base := strings.TrimRight(strings.TrimSpace(b.SiteURL), "/")
	if base == "" {
		return ""
	}
	return base + path
}
