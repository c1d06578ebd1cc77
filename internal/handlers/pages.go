package handlers

import (
	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/seo"
)

// PageData is a generic view model for simple pages using the shared layout.
type PageData struct {
	Layout

	Title   string
	Message string
}

// NotFound builds the 404 page. Title and message are i18n keys.
func (b *Builder) NotFound(req Request) PageData {
	if req.Site == nil {
		req.Site = &catalog.Site{}
	}
	req.State = b.InitialState(req.Site)
	layout := b.layout(req)
	layout.SEO = seo.Meta{Title: layout.Brand.Name, Robots: "noindex"}
	return PageData{
		Layout:  layout,
		Title:   "error.not_found",
		Message: "error.back_home",
	}
}
