package main

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/handlers"
	mw "landingpro.dev/web/internal/middleware"
)

// pageRequest loads the catalog for the request language and parses the page state.
func (s *server) pageRequest(w http.ResponseWriter, r *http.Request) (handlers.Request, bool) {
	lang := mw.Lang(r)
	site, err := s.content.Site(r.Context(), lang)
	if err != nil {
		mw.Logger(r.Context()).Error("load site", zap.String("lang", lang), zap.Error(err))
		http.Error(w, "content unavailable", http.StatusInternalServerError)
		return handlers.Request{}, false
	}
	return handlers.Request{
		Lang:      lang,
		Site:      site,
		State:     s.builder.ParseState(site, r.URL.Query()),
		Dark:      mw.DarkMode(r.Context()),
		CSRFToken: mw.CSRFToken(r),
	}, true
}

// homeHandler renders the landing page for the state in the query string.
func (s *server) homeHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.pageRequest(w, r)
	if !ok {
		return
	}
	s.views.render(w, r, http.StatusOK, "home", s.builder.Home(req))
}

// portfolioHandler swaps the gallery for htmx; plain requests land on the full page.
func (s *server) portfolioHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.pageRequest(w, r)
	if !ok {
		return
	}
	state := req.State.CloseMenu()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, state.Href("/", "portfolio"), http.StatusSeeOther)
		return
	}
	mw.PushURL(w, state.Href("/", ""))
	s.views.fragment(w, r, "home", "gallery", s.builder.Gallery(req))
}

// faqHandler swaps the accordion for htmx; plain requests land on the full page.
func (s *server) faqHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.pageRequest(w, r)
	if !ok {
		return
	}
	state := req.State.CloseMenu()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, state.Href("/", "faq"), http.StatusSeeOther)
		return
	}
	mw.PushURL(w, state.Href("/", ""))
	s.views.fragment(w, r, "home", "faq", s.builder.FAQ(req))
}

// contactHandler redirects to the WhatsApp chat, naming the plan when it exists.
func (s *server) contactHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	site, err := s.content.Site(r.Context(), lang)
	if err != nil {
		mw.Logger(r.Context()).Warn("load site for contact", zap.Error(err))
		site = &catalog.Site{}
	}
	linker := s.builder.Linker(site)
	target := linker.Inquiry()
	if name := strings.TrimSpace(r.URL.Query().Get("plan")); name != "" {
		if plan, ok := site.PlanByName(name); ok {
			target = linker.ForPlan(plan.Name)
		}
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// themeGetHandler reports the stored preference as a JSON boolean.
func (s *server) themeGetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	mw.WriteJSON(w, http.StatusOK, mw.DarkMode(r.Context()))
}

// themePostHandler sets the preference from dark=true|false, or toggles it.
func (s *server) themePostHandler(w http.ResponseWriter, r *http.Request) {
	dark, ok := mw.ParseDarkMode(r.PostFormValue("dark"))
	if !ok {
		dark = !mw.DarkMode(r.Context())
	}
	mw.WriteDarkMode(w, dark)
	mw.Logger(r.Context()).Debug("theme updated", zap.Bool("dark", dark))

	if mw.IsHTMX(r.Context()) {
		mw.Refresh(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturn keeps redirects on this site.
func safeReturn(target string) string {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func (s *server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	site, err := s.content.Site(r.Context(), lang)
	if err != nil {
		site = nil
	}
	page := s.builder.NotFound(handlers.Request{
		Lang:      lang,
		Site:      site,
		Dark:      mw.DarkMode(r.Context()),
		CSRFToken: mw.CSRFToken(r),
	})
	s.views.render(w, r, http.StatusNotFound, "notfound", page)
}
