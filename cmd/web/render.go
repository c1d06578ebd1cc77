package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"landingpro.dev/web/internal/i18n"
	"landingpro.dev/web/internal/icons"
	mw "landingpro.dev/web/internal/middleware"
)

// renderer owns the parsed template sets, one per file under pages/.
// Every set shares the layouts and partials.
type renderer struct {
	fsys   fs.FS
	bundle *i18n.Bundle
	dev    bool

	mu    sync.RWMutex
	pages map[string]*template.Template
}

func newRenderer(fsys fs.FS, bundle *i18n.Bundle, dev bool) (*renderer, error) {
	r := &renderer{fsys: fsys, bundle: bundle, dev: dev}
	pages, err := r.parseTemplates()
	if err != nil {
		return nil, err
	}
	r.pages = pages
	return r, nil
}

func (r *renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t":   r.bundle.T,
		"tf":  r.bundle.Tf,
		"icon": func(name any) template.HTML {
			id := icons.Named(fmt.Sprint(name))
			return template.HTML(`<svg class="icon" aria-hidden="true" focusable="false"><use href="/assets/icons.svg#` +
				template.HTMLEscapeString(string(id)) + `"></use></svg>`)
		},
		// JSON-LD documents are produced by seo.JSON from trusted catalog data.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
}

// parseTemplates recursively discovers all .tmpl files. Files under pages/
// each get their own clone of the shared set so they can all define "content".
func (r *renderer) parseTemplates() (map[string]*template.Template, error) {
	var shared, pageFiles []string
	if err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if strings.HasPrefix(p, "pages/") {
			pageFiles = append(pageFiles, p)
		} else {
			shared = append(shared, p)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pageFiles) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	root, err := template.New("_root").Funcs(r.funcMap()).ParseFS(r.fsys, shared...)
	if err != nil {
		return nil, fmt.Errorf("parse shared templates: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, p := range pageFiles {
		t, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(r.fsys, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		pages[strings.TrimSuffix(path.Base(p), ".tmpl")] = t
	}
	return pages, nil
}

func (r *renderer) lookup(page string) (*template.Template, error) {
	if r.dev {
		pages, err := r.parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("template parse error: %w", err)
		}
		r.mu.Lock()
		r.pages = pages
		r.mu.Unlock()
	}
	r.mu.RLock()
	t := r.pages[page]
	r.mu.RUnlock()
	if t == nil {
		return nil, fmt.Errorf("template %q not initialized", page)
	}
	return t, nil
}

// render executes the base layout of page. In dev mode, templates are reparsed on each request.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, status int, page string, data any) {
	r.execute(w, req, status, page, "base", data)
}

// fragment executes a single partial of page, used for htmx swaps.
func (r *renderer) fragment(w http.ResponseWriter, req *http.Request, page, name string, data any) {
	r.execute(w, req, http.StatusOK, page, name, data)
}

func (r *renderer) execute(w http.ResponseWriter, req *http.Request, status int, page, name string, data any) {
	t, err := r.lookup(page)
	if err != nil {
		mw.Logger(req.Context()).Error("template lookup", zap.String("page", page), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// buffer so a failing template never leaves a half-written 200
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		mw.Logger(req.Context()).Error("template exec", zap.String("page", page), zap.String("template", name), zap.Error(err))
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
