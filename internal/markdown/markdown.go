// Package markdown renders catalog prose to sanitized HTML.
package markdown

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML safe for templates.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]template.HTML
}

// New builds a Renderer with GFM enabled and a UGC sanitizing policy.
func New() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		policy: policy,
		cache:  map[string]template.HTML{},
	}
}

// HTML renders src. Conversion failures fall back to escaped text.
func (r *Renderer) HTML(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	r.mu.RLock()
	out, ok := r.cache[src]
	r.mu.RUnlock()
	if ok {
		return out
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out = template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
	r.mu.Lock()
	r.cache[src] = out
	r.mu.Unlock()
	return out
}

// Inline renders src and strips a single wrapping paragraph, for short copy
// placed inside headings or spans.
func (r *Renderer) Inline(src string) template.HTML {
	out := strings.TrimSpace(string(r.HTML(src)))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
