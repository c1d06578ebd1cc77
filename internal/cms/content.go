package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"landingpro.dev/web/internal/catalog"
)

type siteCacheEntry struct {
	site    *catalog.Site
	expires time.Time
}

// Site returns the catalog for lang. Callers must treat the result as read-only.
func (c *Client) Site(ctx context.Context, lang string) (*catalog.Site, error) {
	lang = normalizeLang(lang)
	if lang == "" {
		lang = c.defaultLang
	}
	if site, ok := c.cached(lang); ok {
		return site, nil
	}
	site, err := c.fetchSite(ctx, lang)
	if err != nil {
		return nil, err
	}
	for _, p := range site.Validate() {
		c.logger.Warn("catalog problem",
			zap.String("lang", site.Lang),
			zap.String("kind", p.Kind),
			zap.String("id", p.ID),
			zap.String("ref", p.Ref),
		)
	}
	c.store(lang, site)
	return site, nil
}

// Invalidate drops cached catalogs so the next Site call reloads them.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cache = map[string]siteCacheEntry{}
	c.mu.Unlock()
}

func (c *Client) fetchSite(ctx context.Context, lang string) (*catalog.Site, error) {
	if c.baseURL != "" {
		site, err := c.fetchSiteRemote(ctx, lang)
		if err == nil {
			return site, nil
		}
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("cms remote fetch failed, using local catalog",
				zap.String("lang", lang),
				zap.Error(err),
			)
		}
	}
	return c.fallbackSite(lang)
}

func (c *Client) fetchSiteRemote(ctx context.Context, lang string) (*catalog.Site, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", "site")
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("lang", lang)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("cms: site remote status %d", resp.StatusCode)
	}
	var site catalog.Site
	if err := json.NewDecoder(resp.Body).Decode(&site); err != nil {
		return nil, fmt.Errorf("cms: decode site: %w", err)
	}
	if len(site.Categories) == 0 {
		return nil, fmt.Errorf("cms: remote site for %s has no categories", lang)
	}
	if site.Lang == "" {
		site.Lang = lang
	}
	return &site, nil
}

// fallbackSite tries the requested language, then the default one, then "en",
// first in the content directory and then in the embedded copy.
func (c *Client) fallbackSite(lang string) (*catalog.Site, error) {
	priority := []string{lang}
	if lang != c.defaultLang {
		priority = append(priority, c.defaultLang)
	}
	if lang != "en" && c.defaultLang != "en" {
		priority = append(priority, "en")
	}
	var sources []fs.FS
	if c.contentDir != "" {
		sources = append(sources, os.DirFS(c.contentDir))
	}
	if c.embedded != nil {
		sources = append(sources, c.embedded)
	}
	for _, candidate := range priority {
		for _, src := range sources {
			site, err := readSiteYAML(src, candidate)
			if err == nil {
				return site, nil
			}
			if errors.Is(err, ErrNotFound) {
				continue
			}
			// parse errors stop early so broken files are noticed
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func readSiteYAML(fsys fs.FS, lang string) (*catalog.Site, error) {
	if lang == "" || strings.ContainsAny(lang, `/\.`) {
		return nil, ErrNotFound
	}
	file := path.Join("site", lang+".yaml")
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var site catalog.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("cms: parse %s: %w", file, err)
	}
	if site.Lang == "" {
		site.Lang = lang
	}
	trimSite(&site)
	return &site, nil
}

func trimSite(site *catalog.Site) {
	for i := range site.Categories {
		site.Categories[i].ID = strings.ToLower(strings.TrimSpace(site.Categories[i].ID))
	}
	for i := range site.Projects {
		p := &site.Projects[i]
		p.ID = strings.TrimSpace(p.ID)
		p.Category = strings.ToLower(strings.TrimSpace(p.Category))
		p.Image = strings.TrimSpace(p.Image)
		p.DemoURL = strings.TrimSpace(p.DemoURL)
	}
}

func (c *Client) cached(lang string) (*catalog.Site, bool) {
	if c.cacheTTL <= 0 {
		return nil, false
	}
	now := time.Now()
	c.mu.RLock()
	entry, ok := c.cache[lang]
	c.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return nil, false
	}
	return entry.site, true
}

func (c *Client) store(lang string, site *catalog.Site) {
	if c.cacheTTL <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[lang] = siteCacheEntry{
		site:    site,
		expires: time.Now().Add(c.cacheTTL),
	}
}
