package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	web "landingpro.dev/web"
	"landingpro.dev/web/internal/catalog"
)

func TestSiteFromEmbeddedCatalog(t *testing.T) {
	t.Parallel()

	c := NewClient("", WithEmbedded(web.ContentFS()))
	site, err := c.Site(context.Background(), "pt-BR")
	require.NoError(t, err)
	require.Equal(t, "pt", site.Lang)
	require.Empty(t, site.Validate(), "bundled catalog must be consistent")

	def, ok := site.DefaultCategory()
	require.True(t, ok)
	require.Equal(t, "todos", def.ID)
	require.True(t, def.All)
	require.Len(t, site.Plans, 3)
	require.Len(t, site.FAQs, 4)

	en, err := c.Site(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "en", en.Lang)
	require.Len(t, en.Projects, len(site.Projects))
}

func TestSiteFallsBackToDefaultLang(t *testing.T) {
	t.Parallel()

	c := NewClient("", WithEmbedded(web.ContentFS()))
	site, err := c.Site(context.Background(), "fr")
	require.NoError(t, err)
	require.Equal(t, "pt", site.Lang)

	site, err = c.Site(context.Background(), "../../etc")
	require.NoError(t, err)
	require.Equal(t, "pt", site.Lang)
}

func TestSiteContentDirOverridesEmbedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site"), 0o755))
	yml := "categories:\n  - id: Todos\n    name: Tudo\n    all: true\nprojects:\n  - id: x\n    image: /assets/img/x.svg\n    category: ' TODOS '\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "pt.yaml"), []byte(yml), 0o644))

	c := NewClient("", WithContentDir(dir), WithEmbedded(web.ContentFS()))
	site, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.Equal(t, "Tudo", site.Categories[0].Name)
	require.Equal(t, "todos", site.Categories[0].ID)
	require.Equal(t, "todos", site.Projects[0].Category)

	// en is not in the directory, so the embedded copy answers.
	en, err := c.Site(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "en", en.Lang)
}

func TestSiteParseErrorStops(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"site/pt.yaml": {Data: []byte("categories: [oops")}}
	c := NewClient("", WithEmbedded(fsys))
	_, err := c.Site(context.Background(), "pt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cms: parse site/pt.yaml")
}

func TestSiteNotFound(t *testing.T) {
	t.Parallel()

	c := NewClient("", WithEmbedded(fstest.MapFS{}))
	_, err := c.Site(context.Background(), "pt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSiteRemote(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/content/site" || r.URL.Query().Get("lang") != "en" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(catalog.Site{
			Categories: []catalog.Category{{ID: "todos", Name: "Remote", All: true}},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", WithEmbedded(web.ContentFS()))
	site, err := c.Site(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "Remote", site.Categories[0].Name)
	require.Equal(t, "en", site.Lang)

	// cached
	_, err = c.Site(context.Background(), "en")
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load())

	// remote 404 falls back to local files
	pt, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.Equal(t, "Todos", pt.Categories[0].Name)
}

func TestSiteRemoteErrorFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, WithEmbedded(web.ContentFS()))
	site, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.Equal(t, "pt", site.Lang)
}

func TestCacheTTLAndInvalidate(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"site/pt.yaml": {Data: []byte("categories:\n  - id: a\n    name: A\n")}}
	c := NewClient("", WithEmbedded(fsys), WithCacheTTL(time.Hour))
	first, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)

	fsys["site/pt.yaml"] = &fstest.MapFile{Data: []byte("categories:\n  - id: b\n    name: B\n")}
	again, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.Same(t, first, again)

	c.Invalidate()
	fresh, err := c.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.Equal(t, "b", fresh.Categories[0].ID)

	uncached := NewClient("", WithEmbedded(fsys), WithCacheTTL(0))
	one, err := uncached.Site(context.Background(), "pt")
	require.NoError(t, err)
	two, err := uncached.Site(context.Background(), "pt")
	require.NoError(t, err)
	require.NotSame(t, one, two)
}
