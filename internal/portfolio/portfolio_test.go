package portfolio

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/pagestate"
)

func testSite() *catalog.Site {
	site := &catalog.Site{
		Categories: []catalog.Category{
			{ID: "todos", Name: "Todos", All: true},
			{ID: "dentista", Name: "Dentista"},
			{ID: "tatuagem", Name: "Tatuagem"},
			{ID: "fotografia", Name: "Fotografia"},
		},
	}
	add := func(id, cat, image string) {
		site.Projects = append(site.Projects, catalog.Project{ID: id, Title: id, Image: image, Category: cat, DemoURL: "https://example.com/" + id})
	}
	for i := 1; i <= 3; i++ {
		add(fmt.Sprintf("tattoo-%d", i), "tatuagem", fmt.Sprintf("/assets/img/tattoo-%d.svg", i))
	}
	for i := 1; i <= 10; i++ {
		add(fmt.Sprintf("dent-%d", i), "dentista", fmt.Sprintf("/assets/img/dent-%d.svg", i))
	}
	add("stock", "tatuagem", "https://images.unsplash.com/photo-1")
	add("orphan", "restaurantes", "/assets/img/orphan.svg")
	return site
}

var placeholder = PlaceholderPatterns("unsplash.com")

func TestFilterPreservesOrderAndDropsPlaceholders(t *testing.T) {
	t.Parallel()

	site := testSite()
	cat, _ := site.CategoryByID("tatuagem")
	got := Filter(site.Projects, cat, placeholder)
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"tattoo-1", "tattoo-2", "tattoo-3"}, ids)

	all, _ := site.CategoryByID("todos")
	require.Len(t, Filter(site.Projects, all, placeholder), 14)
	require.Len(t, Filter(site.Projects, all, nil), 15)
}

func TestBuildCardCountMatchesMinVisibleFiltered(t *testing.T) {
	t.Parallel()

	site := testSite()
	for _, cat := range site.Categories {
		filtered := Filter(site.Projects, cat, placeholder)
		state := pagestate.New("todos").SelectCategory(cat.ID)
		for k := 0; k < 4; k++ {
			page := Build(site, state, Options{Placeholder: placeholder})
			want := state.Visible
			if len(filtered) < want {
				want = len(filtered)
			}
			require.Len(t, page.Cards, want, "category=%s visible=%d", cat.ID, state.Visible)
			require.LessOrEqual(t, len(page.Cards), state.Visible)
			require.Equal(t, state.Visible < len(filtered), page.HasMore)
			state = state.LoadMore()
		}
	}
}

func TestBuildTattooExample(t *testing.T) {
	t.Parallel()

	page := Build(testSite(), pagestate.New("todos").SelectCategory("tatuagem"), Options{Placeholder: placeholder, Prefetch: DefaultPrefetch})
	require.Len(t, page.Cards, 3)
	require.False(t, page.HasMore)
	require.Zero(t, page.Remaining)
	require.False(t, page.Empty)
	require.Equal(t, []string{"/assets/img/tattoo-1.svg", "/assets/img/tattoo-2.svg", "/assets/img/tattoo-3.svg"}, page.Prefetch)
}

func TestBuildLoadMore(t *testing.T) {
	t.Parallel()

	state := pagestate.New("todos").SelectCategory("dentista")
	page := Build(testSite(), state, Options{Placeholder: placeholder})
	require.Len(t, page.Cards, 6)
	require.True(t, page.HasMore)
	require.Equal(t, 4, page.Remaining)
	require.Equal(t, 12, page.LoadMore.Visible)
	require.Equal(t, "dentista", page.LoadMore.Category)

	page = Build(testSite(), page.LoadMore, Options{Placeholder: placeholder})
	require.Len(t, page.Cards, 10)
	require.False(t, page.HasMore)
}

func TestBuildStopsLoadMoreAtCap(t *testing.T) {
	t.Parallel()

	site := &catalog.Site{Categories: []catalog.Category{{ID: "todos", Name: "Todos", All: true}}}
	for i := 0; i < pagestate.MaxVisible+100; i++ {
		site.Projects = append(site.Projects, catalog.Project{ID: fmt.Sprintf("p-%d", i), Image: fmt.Sprintf("/assets/img/p-%d.svg", i)})
	}

	state := pagestate.New("todos")
	for i := 0; i < 200; i++ {
		state = state.LoadMore()
	}
	require.Equal(t, pagestate.MaxVisible, state.Visible)

	page := Build(site, state, Options{})
	require.Len(t, page.Cards, pagestate.MaxVisible)
	require.Equal(t, pagestate.MaxVisible+100, page.Total)
	require.False(t, page.HasMore)
	require.Zero(t, page.Remaining)

	page = Build(site, state.SelectCategory("todos").LoadMore(), Options{})
	require.True(t, page.HasMore)
	require.Equal(t, 18, page.LoadMore.Visible)
}

func TestBuildEmptyStates(t *testing.T) {
	t.Parallel()

	site := testSite()
	page := Build(site, pagestate.New("todos").SelectCategory("fotografia"), Options{Placeholder: placeholder})
	require.True(t, page.Empty)
	require.Empty(t, page.Cards)
	require.Equal(t, "Fotografia", page.Category.Name)

	page = Build(site, pagestate.New("todos").SelectCategory("restaurantes"), Options{Placeholder: placeholder})
	require.True(t, page.Empty, "dangling category reference yields an empty page")

	page = Build(nil, pagestate.New("todos"), Options{})
	require.True(t, page.Empty)
}

func TestBuildImageStates(t *testing.T) {
	t.Parallel()

	public := fstest.MapFS{
		"assets/img/tattoo-1.svg": {Data: []byte("<svg/>")},
		"assets/img/tattoo-3.svg": {Data: []byte("<svg/>")},
	}
	page := Build(testSite(), pagestate.New("todos").SelectCategory("tatuagem"), Options{
		Placeholder: placeholder,
		Images:      AssetImages(public),
	})
	require.Len(t, page.Cards, 3)
	require.Equal(t, ImageReady, page.Cards[0].ImageState)
	require.Equal(t, ImageUnavailable, page.Cards[1].ImageState)
	require.Equal(t, ImageReady, page.Cards[2].ImageState)
	require.True(t, page.Cards[0].HasDemo)
}

func TestAssetImages(t *testing.T) {
	t.Parallel()

	resolve := AssetImages(fstest.MapFS{"assets/img/a.svg": {Data: []byte("x")}})
	require.Equal(t, ImageReady, resolve("/assets/img/a.svg"))
	require.Equal(t, ImageReady, resolve("https://cdn.example.com/a.png"))
	require.Equal(t, ImageUnavailable, resolve("/assets/img/missing.svg"))
	require.Equal(t, ImageUnavailable, resolve("/assets/img"))
	require.Equal(t, ImageUnavailable, resolve(""))
	require.Equal(t, ImageUnavailable, resolve("/../../etc/passwd"))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]catalog.Project, 8)
	shown, more := Paginate(items, 6)
	require.Len(t, shown, 6)
	require.True(t, more)

	shown, more = Paginate(items, 8)
	require.Len(t, shown, 8)
	require.False(t, more)

	shown, more = Paginate(nil, 6)
	require.Empty(t, shown)
	require.False(t, more)
}

func TestPrefetchImages(t *testing.T) {
	t.Parallel()

	site := testSite()
	all, _ := site.CategoryByID("todos")
	filtered := Filter(site.Projects, all, placeholder)
	require.Empty(t, PrefetchImages(filtered, 0))
	require.Empty(t, PrefetchImages(filtered, -1))
	require.Len(t, PrefetchImages(filtered, DefaultPrefetch), DefaultPrefetch)
	require.Len(t, PrefetchImages(filtered, 5), 5)
	require.Empty(t, PrefetchImages(nil, 3))
}
