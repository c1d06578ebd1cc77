package portfolio

import (
	"strings"

	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/pagestate"
)

// DefaultPrefetch is how many images of the active category are preloaded.
const DefaultPrefetch = 3

// ImageState is the render state of a card image.
type ImageState string

const (
	ImageReady       ImageState = "ready"
	ImageUnavailable ImageState = "unavailable"
)

// Placeholder reports whether an image reference is a stock/placeholder image.
type Placeholder func(image string) bool

// PlaceholderPatterns matches images containing any of the given substrings.
func PlaceholderPatterns(patterns ...string) Placeholder {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return func(image string) bool {
		image = strings.ToLower(image)
		for _, p := range cleaned {
			if strings.Contains(image, p) {
				return true
			}
		}
		return false
	}
}

// Filter returns the projects shown under category, in catalog order.
// Projects whose image is a placeholder never qualify.
func Filter(projects []catalog.Project, category catalog.Category, isPlaceholder Placeholder) []catalog.Project {
	out := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		if isPlaceholder != nil && isPlaceholder(p.Image) {
			continue
		}
		if !category.All && p.Category != category.ID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate returns the first visible projects and whether more remain.
func Paginate(filtered []catalog.Project, visible int) ([]catalog.Project, bool) {
	if visible < 0 {
		visible = 0
	}
	if visible >= len(filtered) {
		return filtered, false
	}
	return filtered[:visible], true
}

// ImageResolver decides whether an image reference can be displayed.
type ImageResolver func(image string) ImageState

// Card is one rendered project entry.
type Card struct {
	Project    catalog.Project
	ImageState ImageState
	HasDemo    bool
}

// Page is the gallery for the selected category.
type Page struct {
	Category  catalog.Category
	Cards     []Card
	Total     int
	Visible   int
	HasMore   bool
	Remaining int
	Empty     bool
	// LoadMore is the state behind the load-more control; valid only when HasMore.
	LoadMore pagestate.State
	Prefetch []string
}

// Options tune Build.
type Options struct {
	Placeholder Placeholder
	Images      ImageResolver
	Prefetch    int
}

// Build filters, paginates and decorates the projects of the state's category.
// An unknown category yields an empty page.
func Build(site *catalog.Site, state pagestate.State, opts Options) Page {
	page := Page{Visible: state.Visible}
	if site == nil {
		page.Empty = true
		return page
	}
	cat, ok := site.CategoryByID(state.Category)
	if !ok {
		page.Category = catalog.Category{ID: state.Category, Name: state.Category}
		page.Empty = true
		return page
	}
	page.Category = cat

	filtered := Filter(site.Projects, cat, opts.Placeholder)
	shown, more := Paginate(filtered, state.Visible)

	page.Total = len(filtered)
	page.Empty = len(filtered) == 0
	// at the visible cap the load-more step would not change the state
	next := state.LoadMore()
	page.HasMore = more && next.Visible > state.Visible
	if page.HasMore {
		page.Remaining = len(filtered) - state.Visible
		page.LoadMore = next
	}
	page.Cards = make([]Card, 0, len(shown))
	for _, p := range shown {
		state := ImageReady
		if opts.Images != nil {
			state = opts.Images(p.Image)
		}
		page.Cards = append(page.Cards, Card{
			Project:    p,
			ImageState: state,
			HasDemo:    strings.TrimSpace(p.DemoURL) != "",
		})
	}
	page.Prefetch = PrefetchImages(filtered, opts.Prefetch)
	return page
}

// PrefetchImages lists the first n image references for preloading.
// n <= 0 disables preloading.
func PrefetchImages(filtered []catalog.Project, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(filtered) {
		n = len(filtered)
	}
	out := make([]string, 0, n)
	for _, p := range filtered[:n] {
		if p.Image != "" {
			out = append(out, p.Image)
		}
	}
	return out
}
