package nav

// Item represents a top-level navigation entry. The site is a single page, so
// every entry is an in-page anchor.
type Item struct {
	Anchor   string // e.g. "portfolio"
	LabelKey string // i18n key, e.g. "nav.portfolio"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Anchor   string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Anchor: "portfolio", LabelKey: "nav.portfolio"},
	{Anchor: "pricing", LabelKey: "nav.pricing"},
	{Anchor: "faq", LabelKey: "nav.faq"},
}

// Build renders navigation items. base is the page href the anchors hang off,
// usually "/" plus the current query so following a link keeps the page state.
// active names the section to highlight; empty highlights nothing.
func Build(base, active string) []RenderedItem {
	if base == "" {
		base = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     base + "#" + it.Anchor,
			Anchor:   it.Anchor,
			LabelKey: it.LabelKey,
			Active:   it.Anchor == active,
		})
	}
	return items
}

// Known reports whether anchor names a navigation section.
func Known(anchor string) bool {
	for _, it := range Main {
		if it.Anchor == anchor {
			return true
		}
	}
	return false
}
