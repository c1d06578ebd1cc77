// Package pagestate models the interactive state of one landing page view.
//
// A State is a value: every transition returns a new State, and the page
// renders transitions as links carrying the resulting query string.
package pagestate

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// PageSize is both the initial visible count and the load-more step.
	PageSize = 6
	// MaxVisible bounds the visible count accepted from a query string.
	MaxVisible = 600

	NoFAQ = -1
)

// Query parameter names.
const (
	ParamCategory = "cat"
	ParamVisible  = "show"
	ParamFAQ      = "faq"
	ParamMenu     = "menu"
)

// State is the transient UI state of one page view.
type State struct {
	Category string
	Visible  int
	OpenFAQ  int
	MenuOpen bool

	// defaultCategory is omitted from generated queries.
	defaultCategory string
	pageSize        int
}

// New returns the initial state with defaultCategory selected.
func New(defaultCategory string) State {
	return NewWithPageSize(defaultCategory, PageSize)
}

// NewWithPageSize is New with a custom pagination step.
func NewWithPageSize(defaultCategory string, pageSize int) State {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return State{
		Category:        defaultCategory,
		Visible:         pageSize,
		OpenFAQ:         NoFAQ,
		defaultCategory: defaultCategory,
		pageSize:        pageSize,
	}
}

// Parse reads a State from query values, starting from base.
// Invalid values fall back to base values instead of failing.
func Parse(values url.Values, base State) State {
	s := base
	if s.pageSize <= 0 {
		s.pageSize = PageSize
	}
	if s.Visible < s.pageSize {
		s.Visible = s.pageSize
	}
	if cat := strings.TrimSpace(strings.ToLower(values.Get(ParamCategory))); cat != "" {
		s.Category = cat
	}
	if v := strings.TrimSpace(values.Get(ParamVisible)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Visible = s.clampVisible(n)
		}
	}
	if v := strings.TrimSpace(values.Get(ParamFAQ)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.OpenFAQ = n
		}
	}
	switch strings.ToLower(strings.TrimSpace(values.Get(ParamMenu))) {
	case "1", "true", "open":
		s.MenuOpen = true
	case "0", "false", "closed":
		s.MenuOpen = false
	}
	return s
}

func (s State) step() int {
	if s.pageSize <= 0 {
		return PageSize
	}
	return s.pageSize
}

func (s State) clampVisible(n int) int {
	if n < s.step() {
		return s.step()
	}
	if n > MaxVisible {
		return MaxVisible
	}
	return n
}

// SelectCategory switches tabs and resets the visible count.
func (s State) SelectCategory(id string) State {
	s.Category = id
	s.Visible = s.step()
	return s
}

// LoadMore reveals one more page of projects.
func (s State) LoadMore() State {
	s.Visible = s.clampVisible(s.Visible + s.step())
	return s
}

// ToggleFAQ opens index i, or closes it when it is already open.
func (s State) ToggleFAQ(i int) State {
	if i < 0 || s.OpenFAQ == i {
		s.OpenFAQ = NoFAQ
		return s
	}
	s.OpenFAQ = i
	return s
}

// IsFAQOpen reports whether index i is the open accordion item.
func (s State) IsFAQOpen(i int) bool { return s.OpenFAQ >= 0 && s.OpenFAQ == i }

// ToggleMenu flips the mobile menu.
func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// CloseMenu closes the mobile menu, used by navigation links.
func (s State) CloseMenu() State {
	s.MenuOpen = false
	return s
}

// Values encodes the state, omitting defaults.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Category != "" && s.Category != s.defaultCategory {
		v.Set(ParamCategory, s.Category)
	}
	if s.Visible > s.step() {
		v.Set(ParamVisible, strconv.Itoa(s.Visible))
	}
	if s.OpenFAQ >= 0 {
		v.Set(ParamFAQ, strconv.Itoa(s.OpenFAQ))
	}
	if s.MenuOpen {
		v.Set(ParamMenu, "1")
	}
	return v
}

// Href renders the state as a link to path with an optional fragment.
func (s State) Href(path, anchor string) string {
	if path == "" {
		path = "/"
	}
	out := path
	if q := s.Values().Encode(); q != "" {
		out += "?" + q
	}
	if anchor != "" {
		out += "#" + anchor
	}
	return out
}
