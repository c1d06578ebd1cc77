package handlers

import (
	"html/template"

	"landingpro.dev/web/internal/icons"
	"landingpro.dev/web/internal/portfolio"
)

// GalleryData is the view model of the portfolio section.
type GalleryData struct {
	Lang     string
	Title    string
	Subtitle string
	Tabs     []Tab

	CategoryID          string
	CategoryTitle       string
	CategoryDescription template.HTML
	CategoryIcon        icons.Icon

	Cards   []CardData
	Total   int
	Visible int

	Empty      bool
	EmptyTitle string
	EmptyBody  string

	HasMore       bool
	Remaining     int
	LoadMoreHref  string
	LoadMoreHXGet string

	Prefetch []string
}

// Tab is one category selector.
type Tab struct {
	ID       string
	Name     string
	Icon     icons.Icon
	Href     string
	HXGet    string
	Selected bool
}

// CardData is one project card.
type CardData struct {
	Lang        string
	ID          string
	Title       string
	Description string
	Image       string
	Tags        []string
	DemoURL     string
	HasDemo     bool
	ImageState  portfolio.ImageState
	Icon        icons.Icon
}

// Gallery builds the portfolio section for the request state.
func (b *Builder) Gallery(req Request) GalleryData {
	state := req.State.CloseMenu()
	page := portfolio.Build(req.Site, state, b.GalleryOptions)

	g := GalleryData{
		Lang:         req.Lang,
		CategoryID:   page.Category.ID,
		CategoryIcon: icons.For(page.Category.ID),
		Total:        page.Total,
		Visible:      page.Visible,
		Empty:        page.Empty,
		HasMore:      page.HasMore,
		Remaining:    page.Remaining,
		Prefetch:     page.Prefetch,
	}
	g.CategoryTitle = page.Category.Title
	if g.CategoryTitle == "" {
		g.CategoryTitle = page.Category.Name
	}
	if page.Category.Description != "" {
		g.CategoryDescription = b.markdown().Inline(page.Category.Description)
	}
	if page.HasMore {
		g.LoadMoreHref = page.LoadMore.Href("/", "portfolio")
		g.LoadMoreHXGet = page.LoadMore.Href(PortfolioPath, "")
	}

	if site := req.Site; site != nil {
		g.Title = site.Gallery.Title
		g.Subtitle = site.Gallery.Subtitle
		g.EmptyTitle = site.Gallery.EmptyTitle
		g.EmptyBody = site.Gallery.EmptyBody
		g.Tabs = make([]Tab, 0, len(site.Categories))
		for _, c := range site.Categories {
			next := state.SelectCategory(c.ID)
			g.Tabs = append(g.Tabs, Tab{
				ID:       c.ID,
				Name:     c.Name,
				Icon:     icons.For(c.ID),
				Href:     next.Href("/", "portfolio"),
				HXGet:    next.Href(PortfolioPath, ""),
				Selected: c.ID == page.Category.ID,
			})
		}
	}

	g.Cards = make([]CardData, 0, len(page.Cards))
	for _, c := range page.Cards {
		g.Cards = append(g.Cards, CardData{
			Lang:        req.Lang,
			ID:          c.Project.ID,
			Title:       c.Project.Title,
			Description: c.Project.Description,
			Image:       c.Project.Image,
			Tags:        c.Project.Tags,
			DemoURL:     c.Project.DemoURL,
			HasDemo:     c.HasDemo,
			ImageState:  c.ImageState,
			Icon:        icons.For(c.Project.Category),
		})
	}
	return g
}
