package handlers

import (
	"net/url"
	"strings"
	"time"

	"landingpro.dev/web/internal/catalog"
	"landingpro.dev/web/internal/format"
	"landingpro.dev/web/internal/icons"
	"landingpro.dev/web/internal/nav"
	"landingpro.dev/web/internal/pagestate"
	"landingpro.dev/web/internal/seo"
)

// Layout carries the fields every page passes to the shared base template.
type Layout struct {
	// Path is the current page state as a link, used as the return target of forms.
	Path      string
	Lang      string
	Langs     []LangOption
	Brand     catalog.Brand
	SEO       seo.Meta
	Analytics Analytics
	Dark      bool
	CSRFToken string

	Nav     []nav.RenderedItem
	Menu    MenuData
	Contact ContactData
	Footer  FooterData
}

// HomeData is the view model for the home page.
type HomeData struct {
	Layout

	Hero    HeroData
	Gallery GalleryData
	Pricing PricingData
	FAQ     FAQData
	CTA     CTAData
}

// LangOption links to the same page state in another language.
type LangOption struct {
	Code   string
	Href   string
	Active bool
}

// MenuData drives the mobile menu.
type MenuData struct {
	Open       bool
	ToggleHref string
}

// HeroData is the top section.
type HeroData struct {
	Headline  string
	Highlight string
	Subtitle  string
	CTA       string
	CTAHref   string
	Stats     []StatData
}

// StatData is one social proof badge.
type StatData struct {
	Label string
	Icon  icons.Icon
}

// CTAData is the closing call-to-action band.
type CTAData struct {
	Title         string
	Body          string
	Primary       string
	PrimaryHref   string
	Secondary     string
	SecondaryHref string
}

// ContactData feeds the floating WhatsApp button.
type ContactData struct {
	InquiryHref string
	Tooltip     string
}

// FooterData is the page footer.
type FooterData struct {
	Text string
	Year string
}

// Home constructs the view model for the landing page.
func (b *Builder) Home(req Request) HomeData {
	site := req.Site
	if site == nil {
		site = &catalog.Site{}
	}
	req.Site = site
	linker := b.Linker(site)
	state := req.State

	data := HomeData{
		Layout: b.layout(req),
		Hero: HeroData{
			Headline:  site.Hero.Headline,
			Highlight: site.Hero.Highlight,
			Subtitle:  site.Hero.Subtitle,
			CTA:       site.Hero.CTA,
			CTAHref:   linker.Inquiry(),
		},
		Gallery: b.Gallery(req),
		Pricing: b.Pricing(req),
		FAQ:     b.FAQ(req),
		CTA: CTAData{
			Title:         site.CTA.Title,
			Body:          site.CTA.Body,
			Primary:       site.CTA.Primary,
			PrimaryHref:   linker.Inquiry(),
			Secondary:     site.CTA.Secondary,
			SecondaryHref: state.CloseMenu().Href("/", "pricing"),
		},
	}
	for _, s := range site.Hero.Stats {
		icon := icons.Named(s.Icon)
		if s.Icon == "" {
			icon = icons.Star
		}
		data.Hero.Stats = append(data.Hero.Stats, StatData{Label: s.Label, Icon: icon})
	}
	data.SEO = b.homeSEO(req, data)
	return data
}

// layout fills the shared fields. req.Site must not be nil.
func (b *Builder) layout(req Request) Layout {
	site := req.Site
	state := req.State
	return Layout{
		Path:      state.CloseMenu().Href("/", ""),
		Lang:      req.Lang,
		Langs:     b.langOptions(req.Lang, state),
		Brand:     site.Brand,
		Analytics: b.Analytics,
		Dark:      req.Dark,
		CSRFToken: req.CSRFToken,
		Nav:       nav.Build(state.CloseMenu().Href("/", ""), ""),
		Menu: MenuData{
			Open:       state.MenuOpen,
			ToggleHref: state.ToggleMenu().Href("/", ""),
		},
		Contact: ContactData{
			InquiryHref: b.Linker(site).Inquiry(),
			Tooltip:     site.Contact.Tooltip,
		},
		Footer: FooterData{
			Text: site.Footer.Text,
			Year: format.Year(time.Now()),
		},
	}
}

func (b *Builder) langOptions(current string, state pagestate.State) []LangOption {
	out := make([]LangOption, 0, len(b.Locales))
	for _, l := range b.Locales {
		q := state.CloseMenu().Values()
		q.Set("hl", l)
		out = append(out, LangOption{
			Code:   l,
			Href:   "/?" + q.Encode(),
			Active: l == current,
		})
	}
	return out
}

func (b *Builder) homeSEO(req Request, data HomeData) seo.Meta {
	site := req.Site
	title := site.Brand.Name
	if t := strings.TrimSpace(site.Brand.Tagline); t != "" {
		title += " | " + t
	}
	desc := seo.Excerpt(string(b.markdown().HTML(site.Brand.Description)), 160)
	canonical := b.siteURL("/")
	image := ""
	if site.Brand.Logo != "" {
		image = b.siteURL(site.Brand.Logo)
	}

	meta := seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: seo.OpenGraph{
			Title:       title,
			Description: desc,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    site.Brand.Name,
			Locale:      req.Lang,
		},
		Twitter: seo.Twitter{Card: "summary_large_image", Image: image},
	}
	if canonical != "" {
		for _, l := range b.Locales {
			meta.Alternates = append(meta.Alternates, seo.Alternate{
				Href:     b.siteURL("/?" + url.Values{"hl": {l}}.Encode()),
				Hreflang: l,
			})
		}
	}

	questions := make([]seo.Question, 0, len(site.FAQs))
	for _, f := range site.FAQs {
		questions = append(questions, seo.Question{
			Name:   f.Question,
			Answer: seo.PlainText(string(b.markdown().HTML(f.Answer))),
		})
	}
	offers := make([]seo.Offer, 0, len(site.Plans))
	for i, p := range site.Plans {
		offers = append(offers, seo.Offer{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Currency:    p.Currency,
			URL:         data.Pricing.Plans[i].ContactHref,
		})
	}
	meta.JSONLD = []string{
		seo.JSON(seo.Organization(site.Brand.Name, canonical, image)),
		seo.JSON(seo.WebSite(site.Brand.Name, canonical, req.Lang)),
	}
	if len(questions) > 0 {
		meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.FAQPage(questions)))
	}
	if len(offers) > 0 {
		meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.OfferCatalog(site.Pricing.Title, offers)))
	}
	return meta
}
