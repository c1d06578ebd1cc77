package handlers

import (
	"html/template"
	"net/url"

	"landingpro.dev/web/internal/format"
)

// PricingData is the pricing table view model.
type PricingData struct {
	Lang         string
	Title        string
	Subtitle     string
	PopularBadge string
	Plans        []PlanData
	AddonsTitle  string
	Addons       []AddonData
}

// PlanData is one priced plan with its contact link.
type PlanData struct {
	Name        string
	Price       string
	Description template.HTML
	Features    []string
	NotIncluded []string
	Popular     bool
	ContactHref string
	// ShareHref is the in-site redirect to ContactHref.
	ShareHref string
}

// AddonData is one additional service.
type AddonData struct {
	Name        string
	Price       string
	Description string
}

// Pricing builds the pricing section.
func (b *Builder) Pricing(req Request) PricingData {
	data := PricingData{Lang: req.Lang}
	site := req.Site
	if site == nil {
		return data
	}
	linker := b.Linker(site)
	data.Title = site.Pricing.Title
	data.Subtitle = site.Pricing.Subtitle
	data.PopularBadge = site.Pricing.PopularBadge
	data.AddonsTitle = site.Pricing.AddonsTitle
	data.Plans = make([]PlanData, 0, len(site.Plans))
	for _, p := range site.Plans {
		data.Plans = append(data.Plans, PlanData{
			Name:        p.Name,
			Price:       format.Currency(p.Price, p.Currency, req.Lang),
			Description: b.markdown().Inline(p.Description),
			Features:    p.Features,
			NotIncluded: p.NotIncluded,
			Popular:     p.Popular,
			ContactHref: linker.ForPlan(p.Name),
			ShareHref:   ContactPath + "?" + url.Values{"plan": {p.Name}}.Encode(),
		})
	}
	data.Addons = make([]AddonData, 0, len(site.Addons))
	for _, a := range site.Addons {
		data.Addons = append(data.Addons, AddonData{
			Name:        a.Name,
			Price:       format.Price(a.Price, a.Currency, a.Period, req.Lang),
			Description: a.Description,
		})
	}
	return data
}
