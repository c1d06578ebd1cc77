package seo

import (
	"encoding/json"
	"strconv"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// Question pairs a FAQ question with its answer as plain text.
type Question struct {
	Name   string
	Answer string
}

// FAQPage builds a schema.org FAQPage.
func FAQPage(questions []Question) map[string]any {
	el := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  q.Name,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  q.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}

// Offer is one priced item of an OfferCatalog. Price is in minor units.
type Offer struct {
	Name        string
	Description string
	Price       int64
	Currency    string
	URL         string
}

// OfferCatalog lists the service plans as schema.org offers.
func OfferCatalog(name string, offers []Offer) map[string]any {
	el := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		m := map[string]any{
			"@type":         "Offer",
			"price":         decimalPrice(o.Price),
			"priceCurrency": o.Currency,
			"itemOffered": map[string]any{
				"@type": "Service",
				"name":  o.Name,
			},
		}
		if o.Description != "" {
			m["description"] = o.Description
		}
		if o.URL != "" {
			m["url"] = o.URL
		}
		el = append(el, m)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "OfferCatalog",
		"name":            name,
		"itemListElement": el,
	}
}

// decimalPrice renders minor units with a dot separator as schema.org expects.
func decimalPrice(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	whole := strconv.FormatInt(minor/100, 10)
	cents := minor % 100
	if cents == 0 {
		return sign + whole
	}
	c := strconv.FormatInt(cents, 10)
	if cents < 10 {
		c = "0" + c
	}
	return sign + whole + "." + c
}
