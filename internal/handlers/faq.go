package handlers

import (
	"html/template"
	"strconv"
)

// FAQData is the accordion view model.
type FAQData struct {
	Lang  string
	Items []FAQItem
}

// FAQItem is one accordion entry. At most one item of a FAQData is Open.
type FAQItem struct {
	Index      int
	ID         string
	Question   string
	Answer     template.HTML
	Open       bool
	ToggleHref string
	ToggleHX   string
}

// FAQ builds the accordion for the request state.
func (b *Builder) FAQ(req Request) FAQData {
	data := FAQData{Lang: req.Lang}
	if req.Site == nil {
		return data
	}
	state := req.State.CloseMenu()
	data.Items = make([]FAQItem, 0, len(req.Site.FAQs))
	for i, f := range req.Site.FAQs {
		next := state.ToggleFAQ(i)
		data.Items = append(data.Items, FAQItem{
			Index:      i,
			ID:         "faq-" + strconv.Itoa(i),
			Question:   f.Question,
			Answer:     b.markdown().HTML(f.Answer),
			Open:       state.IsFAQOpen(i),
			ToggleHref: next.Href("/", "faq"),
			ToggleHX:   next.Href(FAQPath, ""),
		})
	}
	return data
}
