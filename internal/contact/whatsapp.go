// Package contact builds click-to-chat links for the agency's WhatsApp number.
package contact

import (
	"net/url"
	"strings"
)

const (
	DefaultHost           = "wa.me"
	DefaultInquiryMessage = "Olá! Gostaria de solicitar um orçamento para uma landing page."
	DefaultPlanMessage    = "Olá! Gostaria de solicitar um orçamento para o plano %s."
)

// Linker builds outbound links to a fixed recipient.
type Linker struct {
	Host           string
	Recipient      string
	InquiryMessage string
	// PlanMessage contains %s where the plan name goes.
	PlanMessage string
}

// NewLinker returns a Linker with default messages for empty ones.
func NewLinker(host, recipient, inquiry, plan string) Linker {
	l := Linker{
		Host:           strings.TrimSpace(host),
		Recipient:      digitsOnly(recipient),
		InquiryMessage: strings.TrimSpace(inquiry),
		PlanMessage:    strings.TrimSpace(plan),
	}
	if l.Host == "" {
		l.Host = DefaultHost
	}
	if l.InquiryMessage == "" {
		l.InquiryMessage = DefaultInquiryMessage
	}
	if l.PlanMessage == "" {
		l.PlanMessage = DefaultPlanMessage
	}
	return l
}

// Inquiry links to a generic quote request.
func (l Linker) Inquiry() string {
	return l.Link(l.InquiryMessage)
}

// ForPlan links to a quote request naming plan.
func (l Linker) ForPlan(plan string) string {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return l.Inquiry()
	}
	return l.Link(PlanMessage(l.PlanMessage, plan))
}

// Link builds https://<host>/<recipient>?text=<message>.
func (l Linker) Link(message string) string {
	host := l.Host
	if host == "" {
		host = DefaultHost
	}
	return "https://" + host + "/" + url.PathEscape(l.Recipient) + "?text=" + EscapeComponent(message)
}

// PlanMessage interpolates plan into template at its %s marker.
// Plain replacement keeps stray % signs in plan names intact.
func PlanMessage(template, plan string) string {
	if !strings.Contains(template, "%s") {
		return strings.TrimSpace(template + " " + plan)
	}
	return strings.Replace(template, "%s", plan, 1)
}

// componentUnescaper restores the marks url.QueryEscape encodes but
// encodeURIComponent leaves alone, and writes spaces as %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s for a query value the way encodeURIComponent does.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
