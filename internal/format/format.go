package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency formats amount in minor units. Whole amounts drop the cents.
// Example: Currency(149700, "BRL", "pt") => "R$ 1.497"
func Currency(minor int64, currency, lang string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "BRL"
	}
	neg := minor < 0
	if neg {
		minor = -minor
	}
	major, cents := minor/100, minor%100
	p := printer(lang)

	var num string
	if cents == 0 {
		num = p.Sprintf("%d", major)
	} else {
		num = p.Sprintf("%d", major) + decimalSep(lang) + fmt.Sprintf("%02d", cents)
	}

	var out string
	switch currency {
	case "BRL":
		out = "R$ " + num
	case "USD":
		out = "$" + num
	case "EUR":
		out = "€ " + num
	case "JPY":
		out = "¥" + p.Sprintf("%d", minor)
	default:
		out = currency + " " + num
	}
	if neg {
		return "-" + out
	}
	return out
}

func printer(lang string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil || tag == language.Und {
		tag = language.BrazilianPortuguese
	}
	return message.NewPrinter(tag)
}

func decimalSep(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(base, "-_"); i != -1 {
		base = base[:i]
	}
	switch base {
	case "en", "ja":
		return "."
	default:
		return ","
	}
}

// Price appends a billing period when present, e.g. "R$ 150/mês".
func Price(minor int64, currency, period, lang string) string {
	out := Currency(minor, currency, lang)
	if period = strings.TrimSpace(period); period != "" {
		return out + "/" + period
	}
	return out
}

// Year returns the four digit year, used by the footer copyright.
func Year(t time.Time) string {
	return t.Format("2006")
}
