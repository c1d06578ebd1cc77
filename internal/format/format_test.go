package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		minor    int64
		currency string
		lang     string
		want     string
	}{
		{49700, "BRL", "pt", "R$ 497"},
		{149700, "BRL", "pt", "R$ 1.497"},
		{15050, "brl", "pt", "R$ 150,50"},
		{149700, "BRL", "en", "R$ 1,497"},
		{1999, "USD", "en", "$19.99"},
		{-20000, "BRL", "pt", "-R$ 200"},
		{30000, "", "", "R$ 300"},
	}
	for _, tc := range cases {
		if got := Currency(tc.minor, tc.currency, tc.lang); got != tc.want {
			t.Fatalf("Currency(%d, %q, %q) = %q, want %q", tc.minor, tc.currency, tc.lang, got, tc.want)
		}
	}
}

func TestPrice(t *testing.T) {
	if got := Price(15000, "BRL", "mês", "pt"); got != "R$ 150/mês" {
		t.Fatalf("unexpected price %q", got)
	}
	if got := Price(30000, "BRL", "", "pt"); got != "R$ 300" {
		t.Fatalf("unexpected price %q", got)
	}
}

func TestYear(t *testing.T) {
	if got := Year(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); got != "2024" {
		t.Fatalf("unexpected year %q", got)
	}
}
