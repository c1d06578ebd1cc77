package i18n

import (
	"testing"
	"testing/fstest"

	web "landingpro.dev/web"
)

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load(web.LocalesFS(), "pt", []string{"pt", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadBundle(t)
	got := b.Resolve("pt;q=0.8, en;q=0.9")
	if got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveRegionAndFallback(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("pt-BR,pt;q=0.9"); got != "pt" {
		t.Fatalf("expected pt, got %s", got)
	}
	if got := b.Resolve("fr-FR, de;q=0.5"); got != "pt" {
		t.Fatalf("expected fallback pt, got %s", got)
	}
	if got := b.Resolve("en;q=0, fr"); got != "pt" {
		t.Fatalf("q=0 must not select en, got %s", got)
	}
}

func TestTranslateFallsBack(t *testing.T) {
	b := loadBundle(t)
	if got := b.T("en", "nav.portfolio"); got != "Portfolio" {
		t.Fatalf("unexpected en label %q", got)
	}
	if got := b.T("pt", "nav.pricing"); got != "Preços" {
		t.Fatalf("unexpected pt label %q", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestTfSubstitutes(t *testing.T) {
	b := loadBundle(t)
	if got := b.Tf("pt", "gallery.load_more", 5); got != "Ver Mais (5 restantes)" {
		t.Fatalf("unexpected load more label %q", got)
	}
}

func TestLoadRequiresFallback(t *testing.T) {
	fsys := fstest.MapFS{"en.json": {Data: []byte(`{"a":"b"}`)}}
	if _, err := Load(fsys, "pt", []string{"pt", "en"}); err == nil {
		t.Fatal("expected error when fallback locale is missing")
	}
	fsys["pt.json"] = &fstest.MapFile{Data: []byte(`not json`)}
	if _, err := Load(fsys, "pt", []string{"pt", "en"}); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
