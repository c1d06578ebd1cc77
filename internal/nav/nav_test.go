package nav

import "testing"

func TestBuild(t *testing.T) {
	items := Build("/?cat=padaria", "pricing")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []string{"/?cat=padaria#portfolio", "/?cat=padaria#pricing", "/?cat=padaria#faq"}
	for i, it := range items {
		if it.Href != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], it.Href)
		}
		if it.Active != (it.Anchor == "pricing") {
			t.Fatalf("unexpected active state for %s", it.Anchor)
		}
	}
}

func TestBuildDefaultsBase(t *testing.T) {
	items := Build("", "")
	if items[0].Href != "/#portfolio" {
		t.Fatalf("unexpected href %q", items[0].Href)
	}
	for _, it := range items {
		if it.Active {
			t.Fatalf("nothing should be active, got %s", it.Anchor)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("faq") || Known("shop") {
		t.Fatal("unexpected Known result")
	}
}
