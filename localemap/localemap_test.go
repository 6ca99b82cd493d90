package localemap

import (
	"errors"
	"strings"
	"testing"
)

func TestServiceCodeFor_Known(t *testing.T) {
	got, err := ServiceCodeFor("fr-FR")
	if err != nil {
		t.Fatal(err)
	}
	if got != "fr" {
		t.Errorf("fr-FR = %q, want %q", got, "fr")
	}
}

func TestServiceCodeFor_EnglishVariantsShareCode(t *testing.T) {
	for _, loc := range []string{"en-US", "en-GB", "en-AU", "en-CA"} {
		got, err := ServiceCodeFor(loc)
		if err != nil {
			t.Fatal(err)
		}
		if got != "en" {
			t.Errorf("%s = %q, want en", loc, got)
		}
	}
}

func TestServiceCodeFor_Unknown(t *testing.T) {
	for _, loc := range []string{"xx-XX", "fr", "", "EN-US"} {
		_, err := ServiceCodeFor(loc)
		if !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("ServiceCodeFor(%q) = %v, want ErrUnknownLocale", loc, err)
		}
	}
}

func TestNonEnglish_ExcludesAllEnglishVariants(t *testing.T) {
	for _, e := range NonEnglish() {
		if strings.HasPrefix(e.SourceLocale, "en") {
			t.Errorf("NonEnglish contains %s", e.SourceLocale)
		}
	}
}

func TestNonBase_ExcludesOnlyBase(t *testing.T) {
	entries := NonBase()
	if len(entries) != len(All())-1 {
		t.Errorf("NonBase has %d entries, want %d", len(entries), len(All())-1)
	}
	for _, e := range entries {
		if e.SourceLocale == BaseLocale {
			t.Errorf("NonBase contains the base locale %s", BaseLocale)
		}
	}
}

func TestUniqueSourceLocales(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range All() {
		if seen[e.SourceLocale] {
			t.Errorf("duplicate source locale %s", e.SourceLocale)
		}
		seen[e.SourceLocale] = true
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct{ in, want string }{
		{"pt_br", "pt-BR"},
		{"pt-BR", "pt-BR"},
		{"FR-fr", "fr-FR"},
		{"zh_CN", "zh-CN"},
		{"not a tag", "not a tag"},
	}
	for _, c := range cases {
		if got := Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
