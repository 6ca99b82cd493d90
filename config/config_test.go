package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingFileReturnsNil(t *testing.T) {
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if f != nil {
		t.Errorf("expected nil for missing config, got %+v", f)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "source: lang/en-US.txt\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if f.Source != "lang/en-US.txt" {
		t.Errorf("Source = %q", f.Source)
	}
	if f.Output != "translations.txt" {
		t.Errorf("Output = %q, want default", f.Output)
	}
	if f.Format != FormatText {
		t.Errorf("Format = %q, want text", f.Format)
	}
	if f.Provider != "google" {
		t.Errorf("Provider = %q, want google", f.Provider)
	}
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "source: en-US.txt\nformat: xml\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoad_RejectsUnknownLocale(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "source: en-US.txt\nlocales: [fr-FR, xx-XX]\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unknown locale")
	}
}

func TestLoad_CanonicalizesLocales(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "source: en-US.txt\nlocales: [pt_br, FR-fr]\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if f.Locales[0] != "pt-BR" || f.Locales[1] != "fr-FR" {
		t.Errorf("Locales = %v", f.Locales)
	}
}

func TestTargetLocales_DefaultsToNonBase(t *testing.T) {
	f := Default()
	locales := f.TargetLocales()
	if len(locales) == 0 {
		t.Fatal("no default target locales")
	}
	for _, loc := range locales {
		if loc == "en-US" {
			t.Error("default locales include the base locale")
		}
	}
}
