// Package config — .mailtrans.yaml project configuration.
//
// When a .mailtrans.yaml file exists in the project root, it declares
// the source language file, the destination file, the file format, the
// translation provider, and the target locales. Flags override the
// file; the file overrides the built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/campaign-tools/mailtrans/localemap"
)

// FileName is the default config file name.
const FileName = ".mailtrans.yaml"

// Format identifies a language-file codec variant.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// File is the top-level .mailtrans.yaml structure.
type File struct {
	// Source is the base-language file, relative to the project root.
	Source string `yaml:"source"`
	// Output is the destination file locale blocks are appended to.
	Output string `yaml:"output,omitempty"`
	// Format is the language-file format: "text" or "yaml".
	Format string `yaml:"format,omitempty"`
	// Provider is the translation provider ID (google, deepl, llm).
	Provider string `yaml:"provider,omitempty"`
	// Model is the model identifier for the llm provider.
	Model string `yaml:"model,omitempty"`
	// BaseURL overrides the provider's API base URL.
	BaseURL string `yaml:"base_url,omitempty"`
	// Locales lists target locales; empty means all non-base locales.
	Locales []string `yaml:"locales,omitempty"`
}

// Default returns the configuration used when no .mailtrans.yaml
// exists.
func Default() *File {
	return &File{
		Source:   "en-US.txt",
		Output:   "translations.txt",
		Format:   FormatText,
		Provider: "google",
	}
}

// Load reads and validates .mailtrans.yaml from rootDir. Returns nil
// (and no error) when the file does not exist; an invalid file is a
// fatal configuration error.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Defaults
	def := Default()
	if f.Source == "" {
		f.Source = def.Source
	}
	if f.Output == "" {
		f.Output = def.Output
	}
	if f.Format == "" {
		f.Format = def.Format
	}
	if f.Provider == "" {
		f.Provider = def.Provider
	}

	if f.Format != FormatText && f.Format != FormatYAML {
		return nil, fmt.Errorf("%s: unknown format %q (valid: text, yaml)", path, f.Format)
	}
	for i, loc := range f.Locales {
		canonical := localemap.Canonical(loc)
		if _, err := localemap.ServiceCodeFor(canonical); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		f.Locales[i] = canonical
	}

	return &f, nil
}

// TargetLocales returns the configured locales, or every non-base
// locale when none are configured.
func (f *File) TargetLocales() []string {
	if len(f.Locales) > 0 {
		out := make([]string, len(f.Locales))
		copy(out, f.Locales)
		return out
	}
	var out []string
	for _, e := range localemap.NonBase() {
		out = append(out, e.SourceLocale)
	}
	return out
}
