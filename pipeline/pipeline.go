// Package pipeline drives the per-locale translation pass: classify
// each source line, decide whether it needs a translation call, repair
// the translated value, and format the output block for one locale.
//
// Processing is strictly sequential — one locale is fully translated
// and appended before the next begins. The only blocking operations
// are the external translation call and file I/O; a service failure
// propagates and aborts the current locale, leaving blocks already
// appended for prior locales on disk.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/campaign-tools/mailtrans/langfile"
	"github.com/campaign-tools/mailtrans/localemap"
	"github.com/campaign-tools/mailtrans/normalize"
	"github.com/campaign-tools/mailtrans/translator"
)

// SourceLanguage is the provider-facing name of the base language.
// The base locale is always an English variant, so this never varies.
const SourceLanguage = "ENGLISH"

// MarkerKey is the special source key whose line marks the language
// header row. For each target locale it is re-emitted keyed by the
// locale's own service code, with an empty value.
const MarkerKey = "en"

// ErrNoCodec is returned when the pipeline is run without a codec.
// Like an unknown locale, this is a fatal configuration error.
var ErrNoCodec = errors.New("no line codec configured")

// Pipeline translates a source language file into target locales.
type Pipeline struct {
	// Codec parses and formats the language-file lines.
	Codec langfile.Codec
	// Service performs the external translation calls.
	Service translator.Service
}

// RunLocale produces the output block for one target locale from the
// source file content: a single in-order pass, comments and blanks
// dropped, the marker key re-emitted as the locale header, empty
// values passed through without a service call, and every other value
// translated and normalized. Lines are joined with newlines.
func (p *Pipeline) RunLocale(ctx context.Context, src []byte, locale string) (string, error) {
	if p.Codec == nil {
		return "", ErrNoCodec
	}
	code, err := localemap.ServiceCodeFor(locale)
	if err != nil {
		return "", err
	}

	// Key catalog scoped to this pass; nothing leaks between locales.
	seen := langfile.NewCatalog()

	var out []string
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	for _, raw := range strings.Split(text, "\n") {
		ln := p.Codec.Classify(raw)
		if ln.Kind != langfile.KeyValue {
			continue
		}
		if !seen.Add(ln.Key) {
			// Duplicate source key: first occurrence wins.
			continue
		}

		switch {
		case ln.Key == MarkerKey:
			out = append(out, p.Codec.Format(code, ""))
		case strings.TrimSpace(ln.Value) == "":
			out = append(out, p.Codec.Format(ln.Key, ""))
		default:
			translated, err := p.Service.Translate(ctx, ln.Value, SourceLanguage, code)
			if err != nil {
				return "", fmt.Errorf("translating %q for %s: %w", ln.Key, locale, err)
			}
			out = append(out, p.Codec.Format(ln.Key, normalize.Normalize(translated, locale)))
		}
	}
	return strings.Join(out, "\n"), nil
}

// Run processes locales in order, re-reading the source file for each
// pass and appending each locale's block through w. The first failure
// stops the run; blocks already appended stay on disk.
func (p *Pipeline) Run(ctx context.Context, srcPath string, locales []string, w *Writer) error {
	for _, locale := range locales {
		src, err := os.ReadFile(srcPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", srcPath, err)
		}
		block, err := p.RunLocale(ctx, src, locale)
		if err != nil {
			return err
		}
		if err := w.AppendBlock(block); err != nil {
			return err
		}
	}
	return nil
}
