// Package localemap provides the fixed mapping from email-platform
// source locales to translation-service language codes.
//
// The table is a build-time constant: the set of locales the platform
// ships language files for is small (~19) and changes only with a
// release, never at runtime. Several regional variants intentionally
// share one service code — all English variants translate as plain
// "en", both Portuguese variants as "pt" — so ServiceCode values are
// not unique even though SourceLocale values are.
package localemap

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// BaseLocale is the reference locale whose language file is the
// translation source. It is never a translation target.
const BaseLocale = "en-US"

// Entry maps one platform source locale to the language code the
// translation service expects.
type Entry struct {
	// SourceLocale is the locale identifier used by the email platform
	// (BCP 47 with region, e.g. "fr-FR").
	SourceLocale string
	// ServiceCode is the code passed to the translation service
	// (e.g. "fr", "zh-CN").
	ServiceCode string
}

// ErrUnknownLocale is returned by ServiceCodeFor for locales not in
// the table. It is a configuration error: the caller asked for a
// locale the platform does not ship.
var ErrUnknownLocale = errors.New("unknown locale")

// table lists all platform locales in stable order.
// SourceLocale values are unique; ServiceCode values are not.
var table = []Entry{
	{"en-US", "en"},
	{"en-GB", "en"},
	{"en-AU", "en"},
	{"en-CA", "en"},
	{"de-DE", "de"},
	{"es-ES", "es"},
	{"es-MX", "es"},
	{"fr-FR", "fr"},
	{"fr-CA", "fr"},
	{"it-IT", "it"},
	{"ja-JP", "ja"},
	{"ko-KR", "ko"},
	{"nl-NL", "nl"},
	{"pl-PL", "pl"},
	{"pt-BR", "pt"},
	{"pt-PT", "pt"},
	{"ru-RU", "ru"},
	{"sv-SE", "sv"},
	{"zh-CN", "zh-CN"},
	{"zh-TW", "zh-TW"},
}

// index maps SourceLocale → position in table.
var index = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, e := range table {
		m[e.SourceLocale] = i
	}
	return m
}()

// ServiceCodeFor resolves a source locale to its service language code.
// Unknown locales fail with ErrUnknownLocale.
func ServiceCodeFor(sourceLocale string) (string, error) {
	if i, ok := index[sourceLocale]; ok {
		return table[i].ServiceCode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, sourceLocale)
}

// All returns every entry in table order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// NonEnglish returns all entries whose source locale is not an English
// variant (does not begin with "en").
func NonEnglish() []Entry {
	var out []Entry
	for _, e := range table {
		if !strings.HasPrefix(e.SourceLocale, "en") {
			out = append(out, e)
		}
	}
	return out
}

// NonBase returns all entries except the base locale. These are the
// translation targets for a full run.
func NonBase() []Entry {
	var out []Entry
	for _, e := range table {
		if e.SourceLocale != BaseLocale {
			out = append(out, e)
		}
	}
	return out
}

// Canonical normalizes a user-supplied locale spelling to the table's
// BCP 47 form ("pt_br" → "pt-BR"). Strings that do not parse as a
// language tag are returned unchanged; ServiceCodeFor will reject them
// if they are not in the table.
func Canonical(s string) string {
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return s
	}
	return tag.String()
}
