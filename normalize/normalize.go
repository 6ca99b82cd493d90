// Package normalize repairs machine-translated values before they are
// written back to a language file.
//
// Translation services mangle the platform's markup conventions in
// predictable ways: they insert spaces inside tags, swap quote styles
// for the target language's typographic quotes, HTML-encode quotes,
// and rewrite brace placeholders as parenthesized indices. Normalize
// undoes those artifacts with a strictly ordered substitution chain.
// The order is load-bearing — later rules depend on the shape left by
// earlier ones (the quote downgrade in rule 12 must run after every
// rule that produces double-quotes, and before the re-wrapping in
// rule 13). Every rule is total: an unmatched pattern is a no-op.
package normalize

import "strings"

// step is one named substitution in the chain.
type step struct {
	name  string
	apply func(s string) string
}

// replaceAll returns a step substituting every pair in order.
func replaceAll(name string, pairs ...string) step {
	r := strings.NewReplacer(pairs...)
	return step{name, r.Replace}
}

// chain holds the locale-independent rules in their fixed order.
// Rule 1 (Chinese <strong> stripping) is locale-gated and applied
// before the chain by Normalize.
var chain = []step{
	// The service sometimes prepends a U+00A0 no-break space.
	{"strip-leading-nbsp", func(s string) string {
		return strings.TrimPrefix(s, " ")
	}},
	replaceAll("collapse-space-before-bracket", " ]", "]"),
	replaceAll("guillemets-to-quotes", "«", `"`, "»", `"`),
	{"move-trailing-period-outside-quote", func(s string) string {
		if strings.HasSuffix(s, `".`) {
			return strings.TrimSuffix(s, `".`) + `."`
		}
		return s
	}},
	replaceAll("escaped-space-quote", `\ "`, `\"`),
	replaceAll("closing-tag-space", "</ ", "</"),
	replaceAll("curly-quotes-to-ascii", "“", `"`, "”", `"`),
	replaceAll("trim-inside-strong", "<strong> ", "<strong>", " </strong>", "</strong>"),
	replaceAll("decode-quote-entities", "&quot;", `"`, "&#39;", `"`),
	replaceAll("decode-gt-entity", "&gt; ", ">"),
	// Double-quotes are reserved for wrapping the whole value; every
	// interior one becomes a single-quote, then the outer pair is
	// re-established.
	replaceAll("interior-quotes-to-single", `"`, "'"),
	{"restore-wrapping-quotes", func(s string) string {
		if strings.HasPrefix(s, "'") {
			s = `"` + s[1:]
		}
		if strings.HasSuffix(s, "'") {
			s = s[:len(s)-1] + `"`
		}
		return s
	}},
	replaceAll("escape-quote-before-O", ` "O`, ` \"O`),
	replaceAll("parens-to-brace-placeholders",
		"(0)", "{0}", "(1)", "{1}", "(2)", "{2}", "（0）", "{0}"),
	{"ensure-wrapping-quotes", func(s string) string {
		if !strings.HasSuffix(s, `"`) {
			s += `"`
		}
		if !strings.HasPrefix(s, `"`) {
			s = `"` + s
		}
		return s
	}},
	{"trim", strings.TrimSpace},
}

// IsChineseVariant reports whether targetLocale belongs to the Chinese
// language family (zh-CN, zh-TW, ...).
func IsChineseVariant(targetLocale string) bool {
	return strings.HasPrefix(targetLocale, "zh")
}

// Normalize applies the full repair chain to a translated value.
// For Chinese variants, literal <strong> markup is dropped entirely
// first; the service garbles it beyond repair for that family.
func Normalize(translated, targetLocale string) string {
	s := translated
	if IsChineseVariant(targetLocale) {
		s = strings.ReplaceAll(s, "<strong>", "")
		s = strings.ReplaceAll(s, "</strong>", "")
	}
	for _, st := range chain {
		s = st.apply(s)
	}
	return s
}
