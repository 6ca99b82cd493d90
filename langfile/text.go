package langfile

import "strings"

// TextCodec handles the platform's line-delimited "key: value" format.
// The first colon is the separator; '#' starts a comment.
type TextCodec struct{}

// Classify parses one raw line. A line is a Comment if its first
// non-space character is '#', Blank if it trims to nothing, and a
// KeyValue split on the first colon otherwise, with both sides
// trimmed. Lines with no colon classify as Blank — the lenient-parsing
// policy for malformed lines is to drop them silently.
func (TextCodec) Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Line{Kind: Blank}
	case strings.HasPrefix(trimmed, "#"):
		return Line{Kind: Comment}
	}
	i := strings.IndexByte(trimmed, ':')
	if i < 0 {
		return Line{Kind: Blank}
	}
	return Line{
		Kind:  KeyValue,
		Key:   strings.TrimSpace(trimmed[:i]),
		Value: strings.TrimSpace(trimmed[i+1:]),
	}
}

// Format renders "key: value". Exact inverse shape of Classify for
// keys and values free of colons and surrounding whitespace.
func (TextCodec) Format(key, value string) string {
	return key + ": " + value
}

// IsComment reports whether raw is a comment line.
func (TextCodec) IsComment(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "#")
}

// ParseCatalog scans a whole file and collects its keys in document
// order. Duplicate keys collapse to the first occurrence.
func (c TextCodec) ParseCatalog(data []byte) (*Catalog, error) {
	cat := NewCatalog()
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	for _, raw := range strings.Split(text, "\n") {
		if ln := c.Classify(raw); ln.Kind == KeyValue {
			cat.Add(ln.Key)
		}
	}
	return cat, nil
}
