// Package langfile implements parsing and formatting of platform
// language files.
//
// Format: key-value pairs, one per line. Lines starting with '#' are
// comments; blank lines carry no entry. Two codec variants exist: the
// plain line-delimited text format used by the email platform's
// language files, and a YAML variant for structured documents. The
// translation pipeline is agnostic to which variant is active — it
// only uses the Codec operations.
package langfile

// Kind classifies a line of a language file.
type Kind int

const (
	// Blank is a whitespace-only line, or a line the codec could not
	// parse as an entry. Malformed lines are deliberately treated as
	// Blank and dropped rather than rejected.
	Blank Kind = iota
	// Comment is a comment line.
	Comment
	// KeyValue is a key-value entry.
	KeyValue
)

// Line is one classified line of a language file. Key and Value are
// set only for KeyValue lines.
type Line struct {
	Kind  Kind
	Key   string
	Value string
}

// Codec parses and renders one language-file format. Implementations
// must keep Classify and Format inverse in shape: for keys and values
// containing no separator and no surrounding whitespace,
// Classify(Format(k, v)) yields KeyValue(k, v).
type Codec interface {
	// Classify parses one raw line into exactly one of
	// Blank, Comment, or KeyValue.
	Classify(raw string) Line
	// Format renders a key-value pair back into a line.
	Format(key, value string) string
	// IsComment reports whether raw is a comment line.
	IsComment(raw string) bool
	// ParseCatalog parses a whole file into a key catalog.
	ParseCatalog(data []byte) (*Catalog, error)
}
