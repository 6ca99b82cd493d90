package langfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles language files kept as flat YAML mappings. It
// implements the same operations as TextCodec so the pipeline can run
// over either format; YAML quoting rules apply to values on output.
type YAMLCodec struct{}

// Classify parses one raw line as a single-line YAML mapping document.
// Comments and blanks follow YAML conventions; anything that does not
// parse as a mapping classifies as Blank.
func (YAMLCodec) Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Line{Kind: Blank}
	case strings.HasPrefix(trimmed, "#"):
		return Line{Kind: Comment}
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return Line{Kind: Blank}
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return Line{Kind: Blank}
	}
	m := node.Content[0]
	if m.Kind != yaml.MappingNode || len(m.Content) < 2 {
		return Line{Kind: Blank}
	}
	return Line{
		Kind:  KeyValue,
		Key:   m.Content[0].Value,
		Value: m.Content[1].Value,
	}
}

// Format renders a single-pair YAML mapping line. Values that need
// YAML quoting get it; plain scalars render as "key: value".
func (YAMLCodec) Format(key, value string) string {
	b, err := yaml.Marshal(map[string]string{key: value})
	if err != nil {
		// Strings always marshal; keep the text shape as a fallback.
		return key + ": " + value
	}
	return strings.TrimRight(string(b), "\n")
}

// IsComment reports whether raw is a YAML comment line.
func (YAMLCodec) IsComment(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "#")
}

// ParseCatalog parses the whole document as a YAML mapping and
// collects its top-level keys in document order.
func (YAMLCodec) ParseCatalog(data []byte) (*Catalog, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing YAML catalog: %w", err)
	}
	cat := NewCatalog()
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return cat, nil
	}
	m := node.Content[0]
	if m.Kind != yaml.MappingNode {
		return cat, nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		cat.Add(m.Content[i].Value)
	}
	return cat, nil
}
