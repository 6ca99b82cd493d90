package langfile

// Catalog is the ordered set of keys seen during one locale's pass
// over the source file. A fresh Catalog is built at the start of each
// locale and dropped at the end, so no state leaks between locales.
type Catalog struct {
	keys  []string
	index map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add records key and reports whether it was new. Duplicate keys are
// not re-added; the first occurrence wins.
func (c *Catalog) Add(key string) bool {
	if _, ok := c.index[key]; ok {
		return false
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	return true
}

// Has reports whether key is in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns all keys in first-seen order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of distinct keys.
func (c *Catalog) Len() int {
	return len(c.keys)
}
