package pipeline

import (
	"fmt"
	"os"
	"time"
)

// Writer appends locale blocks to the destination file. The file is
// opened in append mode per write and is never truncated — repeated
// runs accumulate blocks rather than overwrite them.
type Writer struct {
	// Path is the destination file. Created if missing.
	Path string
	// Now supplies the header timestamp; nil means time.Now.
	Now func() time.Time
}

// AppendBlock writes one locale's block, preceded by a blank line and
// a timestamped comment header. Empty blocks write nothing at all.
func (w *Writer) AppendBlock(block string) error {
	if block == "" {
		return nil
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", w.Path, err)
	}
	defer f.Close()

	header := fmt.Sprintf("\n# \n# Keys translated automatically on %s.\n# \n",
		now().Format("1/2/2006"))
	if _, err := f.WriteString(header + block + "\n"); err != nil {
		return fmt.Errorf("appending to %s: %w", w.Path, err)
	}
	return nil
}
