// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Writer renders one payload to w.
type Writer func(w io.Writer, payload interface{}) error

// Report writers by format name. Renderers register themselves in init().
var reportWriters = map[string]Writer{}

// Register installs fn for format (last registration wins).
func Register(format string, fn Writer) { reportWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Has reports whether format has a writer.
func Has(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Write dispatches payload to the writer registered for format.
func Write(format string, w io.Writer, payload interface{}) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
