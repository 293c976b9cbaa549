// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"cnvdist/internal/writers"
)

// FormatText is the default, one-line format.
const FormatText = "text"

func init() { writers.Register(FormatText, writeTextPayload) }

// WriteText prints the score line: "Score: <value> * 10^-1".
func WriteText(w io.Writer, r Report) error {
	_, err := fmt.Fprintln(w, r.Result.String())
	return err
}

func writeTextPayload(w io.Writer, payload interface{}) error {
	r, ok := payload.(Report)
	if !ok {
		return fmt.Errorf("text writer: unexpected payload %T", payload)
	}
	return WriteText(w, r)
}
