// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"cnvdist/internal/writers"
)

// FormatJSON renders api.ReportV1.
const FormatJSON = "json"

func init() { writers.Register(FormatJSON, writeJSONPayload) }

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPI(r))
}

func writeJSONPayload(w io.Writer, payload interface{}) error {
	r, ok := payload.(Report)
	if !ok {
		return fmt.Errorf("json writer: unexpected payload %T", payload)
	}
	return WriteJSON(w, r)
}
