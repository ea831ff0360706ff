package report

import (
	"encoding/json"
	"io"
	"time"
)

// timePrecision rounds durations for display.
const timePrecision = time.Millisecond

// WriteJSON writes any report value as indented JSON, for machine
// consumers and CI pipelines.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
