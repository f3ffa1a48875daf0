package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the full pricing result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render produces the JSON report
func (f *JSONFormatter) Render(w io.Writer, result *PricingResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
