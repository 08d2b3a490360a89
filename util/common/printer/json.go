package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JsonOptions provides configuration for the JSON output
type JsonOptions struct {
	// Indent specifies if pretty-printing should be used
	Indent bool
	// IndentSize is the number of spaces used for each indentation level
	IndentSize int
}

// DefaultJsonOptions returns standard options for JSON printing
func DefaultJsonOptions() JsonOptions {
	return JsonOptions{
		Indent:     true,
		IndentSize: 2,
	}
}

// PrintJson writes res to w as indented JSON.
func PrintJson(w io.Writer, res any) error {
	return PrintJsonWithOptions(w, res, DefaultJsonOptions())
}

// PrintJsonWithOptions writes res to w as JSON with the specified options
func PrintJsonWithOptions(w io.Writer, res any, options JsonOptions) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	if options.Indent {
		encoder.SetIndent("", strings.Repeat(" ", options.IndentSize))
	}

	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
