// Package output formats a layout build result and its change report for
// display. It is extendable and provides three formats: human, JSON, and
// summary.
package output

import (
	"fmt"
	"strings"

	"kijilayout/internal/core"
	"kijilayout/internal/report"
)

// Format is an enum type representing the available output formats.
type Format string

const (
	FormatHuman   Format = "human"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

// Formatter renders a built table layout and, when one is available, the
// change report against its prior layout.
type Formatter interface {
	FormatLayout(*core.TableLayout) (string, error)
	FormatReport(*report.Report) (string, error)
}

// NewFormatter creates a new Formatter instance based on the given name.
// If no format is specified, defaults to human.
func NewFormatter(name string) (Formatter, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case "", FormatHuman:
		return humanFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatSummary:
		return summaryFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s; use 'human', 'json', or 'summary'", name)
	}
}
