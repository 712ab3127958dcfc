// Package output provides output formatting for pipeline results.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"strings"

	"cargo-market/core/engine"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable table
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "table", "cli" or "json"
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "table", "cli":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", raw)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes result to w
	Render(w io.Writer, result *engine.PipelineResult) error
}

// Options tune rendering
type Options struct {
	// ShowHistory includes equilibrium transfers and price steps
	ShowHistory bool

	// ShowUnavailable includes slots without a seller
	ShowUnavailable bool
}

// New returns the formatter for format
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatText:
		return &TextFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("no formatter for %q", format)
	}
}
