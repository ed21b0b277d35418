package output

import "fmt"

// Formatter renders a report for the CLI.
type Formatter interface {
	Format(report *Report) (string, error)
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console", "":
		return &ConsoleFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
