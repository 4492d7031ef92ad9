package render

import (
	"fmt"
	"strings"
)

// OutputMode selects how a Renderer formats its output.
type OutputMode string

const (
	// ModeAuto picks ModeText on a terminal and ModeMarkdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText is a styled box table for humans.
	ModeText OutputMode = "text"
	// ModeMarkdown is a pipe table, stable for diffs and documents.
	ModeMarkdown OutputMode = "markdown"
	// ModeCSV is one comma-separated line per row.
	ModeCSV OutputMode = "csv"
	// ModeJSON is machine-readable.
	ModeJSON OutputMode = "json"
)

// Modes lists the accepted mode names in help order.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeCSV, ModeJSON}

// ParseMode validates a mode name. "md" is accepted for markdown and "" for auto.
func ParseMode(s string) (OutputMode, error) {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case "md":
		return ModeMarkdown, nil
	case ModeAuto, ModeText, ModeMarkdown, ModeCSV, ModeJSON:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want one of %v)", s, Modes)
	}
}
