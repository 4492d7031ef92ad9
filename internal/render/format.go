package render

import (
	"fmt"
	"strings"
)

// FormatHeader returns a markdown header of the given level (clamped to 1..6).
func FormatHeader(level int, title string) string {
	level = min(max(level, 1), 6)

	return strings.Repeat("#", level) + " " + title
}

// FormatKeyValue returns a bold markdown key followed by its value.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("**%s:** %s", key, value)
}
