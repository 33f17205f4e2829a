package util

import "fmt"

// FormatPercent formats a vertical scroll position as a pager-style
// percentage indicator.
func FormatPercent(offset, max float64) string {
	if max <= 0 {
		return "All"
	}
	p := int(offset / max * 100)
	switch {
	case p <= 0:
		return "Top"
	case p >= 100:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", p)
	}
}

// FormatPosition formats a 1-based line position as "line/total".
func FormatPosition(line, total int) string {
	if line < 1 {
		line = 1
	}
	if line > total {
		line = total
	}
	return fmt.Sprintf("%d/%d", line, total)
}
