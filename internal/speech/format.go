package speech

import (
	"fmt"
	"strings"
)

// FormatSegments renders one "[start - end] text" line per segment.
func FormatSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "[%.2f - %.2f] %s\n", s.Start, s.End, strings.TrimSpace(s.Text))
	}
	return b.String()
}
