package display

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/numflow/internal/seq"
)

// Labels converts each value to its canonical base-10 text form,
// preserving order.
func Labels[T seq.Integer](values []T) []string {
	return seq.Collect(seq.Map(seq.From(values), func(n T) string {
		return fmt.Sprintf("%d", n)
	}))
}

// List renders labels as a braced, comma-separated list of quoted
// items: {"a", "b", "c"}. Empty input renders {}. Quote characters
// embedded in a label are not escaped.
func List(labels []string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, label := range labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('"')
		sb.WriteString(label)
		sb.WriteByte('"')
	}
	sb.WriteByte('}')
	return sb.String()
}
