// Package pipeline composes the sequence operations into the
// filter-square-sum report that the CLI prints.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/numflow/internal/display"
	"github.com/standardbeagle/numflow/internal/seq"
)

// Report holds every stage of one pipeline run. Each field is an
// independently owned slice; mutating one stage does not affect the
// others or the caller's input.
type Report struct {
	Input        []int `json:"input"`
	Evens        []int `json:"evens"`
	SquaredEvens []int `json:"squared_evens"`
	Sum          int   `json:"sum"`
}

// Run filters the even values of numbers, squares them, and sums the
// squares. The input slice is copied, not retained.
func Run(numbers []int) Report {
	evens := seq.Evens(numbers)
	squared := seq.Squares(evens)
	return Report{
		Input:        seq.Collect(seq.From(numbers)),
		Evens:        evens,
		SquaredEvens: squared,
		Sum:          seq.Total(squared),
	}
}

// Format renders the report as four newline-terminated text lines.
func (r Report) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original numbers: %s\n", display.List(display.Labels(r.Input)))
	fmt.Fprintf(&sb, "Even numbers: %s\n", display.List(display.Labels(r.Evens)))
	fmt.Fprintf(&sb, "Squared even numbers: %s\n", display.List(display.Labels(r.SquaredEvens)))
	fmt.Fprintf(&sb, "Sum of squared even numbers: %d\n", r.Sum)
	return sb.String()
}
