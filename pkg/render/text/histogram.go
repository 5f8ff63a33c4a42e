package text

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Histogram renders probabilities as a horizontal bar chart, sorted by
// probability descending with ties broken by label. Bars scale relative
// to the largest probability over the given width.
func Histogram(probabilities map[string]float64, width int) string {
	if len(probabilities) == 0 {
		return "No probabilities available."
	}
	if width <= 0 {
		width = DefaultWidth
	}

	type entry struct {
		label string
		prob  float64
	}
	entries := make([]entry, 0, len(probabilities))
	maxProb := 0.0
	for label, p := range probabilities {
		entries = append(entries, entry{label, p})
		maxProb = max(maxProb, p)
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.prob, a.prob); c != 0 {
			return c
		}
		return cmp.Compare(a.label, b.label)
	})

	lines := []string{"Probability Histogram:", strings.Repeat("=", width+20)}
	for _, e := range entries {
		barLen := 0
		if maxProb > 0 {
			barLen = int(e.prob / maxProb * float64(width))
		}
		lines = append(lines, fmt.Sprintf("|%s>: %-*s %6.2f%%", e.label, width, blocks(barLen), e.prob*100))
	}
	lines = append(lines, strings.Repeat("=", width+20))
	return strings.Join(lines, "\n")
}
