package report

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/render/text"
)

// Compact renders the record as plain key/value lines suitable for
// grepping and diffing. A non-empty label becomes the first line.
func Compact(rec *analyze.Record, label string) string {
	var lines []string
	if label != "" {
		lines = append(lines, label)
	}
	lines = append(lines,
		fmt.Sprintf("Backend: %s", rec.Backend()),
		fmt.Sprintf("Qubits: %d", rec.Qubits()),
		fmt.Sprintf("Depth: %d", rec.Depth()),
		fmt.Sprintf("Operations: %d", rec.Operations()),
		fmt.Sprintf("Operations by type: %s", opsByTypeLine(rec.OpsByType())),
		fmt.Sprintf("Measurements: %d", rec.Measurements()),
		fmt.Sprintf("Has measurements: %t", rec.HasMeasurements()),
	)

	if state := rec.State(); len(state) > 0 {
		lines = append(lines, "", "State Vector:")
		for i, c := range state {
			if cmplx.Abs(c) <= text.AmplitudeFloor {
				continue
			}
			label := fmt.Sprintf("%0*b", rec.Qubits(), i)
			lines = append(lines, "  "+formatAmplitude(label, c))
		}
	}

	if probs := rec.Probabilities(); len(probs) > 0 {
		lines = append(lines, "", "Probabilities:")
		type entry struct {
			label string
			prob  float64
		}
		entries := make([]entry, 0, len(probs))
		for label, p := range probs {
			entries = append(entries, entry{label, p})
		}
		slices.SortFunc(entries, func(a, b entry) int {
			if c := cmp.Compare(b.prob, a.prob); c != 0 {
				return c
			}
			return cmp.Compare(a.label, b.label)
		})
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("  |%s>: %.6f (%.2f%%)", e.label, e.prob, e.prob*100))
		}
	}

	return strings.Join(lines, "\n")
}

// formatAmplitude writes c in pure-real, pure-imaginary, or mixed shape
// depending on which parts are significant.
func formatAmplitude(label string, c complex128) string {
	re, im := real(c), imag(c)
	switch {
	case math.Abs(im) < text.AmplitudeFloor:
		return fmt.Sprintf("|%s>: %.6f", label, re)
	case math.Abs(re) < text.AmplitudeFloor:
		return fmt.Sprintf("|%s>: %.6fj", label, im)
	default:
		sign := "+"
		if im < 0 {
			sign = "-"
		}
		return fmt.Sprintf("|%s>: %.6f %s %.6fj", label, re, sign, math.Abs(im))
	}
}

// opsByTypeLine flattens gate counts into one sorted line.
func opsByTypeLine(ops map[string]int) string {
	if len(ops) == 0 {
		return "none"
	}
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s: %d", name, ops[name])
	}
	return strings.Join(pairs, ", ")
}
