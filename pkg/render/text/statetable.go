package text

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"
	"strings"
)

// SortKey selects the row ordering of StateTable.
type SortKey string

// Sort keys accepted by StateTable. Numeric keys sort descending;
// SortBasisState sorts labels ascending and is the fallback for
// unrecognized keys.
const (
	SortAmplitude  SortKey = "amplitude"
	SortReal       SortKey = "real"
	SortImaginary  SortKey = "imaginary"
	SortPhase      SortKey = "phase"
	SortBasisState SortKey = "basis_state"
)

// StateTable renders the non-negligible amplitudes as a fixed-width table
// of real part, imaginary part, magnitude, and phase in degrees. An empty
// sort key falls back to SortAmplitude. Ties keep basis-state order.
func StateTable(state []complex128, qubits int, sortBy SortKey) string {
	if len(state) == 0 {
		return "No state vector available."
	}
	if sortBy == "" {
		sortBy = SortAmplitude
	}

	type row struct {
		label string
		re    float64
		im    float64
		amp   float64
		phase float64
	}
	rows := make([]row, 0, len(state))
	for i, c := range state {
		amp := cmplx.Abs(c)
		if amp <= AmplitudeFloor {
			continue
		}
		rows = append(rows, row{
			label: basisLabel(i, qubits),
			re:    real(c),
			im:    imag(c),
			amp:   amp,
			phase: phaseDegrees(c),
		})
	}

	switch sortBy {
	case SortAmplitude:
		slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(b.amp, a.amp) })
	case SortReal:
		slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(b.re, a.re) })
	case SortImaginary:
		slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(b.im, a.im) })
	case SortPhase:
		slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(b.phase, a.phase) })
	default:
		slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(a.label, b.label) })
	}

	lines := []string{
		"State Vector Table (sortable-like structure):",
		strings.Repeat("=", 90),
		fmt.Sprintf("%-15s %-15s %-15s %-15s %-15s", "Basis State", "Real", "Imaginary", "Amplitude", "Phase (deg)"),
		strings.Repeat("-", 90),
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("|%s>:     %14.6f %14.6f %14.6f %14.2f", r.label, r.re, r.im, r.amp, r.phase))
	}
	lines = append(lines,
		strings.Repeat("=", 90),
		fmt.Sprintf("Note: Table sorted by %s. Total states: %d", sortBy, len(rows)),
	)
	return strings.Join(lines, "\n")
}
