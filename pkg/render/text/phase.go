package text

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"
)

// PhaseDiagram renders the non-negligible amplitudes ordered by phase,
// with one bar for the phase angle normalized to [0, 360) and one for the
// magnitude.
func PhaseDiagram(state []complex128, qubits int) string {
	if len(state) == 0 {
		return "No state vector available for phase diagram."
	}

	type row struct {
		label string
		phase float64
		amp   float64
	}
	var rows []row
	for i, c := range state {
		amp := cmplx.Abs(c)
		if amp <= AmplitudeFloor {
			continue
		}
		rows = append(rows, row{basisLabel(i, qubits), phaseDegrees(c), amp})
	}
	slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(a.phase, b.phase) })

	lines := []string{
		"Phase Diagram:",
		strings.Repeat("=", 80),
		"Basis State Phase Visualization:",
		"",
		"Phase (degrees) vs Amplitude:",
		"",
	}
	for _, r := range rows {
		norm := math.Mod(r.phase, 360)
		if norm < 0 {
			norm += 360
		}
		phaseBar := blocks(int(norm / 360 * 40))
		ampBar := blocks(int(r.amp * 30))
		lines = append(lines, fmt.Sprintf("|%s>: Phase=%7.2f° [%-40s] Amp=[%s] %.4f", r.label, r.phase, phaseBar, ampBar, r.amp))
	}
	lines = append(lines, "", strings.Repeat("=", 80))
	return strings.Join(lines, "\n")
}
