// Package text renders analysis data as plain-text visualizations.
//
// Every renderer is a pure function over its inputs and tolerates missing
// data by returning a one-line explanatory message, so degraded records
// still produce output. Renderers share no state and are safe to run
// concurrently over one record.
package text

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultWidth is the bar width used by Histogram when the caller
	// passes a non-positive width.
	DefaultWidth = 50

	// DefaultBins is the bin count used by AmplitudeDistribution when
	// the caller passes a non-positive count.
	DefaultBins = 20

	// AmplitudeFloor is the magnitude below which amplitudes are treated
	// as zero and hidden from the visualizations.
	AmplitudeFloor = 1e-10
)

// basisLabel formats basis-state index i as a zero-padded binary string.
// Qubit 0 is the most significant bit.
func basisLabel(i, qubits int) string {
	return fmt.Sprintf("%0*b", qubits, i)
}

// phaseDegrees returns the argument of c in degrees.
func phaseDegrees(c complex128) float64 {
	return math.Atan2(imag(c), real(c)) * 180 / math.Pi
}

// blocks renders n full-intensity bar characters. Non-positive counts
// render as empty.
func blocks(n int) string {
	if n < 0 {
		return ""
	}
	return strings.Repeat("█", n)
}
