package text

import (
	"fmt"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AmplitudeDistribution renders a binned histogram of amplitude
// magnitudes with summary statistics. Bins span [min, max] of the
// observed magnitudes; a value exactly at the maximum lands in the last
// bin.
func AmplitudeDistribution(state []complex128, bins int) string {
	if len(state) == 0 {
		return "No state vector available for amplitude distribution."
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	var amps []float64
	for _, c := range state {
		if a := cmplx.Abs(c); a > AmplitudeFloor {
			amps = append(amps, a)
		}
	}
	if len(amps) == 0 {
		return "No significant amplitudes found."
	}

	minAmp, maxAmp := floats.Min(amps), floats.Max(amps)
	binWidth := 1.0
	if maxAmp > minAmp {
		binWidth = (maxAmp - minAmp) / float64(bins)
	}

	counts := make([]int, bins)
	maxCount := 0
	for _, a := range amps {
		idx := min(int((a-minAmp)/binWidth), bins-1)
		counts[idx]++
		maxCount = max(maxCount, counts[idx])
	}

	lines := []string{
		"Amplitude Distribution Plot:",
		strings.Repeat("=", 70),
		"",
		"Distribution:",
		"",
	}
	for i, count := range counts {
		start := minAmp + float64(i)*binWidth
		end := minAmp + float64(i+1)*binWidth
		barLen := 0
		if maxCount > 0 {
			barLen = int(float64(count) / float64(maxCount) * 50)
		}
		lines = append(lines, fmt.Sprintf("[%.4f-%.4f]: %s %d", start, end, blocks(barLen), count))
	}
	lines = append(lines,
		"",
		"Statistics:",
		fmt.Sprintf("  Min amplitude: %.6f", minAmp),
		fmt.Sprintf("  Max amplitude: %.6f", maxAmp),
		fmt.Sprintf("  Mean amplitude: %.6f", stat.Mean(amps, nil)),
		fmt.Sprintf("  Total states: %d", len(amps)),
		strings.Repeat("=", 70),
	)
	return strings.Join(lines, "\n")
}
