// Package report assembles full text reports from analysis records.
//
// A report is three fixed sections: measurement results, quantum state,
// and circuit analysis. Each section degrades to an explanatory line when
// its inputs are missing, so every record renders to something readable.
package report

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/render/text"
)

// Options controls report rendering.
type Options struct {
	// HistogramWidth is the bar width of the probability histogram.
	HistogramWidth int `json:"histogram_width"`

	// Bins is the bin count of the amplitude distribution section.
	Bins int `json:"bins"`

	// Sort orders the state vector table.
	Sort text.SortKey `json:"sort"`
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		HistogramWidth: text.DefaultWidth,
		Bins:           text.DefaultBins,
		Sort:           text.SortAmplitude,
	}
}

// ValidateAndSetDefaults replaces zero values with defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.HistogramWidth <= 0 {
		o.HistogramWidth = text.DefaultWidth
	}
	if o.Bins <= 0 {
		o.Bins = text.DefaultBins
	}
	if o.Sort == "" {
		o.Sort = text.SortAmplitude
	}
	return nil
}

// Display order and titles of the entanglement metrics section.
var metricTitles = []struct {
	key   string
	title string
}{
	{analyze.MetricVonNeumannEntropy, "Von Neumann Entropy"},
	{analyze.MetricEntanglementEntropy, "Entanglement Entropy"},
	{analyze.MetricConcurrence, "Concurrence"},
}

// Comprehensive renders the full three-section report for a record.
func Comprehensive(rec *analyze.Record, opts Options) string {
	opts.ValidateAndSetDefaults()

	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add(strings.Repeat("=", 100))
	add("COMPREHENSIVE QUANTUM CIRCUIT ANALYSIS REPORT")
	add(strings.Repeat("=", 100))
	add("")

	add(tabBox("TAB 1: RESULTS", 30, 53)...)
	add("")
	add("Measurement Outcomes and Probabilities:")
	add(strings.Repeat("-", 100))
	if probs := rec.Probabilities(); len(probs) > 0 {
		add(text.Histogram(probs, opts.HistogramWidth))
	} else {
		add("No measurement probabilities available.")
	}
	add("", "")

	add(tabBox("TAB 2: STATE", 30, 54)...)
	add("")
	add("Full Quantum State Representation:")
	add(strings.Repeat("-", 100))
	state := rec.State()
	if len(state) > 0 {
		add(text.StateTable(state, rec.Qubits(), opts.Sort))
		add("", "")
		add(text.BlochSphere(state, rec.Qubits()))
		add("", "")
		add(text.PhaseDiagram(state, rec.Qubits()))
		add("", "")
		add(text.AmplitudeDistribution(state, opts.Bins))
	} else {
		add("No state vector available.")
	}
	add("", "")

	add(tabBox("TAB 3: ANALYSIS", 28, 54)...)
	add("")
	add("Metrics and Performance Indicators:")
	add(strings.Repeat("-", 100))
	add("Circuit Metrics:")
	add(fmt.Sprintf("  Backend: %s", rec.Backend()))
	add(fmt.Sprintf("  Number of Qubits: %d", rec.Qubits()))
	add(fmt.Sprintf("  Circuit Depth: %d", rec.Depth()))
	add(fmt.Sprintf("  Total Operations: %d", rec.Operations()))
	add(fmt.Sprintf("  Measurements: %d", rec.Measurements()))
	add(fmt.Sprintf("  Has Measurements: %t", rec.HasMeasurements()))
	add("")

	add("Operations by Type:")
	ops := rec.OpsByType()
	for _, name := range slices.Sorted(maps.Keys(ops)) {
		add(fmt.Sprintf("  %s: %d", name, ops[name]))
	}
	add("")

	if len(state) > 0 && rec.Qubits() >= 2 {
		add(text.EntanglementHeatmap(state, rec.Qubits()))
		add("")
		if metrics := analyze.EntanglementMetrics(state); len(metrics) > 0 {
			add("Entanglement Metrics:")
			for _, m := range metricTitles {
				if v, ok := metrics[m.key]; ok {
					add(fmt.Sprintf("  %s: %.6f", m.title, v))
				}
			}
			add("")
		}
	}

	add("Performance Indicators:")
	if rec.Qubits() > 0 {
		add(fmt.Sprintf("  Operations per Qubit: %.2f", float64(rec.Operations())/float64(rec.Qubits())))
	}
	if rec.Depth() > 0 {
		add(fmt.Sprintf("  Operations per Depth Layer: %.2f", float64(rec.Operations())/float64(rec.Depth())))
	}
	if probs := rec.Probabilities(); len(probs) > 0 {
		minProb, maxProb := probRange(probs)
		add(fmt.Sprintf("  Probability Spread: %.6f", maxProb-minProb))
		add(fmt.Sprintf("  Max Probability: %.6f", maxProb))
		add(fmt.Sprintf("  Min Probability: %.6f", minProb))
	}

	add("")
	add(strings.Repeat("=", 100))
	add("End of Report")
	add(strings.Repeat("=", 100))
	return strings.Join(lines, "\n")
}

// tabBox draws a section banner. Pad counts are part of the fixed report
// layout, not derived from the title width.
func tabBox(title string, left, right int) []string {
	return []string{
		"┌" + strings.Repeat("─", 98) + "┐",
		"│" + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + "│",
		"└" + strings.Repeat("─", 98) + "┘",
	}
}

func probRange(probs map[string]float64) (minProb, maxProb float64) {
	first := true
	for _, p := range probs {
		if first {
			minProb, maxProb = p, p
			first = false
			continue
		}
		minProb = min(minProb, p)
		maxProb = max(maxProb, p)
	}
	return minProb, maxProb
}
