// Package analyze builds analysis records from circuits.
//
// A Record captures the structural profile of a circuit (depth, operation
// counts, measurement counts) together with the simulated final state when
// one can be derived. Records are immutable once constructed; accessors
// return copies of internal slices and maps.
//
// State-dependent metrics (Bloch coordinates, reduced density matrices,
// entanglement measures) are exposed as free functions over state vectors
// so they can be applied to any record that carries a state.
package analyze

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/simulate"
)

// UnknownBackend labels records whose producer was not recorded.
const UnknownBackend = "unknown"

// Input carries the raw fields used to construct a Record. Analyze fills
// one from a live circuit; decoders fill one from stored documents.
type Input struct {
	// Backend labels the producer of the circuit. Empty defaults to
	// UnknownBackend.
	Backend string

	// Qubits is the circuit width.
	Qubits int

	// Depth is the critical-path length of the circuit.
	Depth int

	// Operations is the total instruction count, excluding barriers.
	Operations int

	// OpsByType counts instructions per gate name, including barriers.
	OpsByType map[string]int

	// Measurements is the number of measurement instructions.
	Measurements int

	// State is the simulated final state vector, or nil when the circuit
	// could not be simulated. When present it must hold exactly 2^Qubits
	// amplitudes.
	State []complex128

	// Probabilities maps basis-state labels to measurement probabilities.
	// When nil and State is present, probabilities are derived from the
	// state. Labels shorter than the circuit width are zero-padded on the
	// left; qubit 0 is the most significant bit.
	Probabilities map[string]float64
}

// Record is an immutable analysis result for a single circuit.
type Record struct {
	backend      string
	qubits       int
	depth        int
	operations   int
	opsByType    map[string]int
	measurements int
	state        []complex128
	probs        map[string]float64
}

// New validates in and builds a Record from it.
//
// Counts must be non-negative and the measurement count may not exceed the
// operation count. A present state vector must have exactly 2^Qubits
// amplitudes. Provided probability labels must be binary strings no wider
// than the qubit count; they are normalized to full width. Probabilities
// at or below ProbabilityFloor are dropped.
func New(in Input) (*Record, error) {
	if in.Qubits < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "qubit count cannot be negative, got %d", in.Qubits)
	}
	if in.Depth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "depth cannot be negative, got %d", in.Depth)
	}
	if in.Operations < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "operation count cannot be negative, got %d", in.Operations)
	}
	if in.Measurements < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "measurement count cannot be negative, got %d", in.Measurements)
	}
	if in.Measurements > in.Operations {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"measurement count %d exceeds operation count %d", in.Measurements, in.Operations)
	}

	backend := in.Backend
	if backend == "" {
		backend = UnknownBackend
	}

	var state []complex128
	if in.State != nil {
		want := 1 << in.Qubits
		if len(in.State) != want {
			return nil, errors.New(errors.ErrCodeInvalidState,
				"state vector has %d amplitudes, want %d for %d qubits", len(in.State), want, in.Qubits)
		}
		state = slices.Clone(in.State)
	}

	probs, err := normalizeProbabilities(in.Probabilities, state, in.Qubits)
	if err != nil {
		return nil, err
	}

	opsByType := maps.Clone(in.OpsByType)
	if opsByType == nil {
		opsByType = map[string]int{}
	}

	return &Record{
		backend:      backend,
		qubits:       in.Qubits,
		depth:        in.Depth,
		operations:   in.Operations,
		opsByType:    opsByType,
		measurements: in.Measurements,
		state:        state,
		probs:        probs,
	}, nil
}

// Analyze profiles c and simulates its final state.
//
// Simulation failures (mid-circuit measurements, resets, circuits beyond
// the simulator cap) degrade the record to its structural fields instead
// of failing the analysis. Structural problems with the circuit itself are
// reported as errors.
func Analyze(c *circuit.Circuit) (*Record, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "circuit is nil")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCircuit, err, "analyze circuit")
	}

	in := Input{
		Backend:      c.Backend,
		Qubits:       c.Qubits,
		Depth:        c.Depth(),
		Operations:   c.Size(),
		OpsByType:    c.OpsByType(),
		Measurements: c.Measurements(),
	}
	if state, err := simulate.StateVector(c); err == nil {
		in.State = state
	}
	return New(in)
}

// normalizeProbabilities validates provided probabilities or derives them
// from the state vector. The result is nil when neither source yields an
// entry above ProbabilityFloor.
func normalizeProbabilities(provided map[string]float64, state []complex128, qubits int) (map[string]float64, error) {
	probs := make(map[string]float64)

	switch {
	case provided != nil:
		for label, p := range provided {
			if err := errors.ValidateBasisLabel(label); err != nil {
				return nil, err
			}
			if len(label) > qubits {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"basis label %q is wider than %d qubits", label, qubits)
			}
			if p < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"probability for %q cannot be negative, got %g", label, p)
			}
			padded := strings.Repeat("0", qubits-len(label)) + label
			if _, ok := probs[padded]; ok {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"duplicate basis label %q after zero padding", padded)
			}
			if p > ProbabilityFloor {
				probs[padded] = p
			}
		}
	case state != nil:
		for i, amp := range state {
			if p := real(amp)*real(amp) + imag(amp)*imag(amp); p > ProbabilityFloor {
				probs[fmt.Sprintf("%0*b", qubits, i)] = p
			}
		}
	}

	if len(probs) == 0 {
		return nil, nil
	}
	return probs, nil
}

// Backend reports the label of the producer that built the circuit.
func (r *Record) Backend() string { return r.backend }

// Qubits returns the width of the analyzed circuit.
func (r *Record) Qubits() int { return r.qubits }

// Depth returns the critical-path length of the circuit.
func (r *Record) Depth() int { return r.depth }

// Operations returns the total instruction count, excluding barriers.
func (r *Record) Operations() int { return r.operations }

// OpsByType returns a copy of the per-gate instruction counts. Barriers
// appear here even though they do not contribute to Operations.
func (r *Record) OpsByType() map[string]int { return maps.Clone(r.opsByType) }

// Measurements returns the number of measurement instructions.
func (r *Record) Measurements() int { return r.measurements }

// HasMeasurements reports whether the circuit measures any qubit.
func (r *Record) HasMeasurements() bool { return r.measurements > 0 }

// HasState reports whether a final state vector is attached.
func (r *Record) HasState() bool { return r.state != nil }

// State returns a copy of the final state vector, or nil when the circuit
// could not be simulated.
func (r *Record) State() []complex128 { return slices.Clone(r.state) }

// Probabilities returns a copy of the measurement probabilities keyed by
// basis-state label, or nil when none are attached. Qubit 0 is the most
// significant bit of each label.
func (r *Record) Probabilities() map[string]float64 { return maps.Clone(r.probs) }
