package pipeline

import (
	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/simulate"
)

// Simulate computes the final state of the circuit, honoring the pipeline
// width cap in addition to the simulator's own limit.
func Simulate(c *circuit.Circuit, opts Options) ([]complex128, error) {
	opts.SetAnalyzeDefaults()
	if c.Qubits > opts.MaxQubits {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"circuit has %d qubits, pipeline cap is %d", c.Qubits, opts.MaxQubits)
	}
	return simulate.StateVector(c)
}

// Profile builds the analysis record for a circuit. A nil state produces a
// degraded record holding only the structural fields, which is how
// simulation failures surface to consumers.
func Profile(c *circuit.Circuit, state []complex128) (*analyze.Record, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "circuit is nil")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCircuit, err, "profile circuit")
	}

	return analyze.New(analyze.Input{
		Backend:      c.Backend,
		Qubits:       c.Qubits,
		Depth:        c.Depth(),
		Operations:   c.Size(),
		OpsByType:    c.OpsByType(),
		Measurements: c.Measurements(),
		State:        state,
	})
}
