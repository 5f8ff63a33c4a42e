// Package circuit provides the quantum circuit model.
//
// A Circuit is an ordered sequence of instructions (Ops) over a fixed
// register of qubits and classical bits. The model is purely structural:
// instructions are identified by gate name, and the package validates
// register bounds but not gate semantics. Gate catalog lookups and unitary
// matrices live in the gate package; execution lives in simulate.
//
// Qubit 0 is the most significant bit of a computational basis label, so
// for a two-qubit register the label "10" means qubit 0 is |1> and qubit 1
// is |0>.
package circuit

import (
	"github.com/matzehuels/qscope/pkg/errors"
)

// Op is a single circuit instruction.
type Op struct {
	// Gate is the canonical lowercase gate identifier ("h", "cx", "measure").
	Gate string `json:"gate" toml:"gate"`

	// Qubits lists the qubit arguments in gate order (control first for
	// controlled gates).
	Qubits []int `json:"qubits" toml:"qubits"`

	// Clbits lists the classical bits a measurement writes to. Empty means
	// the qubit indices are reused. Unused for non-measure instructions.
	Clbits []int `json:"clbits,omitempty" toml:"clbits,omitempty"`

	// Params holds angle parameters for parameterized gates.
	Params []float64 `json:"params,omitempty" toml:"params,omitempty"`
}

// TargetClbits returns the classical bits a measure instruction writes to.
// When Clbits is empty the qubit indices are reused.
func (o Op) TargetClbits() []int {
	if len(o.Clbits) > 0 {
		return o.Clbits
	}
	return o.Qubits
}

// Circuit is an ordered sequence of instructions over a fixed register.
type Circuit struct {
	Name    string `json:"name,omitempty" toml:"name,omitempty"`
	Backend string `json:"backend,omitempty" toml:"backend,omitempty"`
	Qubits  int    `json:"qubits" toml:"qubits"`
	Clbits  int    `json:"clbits,omitempty" toml:"clbits,omitempty"`
	Ops     []Op   `json:"ops" toml:"ops"`
}

// DefaultBackend labels circuits built by this package.
const DefaultBackend = "qscope"

// New creates an empty circuit with the given name and qubit count.
// The classical register matches the qubit register, so every qubit can be
// measured into the bit of the same index.
func New(name string, qubits int) (*Circuit, error) {
	if err := errors.ValidateCircuitName(name); err != nil {
		return nil, err
	}
	if qubits < 1 {
		return nil, errors.New(errors.ErrCodeInvalidCircuit, "circuit needs at least one qubit, got %d", qubits)
	}
	return &Circuit{
		Name:    name,
		Backend: DefaultBackend,
		Qubits:  qubits,
		Clbits:  qubits,
	}, nil
}

// Apply appends an instruction acting on the given qubits.
func (c *Circuit) Apply(gate string, qubits ...int) error {
	return c.Append(Op{Gate: gate, Qubits: qubits})
}

// ApplyParam appends a parameterized instruction.
func (c *Circuit) ApplyParam(gate string, params []float64, qubits ...int) error {
	return c.Append(Op{Gate: gate, Qubits: qubits, Params: params})
}

// Measure appends a measurement of qubit q into classical bit cl.
func (c *Circuit) Measure(q, cl int) error {
	return c.Append(Op{Gate: "measure", Qubits: []int{q}, Clbits: []int{cl}})
}

// MeasureAll measures every qubit into the classical bit of the same index.
func (c *Circuit) MeasureAll() error {
	for q := 0; q < c.Qubits; q++ {
		if err := c.Measure(q, q); err != nil {
			return err
		}
	}
	return nil
}

// Barrier appends a barrier spanning all qubits.
func (c *Circuit) Barrier() error {
	qubits := make([]int, c.Qubits)
	for q := range qubits {
		qubits[q] = q
	}
	return c.Append(Op{Gate: "barrier", Qubits: qubits})
}

// Append validates op against the register and appends it.
func (c *Circuit) Append(op Op) error {
	if err := c.checkOp(op); err != nil {
		return err
	}
	c.Ops = append(c.Ops, op)
	return nil
}

// Validate checks every instruction against the register bounds. It is
// intended for circuits built by decoding rather than through Append.
func (c *Circuit) Validate() error {
	if c.Qubits < 1 {
		return errors.New(errors.ErrCodeInvalidCircuit, "circuit needs at least one qubit, got %d", c.Qubits)
	}
	if c.Clbits < 0 {
		return errors.New(errors.ErrCodeInvalidCircuit, "negative classical register size %d", c.Clbits)
	}
	for i, op := range c.Ops {
		if err := c.checkOp(op); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCircuit, err, "instruction %d", i)
		}
	}
	return nil
}

func (c *Circuit) checkOp(op Op) error {
	if err := errors.ValidateGateName(op.Gate); err != nil {
		return err
	}
	if len(op.Qubits) == 0 {
		return errors.New(errors.ErrCodeInvalidCircuit, "instruction %q has no qubit arguments", op.Gate)
	}

	seen := make(map[int]bool, len(op.Qubits))
	for _, q := range op.Qubits {
		if q < 0 || q >= c.Qubits {
			return errors.New(errors.ErrCodeInvalidCircuit,
				"instruction %q addresses qubit %d outside register of size %d", op.Gate, q, c.Qubits)
		}
		if seen[q] {
			return errors.New(errors.ErrCodeInvalidCircuit,
				"instruction %q addresses qubit %d twice", op.Gate, q)
		}
		seen[q] = true
	}

	if op.Gate == "measure" {
		clbits := op.TargetClbits()
		if len(clbits) != len(op.Qubits) {
			return errors.New(errors.ErrCodeInvalidCircuit,
				"measure targets %d classical bit(s) for %d qubit(s)", len(clbits), len(op.Qubits))
		}
		for _, cl := range clbits {
			if cl < 0 || cl >= c.Clbits {
				return errors.New(errors.ErrCodeInvalidCircuit,
					"measure addresses classical bit %d outside register of size %d", cl, c.Clbits)
			}
		}
	} else if len(op.Clbits) > 0 {
		return errors.New(errors.ErrCodeInvalidCircuit,
			"instruction %q cannot target classical bits", op.Gate)
	}

	return nil
}
