// Package simulate provides an exact state-vector simulator for circuits.
//
// The simulator evolves the 2^n amplitude vector from |0...0> through every
// unitary instruction. Basis indices are big-endian over the qubit register:
// qubit 0 is the most significant bit, so for two qubits index 2 is |10>.
//
// Measurements and resets are not unitary, so they cannot appear in the
// simulated portion of a circuit. StateVector strips final measurements
// (and trailing barriers) first, which makes the common pattern of a
// circuit ending in measure-all simulable; anything measured mid-circuit
// causes an error instead.
package simulate

import (
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/gate"
)

// MaxQubits bounds the register size. The amplitude vector grows as 2^n,
// so 24 qubits already needs a 256 MiB allocation.
const MaxQubits = 24

// StateVector computes the final state of the circuit starting from |0...0>.
//
// Final measurements and barriers are stripped first, mirroring the
// pre-measurement convention used for analysis: a circuit that ends by
// measuring every qubit yields the state just before those measurements.
// Returns an error when a non-final measurement or a reset remains, since
// the outcome is not representable as a pure state.
func StateVector(c *circuit.Circuit) ([]complex128, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Qubits > MaxQubits {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"circuit has %d qubits, simulator supports at most %d", c.Qubits, MaxQubits)
	}

	stripped := StripFinalMeasurements(c)

	state := make([]complex128, 1<<stripped.Qubits)
	state[0] = 1

	scratch := newScratch()
	for i, op := range stripped.Ops {
		if err := applyOp(state, stripped.Qubits, op, scratch); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "instruction %d (%s)", i, op.Gate)
		}
	}
	return state, nil
}

// Probabilities returns the measurement probability of every basis state,
// indexed big-endian like the state vector itself.
func Probabilities(state []complex128) []float64 {
	probs := make([]float64, len(state))
	for i, amp := range state {
		probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return probs
}

// StripFinalMeasurements returns a copy of c without trailing measurements
// and barriers. An instruction is trailing when every later instruction on
// its qubits is itself removed. Mid-circuit measurements stay in place.
func StripFinalMeasurements(c *circuit.Circuit) *circuit.Circuit {
	blocked := make(map[int]bool)
	removed := make([]bool, len(c.Ops))

	for i := len(c.Ops) - 1; i >= 0; i-- {
		op := c.Ops[i]
		removable := op.Gate == gate.Measure || op.Gate == gate.Barrier
		if removable {
			for _, q := range op.Qubits {
				if blocked[q] {
					removable = false
					break
				}
			}
		}
		if removable {
			removed[i] = true
			continue
		}
		for _, q := range op.Qubits {
			blocked[q] = true
		}
	}

	out := &circuit.Circuit{
		Name:    c.Name,
		Backend: c.Backend,
		Qubits:  c.Qubits,
		Clbits:  c.Clbits,
	}
	for i, op := range c.Ops {
		if !removed[i] {
			out.Ops = append(out.Ops, op)
		}
	}
	return out
}

func applyOp(state []complex128, n int, op circuit.Op, sc *scratch) error {
	switch op.Gate {
	case gate.Barrier:
		return nil
	case gate.Measure:
		return errors.New(errors.ErrCodeUnsupported,
			"mid-circuit measurement is not representable as a pure state")
	case gate.Reset:
		return errors.New(errors.ErrCodeUnsupported,
			"reset is not representable as a pure state")
	}

	d, err := gate.Get(op.Gate)
	if err != nil {
		return err
	}
	if len(op.Qubits) != d.Qubits {
		return errors.New(errors.ErrCodeInvalidGate,
			"gate %q acts on %d qubit(s), got %d", d.Name, d.Qubits, len(op.Qubits))
	}
	u, err := d.Unitary(op.Params...)
	if err != nil {
		return err
	}

	applyUnitary(state, n, u, op.Qubits, sc)
	return nil
}

// scratch holds reusable buffers for applyUnitary. The largest gate in the
// catalog acts on 3 qubits, hence dimension 8.
type scratch struct {
	sub [8]int
	tmp [8]complex128
}

func newScratch() *scratch { return &scratch{} }

// applyUnitary multiplies the amplitudes of every subspace spanned by the
// given qubits with u. The matrix is indexed big-endian over the qubit
// arguments: the first qubit argument is the most significant bit of the
// matrix index.
func applyUnitary(state []complex128, n int, u [][]complex128, qubits []int, sc *scratch) {
	k := len(qubits)
	dim := 1 << k

	// Global bit mask per gate argument. Qubit 0 sits at the top of the
	// register, so its mask is the highest bit.
	var masks [3]int
	allMask := 0
	for j, q := range qubits {
		masks[j] = 1 << (n - 1 - q)
		allMask |= masks[j]
	}

	for base := range state {
		if base&allMask != 0 {
			continue
		}

		// Enumerate the 2^k global indices of this subspace.
		for l := 0; l < dim; l++ {
			g := base
			for j := 0; j < k; j++ {
				if l&(1<<(k-1-j)) != 0 {
					g |= masks[j]
				}
			}
			sc.sub[l] = g
		}

		for r := 0; r < dim; r++ {
			var acc complex128
			for col := 0; col < dim; col++ {
				acc += u[r][col] * state[sc.sub[col]]
			}
			sc.tmp[r] = acc
		}
		for r := 0; r < dim; r++ {
			state[sc.sub[r]] = sc.tmp[r]
		}
	}
}
