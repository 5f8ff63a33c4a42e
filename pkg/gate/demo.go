package gate

import (
	"math"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// Demo angles for parameterized gates.
const (
	demoAngle = math.Pi / 3
	demoPhase = math.Pi / 4
)

// demoU3 holds the theta, phi, lambda demo parameters for u3.
var demoU3 = []float64{1.2, 0.4, 0.7}

// Demo builds a small example circuit for the named gate: the gate applied
// to the lowest qubits, a barrier, then a measurement of every qubit.
// Parameterized gates use fixed demo angles.
func Demo(name string) (*circuit.Circuit, error) {
	d, err := Get(name)
	if err != nil {
		return nil, err
	}

	qubits := d.Qubits
	if qubits < 1 {
		qubits = 1
	}
	c, err := circuit.New(d.Name, qubits)
	if err != nil {
		return nil, err
	}

	if err := applyDemoOp(c, d); err != nil {
		return nil, err
	}
	if err := c.Barrier(); err != nil {
		return nil, err
	}
	if err := c.MeasureAll(); err != nil {
		return nil, err
	}
	return c, nil
}

func applyDemoOp(c *circuit.Circuit, d Definition) error {
	switch d.Name {
	case Measure:
		// The measurement demo is just the trailing measure-all.
		return nil
	case Barrier:
		// Put the qubit into superposition so the barrier separates something.
		return c.Apply("h", 0)
	case Reset:
		if err := c.Apply("x", 0); err != nil {
			return err
		}
		return c.Apply(Reset, 0)
	}

	targets := make([]int, d.Qubits)
	for q := range targets {
		targets[q] = q
	}

	switch d.Params {
	case 0:
		return c.Apply(d.Name, targets...)
	case 1:
		angle := demoAngle
		if d.Name == "cp" {
			angle = demoPhase
		}
		return c.ApplyParam(d.Name, []float64{angle}, targets...)
	case 3:
		return c.ApplyParam(d.Name, demoU3, targets...)
	default:
		return errors.New(errors.ErrCodeInternal, "gate %q has unexpected parameter count %d", d.Name, d.Params)
	}
}
