package algorithm

import (
	"math"

	"github.com/matzehuels/qscope/pkg/circuit"
)

// finish returns c unless any of the build steps failed.
func finish(c *circuit.Circuit, steps ...error) (*circuit.Circuit, error) {
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildGrover() (*circuit.Circuit, error) {
	c, err := circuit.New("Grover Search", 2)
	if err != nil {
		return nil, err
	}
	// Oracle marks |11>, then the diffusion operator amplifies it.
	return finish(c,
		c.Apply("h", 0),
		c.Apply("h", 1),
		c.Apply("cz", 0, 1),
		c.Apply("h", 0),
		c.Apply("h", 1),
		c.Apply("z", 0),
		c.Apply("z", 1),
		c.Apply("cz", 0, 1),
		c.Barrier(),
		c.MeasureAll(),
	)
}

func buildQFT() (*circuit.Circuit, error) {
	const n = 3
	c, err := circuit.New("Quantum Fourier Transform", n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		if err := c.Apply("h", j); err != nil {
			return nil, err
		}
		for k := j + 1; k < n; k++ {
			angle := math.Pi / float64(int(1)<<(k-j))
			if err := c.ApplyParam("cp", []float64{angle}, k, j); err != nil {
				return nil, err
			}
		}
	}
	return finish(c,
		c.Apply("swap", 0, n-1),
		c.Barrier(),
		c.MeasureAll(),
	)
}

func buildTeleport() (*circuit.Circuit, error) {
	c, err := circuit.New("Quantum Teleportation", 3)
	if err != nil {
		return nil, err
	}
	// Entangle qubits 1 and 2, Bell-measure qubits 0 and 1, then apply the
	// classically controlled corrections to qubit 2.
	return finish(c,
		c.Apply("h", 1),
		c.Apply("cx", 1, 2),
		c.Apply("cx", 0, 1),
		c.Apply("h", 0),
		c.Measure(0, 0),
		c.Measure(1, 1),
		c.Barrier(),
		c.Apply("cz", 1, 2),
		c.Apply("cx", 0, 2),
		c.Measure(2, 2),
	)
}

func buildBB84() (*circuit.Circuit, error) {
	c, err := circuit.New("BB84 Key Distribution", 2)
	if err != nil {
		return nil, err
	}
	return finish(c,
		c.Apply("h", 0),
		c.Apply("cx", 0, 1),
		c.Measure(0, 0),
		c.Measure(1, 1),
	)
}

func buildDeutschJozsa() (*circuit.Circuit, error) {
	c, err := circuit.New("Deutsch-Jozsa", 2)
	if err != nil {
		return nil, err
	}
	// Controlled-Z plays the role of a balanced oracle.
	return finish(c,
		c.Apply("h", 0),
		c.Apply("h", 1),
		c.Apply("x", 1),
		c.Apply("h", 1),
		c.Apply("cz", 0, 1),
		c.Apply("h", 0),
		c.Barrier(),
		c.MeasureAll(),
	)
}

func buildBitflipCode() (*circuit.Circuit, error) {
	c, err := circuit.New("Three-Qubit Bit Flip Code", 3)
	if err != nil {
		return nil, err
	}
	// Encode qubit 0 redundantly, then majority-decode it back.
	return finish(c,
		c.Apply("cx", 0, 1),
		c.Apply("cx", 0, 2),
		c.Barrier(),
		c.Apply("cx", 1, 0),
		c.Apply("cx", 2, 0),
		c.Barrier(),
		c.MeasureAll(),
	)
}

func buildVQEAnsatz() (*circuit.Circuit, error) {
	c, err := circuit.New("VQE Ansatz", 2)
	if err != nil {
		return nil, err
	}
	theta := math.Pi / 4
	return finish(c,
		c.ApplyParam("ry", []float64{theta}, 0),
		c.ApplyParam("ry", []float64{theta}, 1),
		c.Apply("cx", 0, 1),
		c.ApplyParam("rz", []float64{theta / 2}, 1),
		c.Apply("cx", 0, 1),
		c.Barrier(),
		c.MeasureAll(),
	)
}
