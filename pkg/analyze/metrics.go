package analyze

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// ProbabilityFloor is the threshold below which measurement
	// probabilities are treated as zero and dropped.
	ProbabilityFloor = 1e-10

	// NoiseFloor is the threshold below which density-matrix eigenvalues
	// are treated as numerical noise.
	NoiseFloor = 1e-10
)

// Keys of the map returned by EntanglementMetrics.
const (
	MetricVonNeumannEntropy   = "von_neumann_entropy"
	MetricEntanglementEntropy = "entanglement_entropy"
	MetricConcurrence         = "concurrence"
)

// Bloch holds the Bloch sphere coordinates of a single-qubit state.
type Bloch struct {
	X float64
	Y float64
	Z float64
}

// Radius returns the length of the Bloch vector. Pure states sit on the
// sphere surface at radius one.
func (b Bloch) Radius() float64 {
	return math.Sqrt(b.X*b.X + b.Y*b.Y + b.Z*b.Z)
}

// BlochVector maps a single-qubit state alpha|0> + beta|1> to Bloch sphere
// coordinates:
//
//	x = 2 Re(alpha conj(beta))
//	y = 2 Im(alpha conj(beta))
//	z = |alpha|^2 - |beta|^2
//
// It reports false for state vectors that are not single-qubit.
func BlochVector(state []complex128) (Bloch, bool) {
	if len(state) != 2 {
		return Bloch{}, false
	}
	alpha, beta := state[0], state[1]
	cross := alpha * cmplx.Conj(beta)
	return Bloch{
		X: 2 * real(cross),
		Y: 2 * imag(cross),
		Z: absSq(alpha) - absSq(beta),
	}, true
}

// ReducedDensity computes the reduced density matrix of qubit 0 for a
// two-qubit state, tracing out qubit 1. It reports false for state vectors
// that are not two-qubit.
func ReducedDensity(state []complex128) ([2][2]complex128, bool) {
	var rho [2][2]complex128
	if len(state) != 4 {
		return rho, false
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				rho[i][j] += state[2*i+k] * cmplx.Conj(state[2*j+k])
			}
		}
	}
	return rho, true
}

// EntanglementMetrics computes entanglement measures for a two-qubit state:
// the von Neumann entropy of the reduced density matrix of qubit 0 (under
// the keys MetricVonNeumannEntropy and MetricEntanglementEntropy, which
// share one value) and the concurrence 2|a00*a11 - a01*a10| under
// MetricConcurrence. States that are not two-qubit yield nil.
func EntanglementMetrics(state []complex128) map[string]float64 {
	rho, ok := ReducedDensity(state)
	if !ok {
		return nil
	}

	metrics := make(map[string]float64)
	if vals, ok := hermitianEigenvalues(rho); ok {
		entropy := 0.0
		for _, v := range vals {
			if v > NoiseFloor {
				entropy -= v * math.Log2(v)
			}
		}
		metrics[MetricVonNeumannEntropy] = entropy
		metrics[MetricEntanglementEntropy] = entropy
	}

	a00, a01, a10, a11 := state[0], state[1], state[2], state[3]
	metrics[MetricConcurrence] = 2 * cmplx.Abs(a00*a11-a01*a10)
	return metrics
}

// hermitianEigenvalues returns the eigenvalues of a 2x2 Hermitian matrix in
// ascending order.
//
// A Hermitian matrix H = A + iB embeds as the real symmetric matrix
// [[A, -B], [B, A]], whose spectrum contains each eigenvalue of H twice.
func hermitianEigenvalues(rho [2][2]complex128) ([2]float64, bool) {
	m := mat.NewSymDense(4, nil)
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			m.SetSym(i, j, real(rho[i][j]))
			m.SetSym(i+2, j+2, real(rho[i][j]))
		}
		for j := 0; j < 2; j++ {
			m.SetSym(i, j+2, -imag(rho[i][j]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(m, false) {
		return [2]float64{}, false
	}
	vals := eig.Values(nil)
	return [2]float64{vals[0], vals[2]}, true
}

func absSq(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}
