package analyze

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestBlochVector(t *testing.T) {
	inv := complex(1/math.Sqrt2, 0)
	invI := complex(0, 1/math.Sqrt2)

	tests := []struct {
		name   string
		state  []complex128
		want   Bloch
		wantOK bool
	}{
		{"ground", []complex128{1, 0}, Bloch{Z: 1}, true},
		{"excited", []complex128{0, 1}, Bloch{Z: -1}, true},
		{"plus", []complex128{inv, inv}, Bloch{X: 1}, true},
		{"minus", []complex128{inv, -inv}, Bloch{X: -1}, true},
		{"plus i", []complex128{inv, invI}, Bloch{Y: -1}, true},
		{"minus i", []complex128{inv, -invI}, Bloch{Y: 1}, true},
		{"x rotation", []complex128{complex(math.Sqrt(3)/2, 0), complex(0, -0.5)}, Bloch{Y: math.Sqrt(3) / 2, Z: 0.5}, true},
		{"two qubits", []complex128{1, 0, 0, 0}, Bloch{}, false},
		{"empty", nil, Bloch{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BlochVector(tt.state)
			if ok != tt.wantOK {
				t.Fatalf("BlochVector() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got.X-tt.want.X) > tol || math.Abs(got.Y-tt.want.Y) > tol || math.Abs(got.Z-tt.want.Z) > tol {
				t.Errorf("BlochVector() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.Radius()-1) > tol {
				t.Errorf("Radius() = %v, want 1", got.Radius())
			}
		})
	}
}

func TestReducedDensity(t *testing.T) {
	inv := complex(1/math.Sqrt2, 0)
	invI := complex(0, 1/math.Sqrt2)

	tests := []struct {
		name  string
		state []complex128
		want  [2][2]complex128
	}{
		{"bell", []complex128{inv, 0, 0, inv}, [2][2]complex128{{0.5, 0}, {0, 0.5}}},
		{"ground", []complex128{1, 0, 0, 0}, [2][2]complex128{{1, 0}, {0, 0}}},
		{
			"superposition with phase",
			[]complex128{inv, 0, invI, 0},
			[2][2]complex128{{0.5, complex(0, -0.5)}, {complex(0, 0.5), 0.5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rho, ok := ReducedDensity(tt.state)
			if !ok {
				t.Fatal("ReducedDensity() ok = false, want true")
			}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					if cmplx.Abs(rho[i][j]-tt.want[i][j]) > tol {
						t.Errorf("rho[%d][%d] = %v, want %v", i, j, rho[i][j], tt.want[i][j])
					}
				}
			}
		})
	}

	if _, ok := ReducedDensity([]complex128{1, 0}); ok {
		t.Error("ReducedDensity() ok = true for single-qubit state")
	}
}

func TestEntanglementMetrics(t *testing.T) {
	inv := complex(1/math.Sqrt2, 0)
	invI := complex(0, 1/math.Sqrt2)
	partialEntropy := -(0.9*math.Log2(0.9) + 0.1*math.Log2(0.1))

	tests := []struct {
		name        string
		state       []complex128
		entropy     float64
		concurrence float64
	}{
		{"bell", []complex128{inv, 0, 0, inv}, 1, 1},
		{"bell with phase", []complex128{inv, 0, 0, invI}, 1, 1},
		{"product ground", []complex128{1, 0, 0, 0}, 0, 0},
		{"product superposition", []complex128{inv, 0, invI, 0}, 0, 0},
		{
			"partially entangled",
			[]complex128{complex(math.Sqrt(0.9), 0), 0, 0, complex(math.Sqrt(0.1), 0)},
			partialEntropy,
			0.6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := EntanglementMetrics(tt.state)
			if m == nil {
				t.Fatal("EntanglementMetrics() = nil, want metrics")
			}
			if got := m[MetricEntanglementEntropy]; math.Abs(got-tt.entropy) > tol {
				t.Errorf("entropy = %v, want %v", got, tt.entropy)
			}
			if m[MetricVonNeumannEntropy] != m[MetricEntanglementEntropy] {
				t.Errorf("entropy keys disagree: %v vs %v",
					m[MetricVonNeumannEntropy], m[MetricEntanglementEntropy])
			}
			if got := m[MetricConcurrence]; math.Abs(got-tt.concurrence) > tol {
				t.Errorf("concurrence = %v, want %v", got, tt.concurrence)
			}
		})
	}
}

func TestEntanglementMetricsDomain(t *testing.T) {
	for _, state := range [][]complex128{nil, {1, 0}, make([]complex128, 8)} {
		if m := EntanglementMetrics(state); m != nil {
			t.Errorf("EntanglementMetrics(len %d) = %v, want nil", len(state), m)
		}
	}
}
