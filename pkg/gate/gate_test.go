package gate

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/matzehuels/qscope/pkg/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		want    string
		wantErr bool
	}{
		{"lowercase", "h", "h", false},
		{"uppercase", "H", "h", false},
		{"mixed case", "iSwap", "iswap", false},
		{"three qubit", "ccx", "ccx", false},
		{"unknown", "foo", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Get(tt.lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.lookup, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeGateNotFound) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeGateNotFound)
				}
				return
			}
			if d.Name != tt.want {
				t.Errorf("Get(%q).Name = %q, want %q", tt.lookup, d.Name, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	if !Exists("CX") {
		t.Error("Exists(CX) = false, want true")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true, want false")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 26 {
		t.Errorf("len(Names()) = %d, want 26", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestCategories(t *testing.T) {
	groups := Categories()
	if len(groups) == 0 {
		t.Fatal("Categories() returned no groups")
	}
	if groups[0].Category != "Pauli & Identity" {
		t.Errorf("first category = %q, want %q", groups[0].Category, "Pauli & Identity")
	}

	total := 0
	for _, g := range groups {
		total += len(g.Gates)
		for _, d := range g.Gates {
			if d.Category != g.Category {
				t.Errorf("gate %q grouped under %q but declares %q", d.Name, g.Category, d.Category)
			}
		}
	}
	if total != len(Names()) {
		t.Errorf("categories hold %d gates, catalog has %d", total, len(Names()))
	}
}

func TestDirective(t *testing.T) {
	barrier, _ := Get("barrier")
	if !barrier.Directive() {
		t.Error("barrier.Directive() = false, want true")
	}
	h, _ := Get("h")
	if h.Directive() {
		t.Error("h.Directive() = true, want false")
	}
	measure, _ := Get("measure")
	if measure.Directive() {
		t.Error("measure.Directive() = true, want false")
	}
}

func TestUnitaryErrors(t *testing.T) {
	t.Run("non-unitary entries", func(t *testing.T) {
		for _, name := range []string{"measure", "reset", "barrier"} {
			d, _ := Get(name)
			if _, err := d.Unitary(); err == nil {
				t.Errorf("%s.Unitary() error = nil, want error", name)
			}
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		d, _ := Get("rx")
		if _, err := d.Unitary(); err == nil {
			t.Error("rx.Unitary() without angle: error = nil, want error")
		}
	})

	t.Run("unexpected parameter", func(t *testing.T) {
		d, _ := Get("h")
		if _, err := d.Unitary(0.5); err == nil {
			t.Error("h.Unitary(0.5) error = nil, want error")
		}
	})
}

// matMul multiplies two square complex matrices.
func matMul(a, b [][]complex128) [][]complex128 {
	n := len(a)
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// conjTranspose returns the conjugate transpose of a square matrix.
func conjTranspose(m [][]complex128) [][]complex128 {
	n := len(m)
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			out[i][j] = cmplx.Conj(m[j][i])
		}
	}
	return out
}

func matApproxEqual(t *testing.T, got, want [][]complex128, label string) {
	t.Helper()
	const tol = 1e-9
	if len(got) != len(want) {
		t.Fatalf("%s: dimension %d, want %d", label, len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if cmplx.Abs(got[i][j]-want[i][j]) > tol {
				t.Errorf("%s: [%d][%d] = %v, want %v", label, i, j, got[i][j], want[i][j])
			}
		}
	}
}

func identityMatrix(n int) [][]complex128 {
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		m[i][i] = 1
	}
	return m
}

func TestUnitarity(t *testing.T) {
	// Every gate matrix must satisfy U * U† = I.
	demoParams := map[string][]float64{
		"rx": {demoAngle},
		"ry": {demoAngle},
		"rz": {demoAngle},
		"cp": {demoPhase},
		"u3": demoU3,
	}

	for _, name := range Names() {
		d, _ := Get(name)
		if d.unitary == nil {
			continue
		}
		t.Run(name, func(t *testing.T) {
			u, err := d.Unitary(demoParams[name]...)
			if err != nil {
				t.Fatalf("Unitary() error = %v", err)
			}
			dim := 1 << d.Qubits
			if len(u) != dim {
				t.Fatalf("dimension = %d, want %d", len(u), dim)
			}
			matApproxEqual(t, matMul(u, conjTranspose(u)), identityMatrix(dim), name)
		})
	}
}

func TestMatrixIdentities(t *testing.T) {
	get := func(name string, params ...float64) [][]complex128 {
		d, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", name, err)
		}
		u, err := d.Unitary(params...)
		if err != nil {
			t.Fatalf("%s.Unitary() error = %v", name, err)
		}
		return u
	}

	t.Run("sx squared is x", func(t *testing.T) {
		matApproxEqual(t, matMul(get("sx"), get("sx")), get("x"), "sx*sx")
	})

	t.Run("sy squared is y", func(t *testing.T) {
		matApproxEqual(t, matMul(get("sy"), get("sy")), get("y"), "sy*sy")
	})

	t.Run("t squared is s", func(t *testing.T) {
		matApproxEqual(t, matMul(get("t"), get("t")), get("s"), "t*t")
	})

	t.Run("s times sdg is identity", func(t *testing.T) {
		matApproxEqual(t, matMul(get("s"), get("sdg")), identityMatrix(2), "s*sdg")
	})

	t.Run("t times tdg is identity", func(t *testing.T) {
		matApproxEqual(t, matMul(get("t"), get("tdg")), identityMatrix(2), "t*tdg")
	})

	t.Run("cx maps basis states", func(t *testing.T) {
		// |10> -> |11> and |11> -> |10>, control being the high bit.
		u := get("cx")
		if u[3][2] != 1 || u[2][3] != 1 || u[0][0] != 1 || u[1][1] != 1 {
			t.Errorf("cx matrix = %v, want swap of the last two basis states", u)
		}
	})

	t.Run("rz diagonal phases", func(t *testing.T) {
		theta := math.Pi / 2
		u := get("rz", theta)
		want := cmplx.Exp(complex(0, -theta/2))
		if cmplx.Abs(u[0][0]-want) > 1e-12 {
			t.Errorf("rz[0][0] = %v, want %v", u[0][0], want)
		}
	})

	t.Run("cp phase on |11>", func(t *testing.T) {
		u := get("cp", math.Pi)
		if cmplx.Abs(u[3][3]-(-1)) > 1e-12 {
			t.Errorf("cp(pi)[3][3] = %v, want -1", u[3][3])
		}
	})
}

func TestDemo(t *testing.T) {
	t.Run("single qubit gate", func(t *testing.T) {
		c, err := Demo("h")
		if err != nil {
			t.Fatalf("Demo(h) error = %v", err)
		}
		if c.Qubits != 1 {
			t.Errorf("Qubits = %d, want 1", c.Qubits)
		}
		counts := c.OpsByType()
		if counts["h"] != 1 || counts["barrier"] != 1 || counts["measure"] != 1 {
			t.Errorf("OpsByType() = %v, want one h, barrier, measure", counts)
		}
	})

	t.Run("two qubit gate", func(t *testing.T) {
		c, err := Demo("cx")
		if err != nil {
			t.Fatalf("Demo(cx) error = %v", err)
		}
		if c.Qubits != 2 {
			t.Errorf("Qubits = %d, want 2", c.Qubits)
		}
		if got := c.Measurements(); got != 2 {
			t.Errorf("Measurements() = %d, want 2", got)
		}
	})

	t.Run("parameterized gate carries demo angle", func(t *testing.T) {
		c, err := Demo("rx")
		if err != nil {
			t.Fatalf("Demo(rx) error = %v", err)
		}
		if len(c.Ops[0].Params) != 1 || c.Ops[0].Params[0] != demoAngle {
			t.Errorf("Ops[0].Params = %v, want [%v]", c.Ops[0].Params, demoAngle)
		}
	})

	t.Run("measure", func(t *testing.T) {
		c, err := Demo("measure")
		if err != nil {
			t.Fatalf("Demo(measure) error = %v", err)
		}
		counts := c.OpsByType()
		if counts["measure"] != 1 || counts["barrier"] != 1 || len(c.Ops) != 2 {
			t.Errorf("OpsByType() = %v, want only barrier and measure", counts)
		}
	})

	t.Run("unknown gate", func(t *testing.T) {
		if _, err := Demo("nope"); !errors.Is(err, errors.ErrCodeGateNotFound) {
			t.Errorf("Demo(nope) error = %v, want GATE_NOT_FOUND", err)
		}
	})

	t.Run("every catalog entry has a demo", func(t *testing.T) {
		for _, name := range Names() {
			if _, err := Demo(name); err != nil {
				t.Errorf("Demo(%s) error = %v", name, err)
			}
		}
	})
}
