package format

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

const bellTOML = `
[circuit]
name = "bell"
backend = "aer"
qubits = 2

[[ops]]
gate = "h"
qubits = [0]

[[ops]]
gate = "cx"
qubits = [0, 1]

[[ops]]
gate = "measure"
qubits = [0]
clbits = [0]

[[ops]]
gate = "measure"
qubits = [1]
clbits = [1]
`

func TestTOMLDecode(t *testing.T) {
	c, err := (&TOML{}).Decode([]byte(bellTOML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if c.Name != "bell" {
		t.Errorf("Name = %q, want bell", c.Name)
	}
	if c.Backend != "aer" {
		t.Errorf("Backend = %q, want aer", c.Backend)
	}
	if c.Qubits != 2 {
		t.Errorf("Qubits = %d, want 2", c.Qubits)
	}
	// clbits was omitted, so it defaults to the qubit count.
	if c.Clbits != 2 {
		t.Errorf("Clbits = %d, want 2", c.Clbits)
	}

	wantOps := []circuit.Op{
		{Gate: "h", Qubits: []int{0}},
		{Gate: "cx", Qubits: []int{0, 1}},
		{Gate: "measure", Qubits: []int{0}, Clbits: []int{0}},
		{Gate: "measure", Qubits: []int{1}, Clbits: []int{1}},
	}
	if !reflect.DeepEqual(c.Ops, wantOps) {
		t.Errorf("Ops = %+v, want %+v", c.Ops, wantOps)
	}
}

func TestTOMLDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			data:     "[circuit\nqubits = 2",
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "no qubits",
			data:     "[circuit]\nname = \"empty\"\n",
			wantCode: errors.ErrCodeInvalidCircuit,
		},
		{
			name: "qubit out of range",
			data: `
[circuit]
qubits = 1

[[ops]]
gate = "x"
qubits = [3]
`,
			wantCode: errors.ErrCodeInvalidCircuit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&TOML{}).Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	c, err := circuit.New("bell", 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	mustApply(t, c.Apply("h", 0))
	mustApply(t, c.Apply("cx", 0, 1))
	mustApply(t, c.ApplyParam("rz", []float64{0.25}, 1))
	mustApply(t, c.MeasureAll())

	f := &TOML{}
	data, err := f.Encode(c)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for _, want := range []string{"[circuit]", "[[ops]]", `gate = "h"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Encode() output missing %q:\n%s", want, data)
		}
	}

	back, err := f.Decode(data)
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if back.Name != c.Name || back.Qubits != c.Qubits || back.Clbits != c.Clbits {
		t.Errorf("round trip header = %q/%d/%d, want %q/%d/%d",
			back.Name, back.Qubits, back.Clbits, c.Name, c.Qubits, c.Clbits)
	}
	if !reflect.DeepEqual(back.Ops, c.Ops) {
		t.Errorf("round trip Ops = %+v, want %+v", back.Ops, c.Ops)
	}
}

func mustApply(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("building circuit: %v", err)
	}
}
