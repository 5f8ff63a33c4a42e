package format

import (
	"reflect"
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
		{"toml", "toml", "toml", false},
		{"qasm", "qasm", "qasm", false},
		{"json", "json", "json", false},
		{"case insensitive", "QASM", "qasm", false},
		{"unknown", "yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Get(tt.lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.lookup, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
				return
			}
			if f.Name() != tt.want {
				t.Errorf("Get(%q).Name() = %q, want %q", tt.lookup, f.Name(), tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"toml", "qasm", "json"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		want    string
		wantErr bool
	}{
		{"toml extension", "circuits/bell.toml", "", "toml", false},
		{"qasm extension", "/tmp/grover.QASM", "", "qasm", false},
		{"json extension", "x.json", "", "json", false},
		{"toml content", "stdin", "[circuit]\nqubits = 1\n", "toml", false},
		{"qasm content", "stdin", "OPENQASM 2.0;\nqreg q[1];\n", "qasm", false},
		{"json content", "stdin", `{"num_qubits": 1, "instructions": []}`, "json", false},
		{"extension wins over content", "bell.toml", "OPENQASM 2.0;", "toml", false},
		{"unknown", "circuit.yaml", "qubits: 2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Detect(tt.path, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Detect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
				return
			}
			if f.Name() != tt.want {
				t.Errorf("Detect() = %q, want %q", f.Name(), tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := `
[circuit]
name = "bell"
qubits = 2

[[ops]]
gate = "h"
qubits = [0]

[[ops]]
gate = "cx"
qubits = [0, 1]
`
	c, err := Parse("bell.toml", []byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Name != "bell" || c.Qubits != 2 || len(c.Ops) != 2 {
		t.Errorf("Parse() = %+v, want bell circuit with 2 ops", c)
	}
}

func TestParseUndetectable(t *testing.T) {
	if _, err := Parse("circuit", []byte("not a circuit")); err == nil {
		t.Fatal("Parse() expected error for undetectable input")
	}
}
