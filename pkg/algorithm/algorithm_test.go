package algorithm

import (
	"math"
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
		{"lowercase", "grover", "grover", false},
		{"uppercase", "GROVER", "grover", false},
		{"underscore", "deutsch_jozsa", "deutsch_jozsa", false},
		{"unknown", "shor", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.lookup, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeAlgorithmNotFound) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeAlgorithmNotFound)
				}
				return
			}
			if tmpl.Name != tt.want {
				t.Errorf("Get(%q).Name = %q, want %q", tt.lookup, tmpl.Name, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"bb84", "bitflip_code", "deutsch_jozsa", "grover", "qft", "teleport", "vqe_ansatz"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestCategories(t *testing.T) {
	groups := Categories()
	if groups[0].Category != "Search" {
		t.Errorf("first category = %q, want Search", groups[0].Category)
	}

	var communication *CategoryGroup
	for i := range groups {
		if groups[i].Category == "Communication" {
			communication = &groups[i]
		}
	}
	if communication == nil {
		t.Fatal("Categories() missing Communication group")
	}
	if len(communication.Templates) != 2 {
		t.Errorf("Communication has %d templates, want 2", len(communication.Templates))
	}
}

func TestBuildAll(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := Build(name)
			if err != nil {
				t.Fatalf("Build(%s) error = %v", name, err)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("built circuit invalid: %v", err)
			}
			if c.Measurements() == 0 {
				t.Error("template circuit has no measurements")
			}
		})
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build("shor"); !errors.Is(err, errors.ErrCodeAlgorithmNotFound) {
		t.Errorf("Build(shor) error = %v, want ALGORITHM_NOT_FOUND", err)
	}
}

func TestGrover(t *testing.T) {
	c, err := Build("grover")
	if err != nil {
		t.Fatalf("Build(grover) error = %v", err)
	}

	if c.Qubits != 2 {
		t.Errorf("Qubits = %d, want 2", c.Qubits)
	}
	if got := c.Depth(); got != 6 {
		t.Errorf("Depth() = %d, want 6", got)
	}
	if got := c.Size(); got != 10 {
		t.Errorf("Size() = %d, want 10", got)
	}

	counts := c.OpsByType()
	want := map[string]int{"h": 4, "cz": 2, "z": 2, "barrier": 1, "measure": 2}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("OpsByType() = %v, want %v", counts, want)
	}
}

func TestTeleport(t *testing.T) {
	c, err := Build("teleport")
	if err != nil {
		t.Fatalf("Build(teleport) error = %v", err)
	}
	if c.Qubits != 3 {
		t.Errorf("Qubits = %d, want 3", c.Qubits)
	}
	if got := c.Measurements(); got != 3 {
		t.Errorf("Measurements() = %d, want 3", got)
	}
	if got := c.Depth(); got != 7 {
		t.Errorf("Depth() = %d, want 7", got)
	}
}

func TestQFT(t *testing.T) {
	c, err := Build("qft")
	if err != nil {
		t.Fatalf("Build(qft) error = %v", err)
	}

	counts := c.OpsByType()
	want := map[string]int{"h": 3, "cp": 3, "swap": 1, "barrier": 1, "measure": 3}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("OpsByType() = %v, want %v", counts, want)
	}

	// The first controlled-phase spans adjacent qubits and rotates by pi/2.
	if c.Ops[1].Gate != "cp" {
		t.Fatalf("Ops[1].Gate = %q, want cp", c.Ops[1].Gate)
	}
	if got := c.Ops[1].Params[0]; math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Ops[1].Params[0] = %v, want pi/2", got)
	}
}

func TestBuildsAreIndependent(t *testing.T) {
	a, _ := Build("bb84")
	b, _ := Build("bb84")
	if err := a.Apply("x", 0); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if len(a.Ops) == len(b.Ops) {
		t.Error("mutating one build affected another")
	}
}
