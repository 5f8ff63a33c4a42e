// Package gate defines the built-in quantum gate catalog.
//
// Each catalog entry carries metadata (display name, category, description,
// arity) plus the gate's unitary matrix where one exists. Gates are addressed
// by a canonical lowercase identifier ("h", "cx", "ccx"). Lookups are
// case-insensitive.
//
// Three entries are not unitary gates but circuit instructions: "measure",
// "reset", and "barrier". They participate in circuits and in per-type
// operation counts, but Unitary returns an error for them.
package gate

import (
	"sort"
	"strings"

	"github.com/matzehuels/qscope/pkg/errors"
)

// Definition describes a single catalog entry.
type Definition struct {
	Name        string // canonical lowercase identifier
	DisplayName string // human-readable name
	Category    string // catalog grouping
	Description string
	Qubits      int // number of qubits the gate acts on (0 = any, barrier only)
	Params      int // number of angle parameters

	unitary func(params []float64) [][]complex128
}

// Directive reports whether the entry is a circuit directive rather than an
// operation with quantum semantics of its own (currently only "barrier").
func (d Definition) Directive() bool {
	return d.Name == Barrier
}

// Unitary returns the gate's unitary matrix for the given parameters.
// The matrix is indexed big-endian over the gate's qubit arguments: the
// first argument is the most significant bit of the row and column index.
// Returns an error for non-unitary entries (measure, reset, barrier) and
// for a wrong parameter count.
func (d Definition) Unitary(params ...float64) ([][]complex128, error) {
	if d.unitary == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "gate %q has no unitary", d.Name)
	}
	if len(params) != d.Params {
		return nil, errors.New(errors.ErrCodeInvalidGate,
			"gate %q expects %d parameter(s), got %d", d.Name, d.Params, len(params))
	}
	return d.unitary(params), nil
}

// Canonical identifiers for the non-unitary instructions.
const (
	Measure = "measure"
	Reset   = "reset"
	Barrier = "barrier"
)

// Catalog categories, in display order.
var categoryOrder = []string{
	"Pauli & Identity",
	"Superposition & Mixing",
	"Rotation",
	"2-Qubit Controlled",
	"Swap & Entanglement",
	"3+ Qubit",
	"Measurement & Reset",
	"Directive",
}

var catalog = map[string]Definition{
	"id": {
		Name:        "id",
		DisplayName: "Identity",
		Category:    "Pauli & Identity",
		Description: "Leaves the qubit state unchanged.",
		Qubits:      1,
		unitary:     fixed1(identity),
	},
	"x": {
		Name:        "x",
		DisplayName: "Pauli-X",
		Category:    "Pauli & Identity",
		Description: "Bit-flip gate analogous to classical NOT.",
		Qubits:      1,
		unitary:     fixed1(pauliX),
	},
	"y": {
		Name:        "y",
		DisplayName: "Pauli-Y",
		Category:    "Pauli & Identity",
		Description: "Combined bit- and phase-flip gate.",
		Qubits:      1,
		unitary:     fixed1(pauliY),
	},
	"z": {
		Name:        "z",
		DisplayName: "Pauli-Z",
		Category:    "Pauli & Identity",
		Description: "Phase-flip gate.",
		Qubits:      1,
		unitary:     fixed1(pauliZ),
	},
	"h": {
		Name:        "h",
		DisplayName: "Hadamard",
		Category:    "Superposition & Mixing",
		Description: "Creates equal superposition of |0> and |1>.",
		Qubits:      1,
		unitary:     fixed1(hadamard),
	},
	"s": {
		Name:        "s",
		DisplayName: "Phase",
		Category:    "Superposition & Mixing",
		Description: "Applies a 90-degree phase shift (square root of Z).",
		Qubits:      1,
		unitary:     fixed1(phaseS),
	},
	"sdg": {
		Name:        "sdg",
		DisplayName: "Inverse Phase",
		Category:    "Superposition & Mixing",
		Description: "Applies a -90-degree phase shift (inverse of S).",
		Qubits:      1,
		unitary:     fixed1(phaseSdg),
	},
	"t": {
		Name:        "t",
		DisplayName: "T (pi/8)",
		Category:    "Superposition & Mixing",
		Description: "Applies a 45-degree phase shift (square root of S).",
		Qubits:      1,
		unitary:     fixed1(phaseT),
	},
	"tdg": {
		Name:        "tdg",
		DisplayName: "Inverse T",
		Category:    "Superposition & Mixing",
		Description: "Applies a -45-degree phase shift (inverse of T).",
		Qubits:      1,
		unitary:     fixed1(phaseTdg),
	},
	"sx": {
		Name:        "sx",
		DisplayName: "Square-root of X",
		Category:    "Superposition & Mixing",
		Description: "Applied twice equals X gate.",
		Qubits:      1,
		unitary:     fixed1(sqrtX),
	},
	"sy": {
		Name:        "sy",
		DisplayName: "Square-root of Y",
		Category:    "Superposition & Mixing",
		Description: "Applied twice equals Y gate.",
		Qubits:      1,
		unitary:     fixed1(sqrtY),
	},
	"rx": {
		Name:        "rx",
		DisplayName: "Rotation-X",
		Category:    "Rotation",
		Description: "Rotates state around the X-axis by a configurable angle.",
		Qubits:      1,
		Params:      1,
		unitary:     func(p []float64) [][]complex128 { return rotationX(p[0]) },
	},
	"ry": {
		Name:        "ry",
		DisplayName: "Rotation-Y",
		Category:    "Rotation",
		Description: "Rotates state around the Y-axis by a configurable angle.",
		Qubits:      1,
		Params:      1,
		unitary:     func(p []float64) [][]complex128 { return rotationY(p[0]) },
	},
	"rz": {
		Name:        "rz",
		DisplayName: "Rotation-Z",
		Category:    "Rotation",
		Description: "Rotates state around the Z-axis by a configurable angle.",
		Qubits:      1,
		Params:      1,
		unitary:     func(p []float64) [][]complex128 { return rotationZ(p[0]) },
	},
	"u3": {
		Name:        "u3",
		DisplayName: "U3 Universal Gate",
		Category:    "Rotation",
		Description: "General single-qubit rotation parameterized by theta, phi, lambda.",
		Qubits:      1,
		Params:      3,
		unitary:     func(p []float64) [][]complex128 { return u3(p[0], p[1], p[2]) },
	},
	"cx": {
		Name:        "cx",
		DisplayName: "Controlled-NOT",
		Category:    "2-Qubit Controlled",
		Description: "Flips target qubit when control is |1>.",
		Qubits:      2,
		unitary:     fixed1(controlledX),
	},
	"cy": {
		Name:        "cy",
		DisplayName: "Controlled-Y",
		Category:    "2-Qubit Controlled",
		Description: "Applies Y on the target when the control qubit is 1.",
		Qubits:      2,
		unitary:     fixed1(controlledY),
	},
	"cz": {
		Name:        "cz",
		DisplayName: "Controlled-Z",
		Category:    "2-Qubit Controlled",
		Description: "Applies Z on target conditional on control.",
		Qubits:      2,
		unitary:     fixed1(controlledZ),
	},
	"cp": {
		Name:        "cp",
		DisplayName: "Controlled-Phase",
		Category:    "2-Qubit Controlled",
		Description: "Applies phase rotation conditional on control qubit.",
		Qubits:      2,
		Params:      1,
		unitary:     func(p []float64) [][]complex128 { return controlledPhase(p[0]) },
	},
	"swap": {
		Name:        "swap",
		DisplayName: "SWAP",
		Category:    "Swap & Entanglement",
		Description: "Swaps the states of two qubits.",
		Qubits:      2,
		unitary:     fixed1(swap),
	},
	"iswap": {
		Name:        "iswap",
		DisplayName: "iSWAP",
		Category:    "Swap & Entanglement",
		Description: "Swaps qubits with a complex phase factor.",
		Qubits:      2,
		unitary:     fixed1(iswap),
	},
	"cswap": {
		Name:        "cswap",
		DisplayName: "Fredkin",
		Category:    "3+ Qubit",
		Description: "Controlled swap of target qubits.",
		Qubits:      3,
		unitary:     fixed1(controlledSwap),
	},
	"ccx": {
		Name:        "ccx",
		DisplayName: "Toffoli",
		Category:    "3+ Qubit",
		Description: "Doubly-controlled NOT gate.",
		Qubits:      3,
		unitary:     fixed1(toffoli),
	},
	Measure: {
		Name:        Measure,
		DisplayName: "Measurement",
		Category:    "Measurement & Reset",
		Description: "Measures qubits in the computational basis.",
		Qubits:      1,
	},
	Reset: {
		Name:        Reset,
		DisplayName: "Reset",
		Category:    "Measurement & Reset",
		Description: "Resets a qubit to the |0> state.",
		Qubits:      1,
	},
	Barrier: {
		Name:        Barrier,
		DisplayName: "Barrier",
		Category:    "Directive",
		Description: "Visual and scheduling separator with no quantum effect.",
		Qubits:      0,
	},
}

// fixed1 adapts a parameterless matrix into a unitary factory.
func fixed1(m [][]complex128) func([]float64) [][]complex128 {
	return func([]float64) [][]complex128 { return m }
}

// Get returns the catalog entry for name. Lookup is case-insensitive.
func Get(name string) (Definition, error) {
	d, ok := catalog[strings.ToLower(name)]
	if !ok {
		return Definition{}, errors.New(errors.ErrCodeGateNotFound,
			"unknown gate %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Exists reports whether name is a known catalog entry.
func Exists(name string) bool {
	_, ok := catalog[strings.ToLower(name)]
	return ok
}

// Names returns all canonical gate identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories groups the catalog by category. The outer slice follows the
// catalog's display order; entries within a category are sorted by name.
func Categories() []CategoryGroup {
	byCategory := make(map[string][]Definition)
	for _, d := range catalog {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	groups := make([]CategoryGroup, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		defs := byCategory[category]
		if len(defs) == 0 {
			continue
		}
		sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
		groups = append(groups, CategoryGroup{Category: category, Gates: defs})
	}
	return groups
}

// CategoryGroup is one category of the catalog with its gates.
type CategoryGroup struct {
	Category string
	Gates    []Definition
}
