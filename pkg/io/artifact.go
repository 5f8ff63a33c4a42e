package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
)

// WriteLatex writes a LaTeX sketch of the circuit using the qcircuit
// package. Each qubit becomes one wire row and the circuit depth sets
// the column count. The sketch contains wire columns only; gate symbols
// are filled in by hand.
func WriteLatex(c *circuit.Circuit, w io.Writer) error {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{qcircuit}\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\n")
	b.WriteString("\\Qcircuit @C=1em @R=.7em {\n")

	cols := make([]string, c.Depth())
	for i := range cols {
		cols[i] = "\\qw"
	}
	row := strings.Join(cols, " & ")
	for q := 0; q < c.Qubits; q++ {
		fmt.Fprintf(&b, "  \\lstick{q_%d} & %s & \\qw \\\\\n", q, row)
	}

	b.WriteString("}\n")
	b.WriteString("\\end{document}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportLatex writes the LaTeX sketch to a file at path.
func ExportLatex(c *circuit.Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLatex(c, f)
}

// jsGate is one instruction in the JavaScript circuit module.
type jsGate struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// WriteJavaScript writes the circuit as an ES module exporting a plain
// object with numQubits and a gates array, one JSON object per
// instruction.
func WriteJavaScript(c *circuit.Circuit, w io.Writer) error {
	var b strings.Builder
	b.WriteString("// Quantum Circuit in JavaScript\n")
	b.WriteString("// Requires a quantum circuit library\n")
	b.WriteString("\n")
	b.WriteString("const circuit = {\n")
	fmt.Fprintf(&b, "  numQubits: %d,\n", c.Qubits)
	b.WriteString("  gates: [\n")

	for _, op := range c.Ops {
		obj, err := json.Marshal(jsGate{Name: op.Gate, Qubits: op.Qubits, Params: op.Params})
		if err != nil {
			return fmt.Errorf("encode gate %s: %w", op.Gate, err)
		}
		fmt.Fprintf(&b, "    %s,\n", obj)
	}

	b.WriteString("  ]\n")
	b.WriteString("};\n")
	b.WriteString("\n")
	b.WriteString("export default circuit;\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportJavaScript writes the JavaScript circuit module to a file at
// path.
func ExportJavaScript(c *circuit.Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJavaScript(c, f)
}
