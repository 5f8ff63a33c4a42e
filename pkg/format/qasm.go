package format

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// Pre-compiled regexps for QASM parsing.
var (
	qasmVersionRE = regexp.MustCompile(`^OPENQASM\s+(\d+)\.(\d+)\s*;$`)
	qregRE        = regexp.MustCompile(`^qreg\s+\w+\[(\d+)\]\s*;$`)
	cregRE        = regexp.MustCompile(`^creg\s+\w+\[(\d+)\]\s*;$`)
	measureRE     = regexp.MustCompile(`^measure\s+\w+\[(\d+)\]\s*->\s*\w+\[(\d+)\]\s*;$`)
	measureAllRE  = regexp.MustCompile(`^measure\s+\w+\s*->\s*\w+\s*;$`)
	gateRE        = regexp.MustCompile(`^([a-z][a-z0-9_]*)\s*(?:\(([^)]*)\))?\s+(.+?)\s*;$`)
	argRE         = regexp.MustCompile(`^\w+\[(\d+)\]$`)
	regWordRE     = regexp.MustCompile(`^\w+$`)
	piTermRE      = regexp.MustCompile(`^(-?)(?:(\d+(?:\.\d+)?)\s*\*\s*)?pi(?:\s*/\s*(\d+(?:\.\d+)?))?$`)
)

// QASM reads and writes an OpenQASM 2.0 subset: one quantum and one
// classical register, gate applications over register elements (including
// parameterized gates with pi-term angles), barrier, reset, and per-bit or
// whole-register measurement.
//
// Outside the subset: classical conditionals ("if"), custom gate
// definitions, and register-broadcast gate application (a bare register
// argument is accepted for barrier only).
type QASM struct{}

func (f *QASM) Name() string { return "qasm" }

func (f *QASM) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".qasm")
}

func (f *QASM) Sniff(data []byte) bool {
	return bytes.Contains(data, []byte("OPENQASM"))
}

// Decode parses QASM text line by line. A missing creg declaration defaults
// the classical register to the qubit count.
func (f *QASM) Decode(data []byte) (*circuit.Circuit, error) {
	c := &circuit.Circuit{}

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := f.decodeLine(c, line); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "QASM line %d", i+1)
		}
	}

	if c.Qubits == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "QASM input declares no quantum register")
	}
	if c.Clbits == 0 {
		c.Clbits = c.Qubits
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *QASM) decodeLine(c *circuit.Circuit, line string) error {
	switch {
	case strings.HasPrefix(line, "OPENQASM"):
		m := qasmVersionRE.FindStringSubmatch(line)
		if m == nil || m[1] != "2" {
			return errors.New(errors.ErrCodeUnsupported, "unsupported QASM version in %q", line)
		}
		return nil
	case strings.HasPrefix(line, "include"):
		return nil
	case strings.HasPrefix(line, "if"):
		return errors.New(errors.ErrCodeUnsupported, "classical conditional %q cannot be represented", line)
	case strings.HasPrefix(line, "gate"):
		return errors.New(errors.ErrCodeUnsupported, "custom gate definitions are not supported")
	}

	if m := qregRE.FindStringSubmatch(line); m != nil {
		if c.Qubits > 0 {
			return errors.New(errors.ErrCodeUnsupported, "multiple quantum registers")
		}
		c.Qubits, _ = strconv.Atoi(m[1])
		return nil
	}
	if m := cregRE.FindStringSubmatch(line); m != nil {
		if c.Clbits > 0 {
			return errors.New(errors.ErrCodeUnsupported, "multiple classical registers")
		}
		c.Clbits, _ = strconv.Atoi(m[1])
		return nil
	}

	if m := measureRE.FindStringSubmatch(line); m != nil {
		q, _ := strconv.Atoi(m[1])
		cl, _ := strconv.Atoi(m[2])
		c.Ops = append(c.Ops, circuit.Op{Gate: "measure", Qubits: []int{q}, Clbits: []int{cl}})
		return nil
	}
	if measureAllRE.MatchString(line) {
		for q := 0; q < c.Qubits; q++ {
			c.Ops = append(c.Ops, circuit.Op{Gate: "measure", Qubits: []int{q}, Clbits: []int{q}})
		}
		return nil
	}

	m := gateRE.FindStringSubmatch(line)
	if m == nil {
		return errors.New(errors.ErrCodeInvalidFormat, "unrecognized statement %q", line)
	}
	name, rawParams, rawArgs := m[1], m[2], m[3]

	qubits, err := f.decodeArgs(c, name, rawArgs)
	if err != nil {
		return err
	}
	op := circuit.Op{Gate: name, Qubits: qubits}
	if rawParams != "" {
		if op.Params, err = decodeAngles(rawParams); err != nil {
			return err
		}
	}
	c.Ops = append(c.Ops, op)
	return nil
}

// decodeArgs parses a comma-separated register-element list. A bare
// register name spans every qubit, which QASM permits for barrier.
func (f *QASM) decodeArgs(c *circuit.Circuit, name, rawArgs string) ([]int, error) {
	if name == "barrier" && regWordRE.MatchString(rawArgs) {
		qubits := make([]int, c.Qubits)
		for q := range qubits {
			qubits[q] = q
		}
		return qubits, nil
	}

	var qubits []int
	for _, arg := range strings.Split(rawArgs, ",") {
		arg = strings.TrimSpace(arg)
		m := argRE.FindStringSubmatch(arg)
		if m == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unrecognized argument %q", arg)
		}
		q, _ := strconv.Atoi(m[1])
		qubits = append(qubits, q)
	}
	return qubits, nil
}

func decodeAngles(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	params := make([]float64, len(parts))
	for i, part := range parts {
		v, err := parseAngle(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		params[i] = v
	}
	return params, nil
}

// parseAngle evaluates the angle expressions qiskit-style emitters produce:
// plain floats and pi terms such as "pi", "-pi/2", "3*pi/4".
func parseAngle(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	m := piTermRE.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "cannot parse angle %q", s)
	}
	v := math.Pi
	if m[2] != "" {
		coef, _ := strconv.ParseFloat(m[2], 64)
		v *= coef
	}
	if m[3] != "" {
		div, _ := strconv.ParseFloat(m[3], 64)
		v /= div
	}
	if m[1] == "-" {
		v = -v
	}
	return v, nil
}

func (f *QASM) Encode(c *circuit.Circuit) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.Qubits)
	if c.Clbits > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.Clbits)
	}
	sb.WriteString("\n")

	for _, op := range c.Ops {
		switch {
		case op.Gate == "measure":
			clbits := op.TargetClbits()
			for i, q := range op.Qubits {
				fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", q, clbits[i])
			}
		case len(op.Params) > 0:
			fmt.Fprintf(&sb, "%s(%s) %s;\n", op.Gate, joinAngles(op.Params), joinArgs(op.Qubits))
		default:
			fmt.Fprintf(&sb, "%s %s;\n", op.Gate, joinArgs(op.Qubits))
		}
	}
	return []byte(sb.String()), nil
}

func joinArgs(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ", ")
}

func joinAngles(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
