package format

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// JSON is the circuit wire shape used by the export surface and the HTTP
// API: register sizes plus a flat instruction list.
//
//	{
//	  "num_qubits": 2,
//	  "num_clbits": 2,
//	  "instructions": [
//	    {"name": "h", "qubits": [0], "clbits": []},
//	    {"name": "cx", "qubits": [0, 1], "clbits": []}
//	  ]
//	}
type JSON struct{}

func (f *JSON) Name() string { return "json" }

func (f *JSON) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

func (f *JSON) Sniff(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return bytes.HasPrefix(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte(`"num_qubits"`))
}

type jsonCircuit struct {
	Name         string            `json:"name,omitempty"`
	Backend      string            `json:"backend,omitempty"`
	NumQubits    int               `json:"num_qubits"`
	NumClbits    int               `json:"num_clbits"`
	Instructions []jsonInstruction `json:"instructions"`
}

type jsonInstruction struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Clbits []int     `json:"clbits"`
	Params []float64 `json:"params,omitempty"`
}

func (f *JSON) Decode(data []byte) (*circuit.Circuit, error) {
	var wire jsonCircuit
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse JSON circuit")
	}

	c := &circuit.Circuit{
		Name:    wire.Name,
		Backend: wire.Backend,
		Qubits:  wire.NumQubits,
		Clbits:  wire.NumClbits,
		Ops:     make([]circuit.Op, len(wire.Instructions)),
	}
	for i, instr := range wire.Instructions {
		op := circuit.Op{
			Gate:   strings.ToLower(instr.Name),
			Qubits: instr.Qubits,
			Params: instr.Params,
		}
		if len(instr.Clbits) > 0 {
			op.Clbits = instr.Clbits
		}
		c.Ops[i] = op
	}
	if c.Clbits == 0 {
		c.Clbits = c.Qubits
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes the wire shape with two-space indentation. Instructions
// always carry a clbits list, empty for everything but measurements.
func (f *JSON) Encode(c *circuit.Circuit) ([]byte, error) {
	wire := jsonCircuit{
		Name:         c.Name,
		Backend:      c.Backend,
		NumQubits:    c.Qubits,
		NumClbits:    c.Clbits,
		Instructions: make([]jsonInstruction, len(c.Ops)),
	}
	for i, op := range c.Ops {
		instr := jsonInstruction{
			Name:   op.Gate,
			Qubits: op.Qubits,
			Clbits: []int{},
			Params: op.Params,
		}
		if op.Gate == "measure" {
			instr.Clbits = op.TargetClbits()
		}
		wire.Instructions[i] = instr
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode JSON circuit")
	}
	return data, nil
}
