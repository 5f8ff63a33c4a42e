package format

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// TOML is the native circuit file format: a [circuit] header table followed
// by one [[ops]] table per instruction.
//
//	[circuit]
//	name = "bell"
//	qubits = 2
//
//	[[ops]]
//	gate = "h"
//	qubits = [0]
//
//	[[ops]]
//	gate = "cx"
//	qubits = [0, 1]
type TOML struct{}

func (f *TOML) Name() string { return "toml" }

func (f *TOML) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func (f *TOML) Sniff(data []byte) bool {
	return bytes.Contains(data, []byte("[circuit]"))
}

// tomlFile mirrors the on-disk layout.
type tomlFile struct {
	Circuit tomlHeader   `toml:"circuit"`
	Ops     []circuit.Op `toml:"ops"`
}

type tomlHeader struct {
	Name    string `toml:"name,omitempty"`
	Backend string `toml:"backend,omitempty"`
	Qubits  int    `toml:"qubits"`
	Clbits  int    `toml:"clbits,omitempty"`
}

// Decode parses the header and instruction tables. A missing clbits count
// defaults to the qubit count, so every qubit can be measured.
func (f *TOML) Decode(data []byte) (*circuit.Circuit, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse TOML circuit")
	}

	c := &circuit.Circuit{
		Name:    file.Circuit.Name,
		Backend: file.Circuit.Backend,
		Qubits:  file.Circuit.Qubits,
		Clbits:  file.Circuit.Clbits,
		Ops:     file.Ops,
	}
	if c.Clbits == 0 {
		c.Clbits = c.Qubits
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *TOML) Encode(c *circuit.Circuit) ([]byte, error) {
	file := tomlFile{
		Circuit: tomlHeader{Name: c.Name, Backend: c.Backend, Qubits: c.Qubits, Clbits: c.Clbits},
		Ops:     c.Ops,
	}
	data, err := toml.Marshal(file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode TOML circuit")
	}
	return data, nil
}
