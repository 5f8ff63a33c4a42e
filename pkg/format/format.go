// Package format reads and writes circuits in their on-disk representations.
//
// Three formats are supported: the native TOML layout, an OpenQASM 2.0
// subset, and the JSON wire shape used by the export surface. Each format
// implements the Format interface; Detect selects one by filename first and
// content sniffing second, so piped input without a meaningful name still
// decodes.
//
// Decoders validate the resulting circuit against the register bounds, so a
// successfully decoded circuit is safe to hand to the simulator.
package format

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// Format reads and writes circuits in one on-disk representation.
type Format interface {
	// Name returns the canonical format identifier ("toml", "qasm", "json").
	Name() string
	// Supports reports whether this format handles the given filename.
	Supports(filename string) bool
	// Sniff reports whether data looks like this format.
	Sniff(data []byte) bool
	// Decode parses data into a validated circuit.
	Decode(data []byte) (*circuit.Circuit, error)
	// Encode renders the circuit in this format.
	Encode(c *circuit.Circuit) ([]byte, error)
}

var (
	_ Format = (*TOML)(nil)
	_ Format = (*QASM)(nil)
	_ Format = (*JSON)(nil)
)

// All returns the registered formats in detection order. JSON sniffs last
// because its content check is the loosest.
func All() []Format {
	return []Format{&TOML{}, &QASM{}, &JSON{}}
}

// Names returns the identifiers of all registered formats in detection order.
func Names() []string {
	formats := All()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name()
	}
	return names
}

// Get returns the format with the given identifier. Lookup is
// case-insensitive.
func Get(name string) (Format, error) {
	for _, f := range All() {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"unknown circuit format %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Detect finds the format for a circuit file. The filename decides when its
// extension is claimed by a format; otherwise the content is sniffed.
func Detect(path string, data []byte) (Format, error) {
	name := filepath.Base(path)
	for _, f := range All() {
		if f.Supports(name) {
			return f, nil
		}
	}
	for _, f := range All() {
		if f.Sniff(data) {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"cannot determine circuit format of %q (supported: %s)", name, strings.Join(Names(), ", "))
}

// Parse detects the format of data and decodes it.
func Parse(path string, data []byte) (*circuit.Circuit, error) {
	f, err := Detect(path, data)
	if err != nil {
		return nil, err
	}
	return f.Decode(data)
}
