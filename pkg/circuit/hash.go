package circuit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns a hex-encoded SHA-256 digest of the circuit's structure.
// The digest covers the register sizes and the instruction sequence but not
// the name or backend label, so renaming a circuit keeps its hash stable.
func (c *Circuit) Hash() string {
	payload := struct {
		Qubits int  `json:"qubits"`
		Clbits int  `json:"clbits"`
		Ops    []Op `json:"ops"`
	}{c.Qubits, c.Clbits, c.Ops}

	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
