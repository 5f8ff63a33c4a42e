// Package document defines the serialized form of analysis records.
//
// The wire shape keeps complex amplitudes as {real, imag} pairs so the
// JSON and BSON encodings stay language neutral. Reconstructing complex
// values from those pairs reproduces the original vector exactly.
package document

import (
	"github.com/matzehuels/qscope/pkg/analyze"
)

// Amplitude is one complex state-vector entry in serialized form.
type Amplitude struct {
	Real float64 `json:"real" bson:"real"`
	Imag float64 `json:"imag" bson:"imag"`
}

// Document is the serializable form of an analysis record.
//
// StateVector and Probabilities encode as null when the record carries no
// state, mirroring the degraded analysis path.
type Document struct {
	Backend          string             `json:"backend" bson:"backend"`
	Qubits           int                `json:"qubits" bson:"qubits"`
	Depth            int                `json:"depth" bson:"depth"`
	Operations       int                `json:"operations" bson:"operations"`
	OperationsByType map[string]int     `json:"operations_by_type" bson:"operations_by_type"`
	StateVector      []Amplitude        `json:"state_vector" bson:"state_vector"`
	Probabilities    map[string]float64 `json:"probabilities" bson:"probabilities"`
	Measurements     int                `json:"measurements" bson:"measurements"`
	HasMeasurements  bool               `json:"has_measurements" bson:"has_measurements"`
}

// FromRecord converts a record into its serializable form.
func FromRecord(rec *analyze.Record) Document {
	doc := Document{
		Backend:          rec.Backend(),
		Qubits:           rec.Qubits(),
		Depth:            rec.Depth(),
		Operations:       rec.Operations(),
		OperationsByType: rec.OpsByType(),
		Probabilities:    rec.Probabilities(),
		Measurements:     rec.Measurements(),
		HasMeasurements:  rec.HasMeasurements(),
	}
	if state := rec.State(); state != nil {
		doc.StateVector = make([]Amplitude, len(state))
		for i, c := range state {
			doc.StateVector[i] = Amplitude{Real: real(c), Imag: imag(c)}
		}
	}
	return doc
}

// ToRecord rebuilds the analysis record, revalidating every field. The
// stored HasMeasurements flag is ignored; the record derives it from the
// measurement count.
func (d Document) ToRecord() (*analyze.Record, error) {
	in := analyze.Input{
		Backend:       d.Backend,
		Qubits:        d.Qubits,
		Depth:         d.Depth,
		Operations:    d.Operations,
		OpsByType:     d.OperationsByType,
		Measurements:  d.Measurements,
		Probabilities: d.Probabilities,
	}
	if d.StateVector != nil {
		in.State = make([]complex128, len(d.StateVector))
		for i, a := range d.StateVector {
			in.State[i] = complex(a.Real, a.Imag)
		}
	}
	return analyze.New(in)
}
