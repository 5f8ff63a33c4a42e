// Package store archives analysis reports.
//
// This package defines the report envelope and a storage interface with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - mongo: MongoDB-backed storage for durable multi-instance deployments
//
// # Architecture
//
// A Report wraps an analysis document with identity and provenance: a v4
// UUID, the circuit name, the circuit content hash, and a creation time.
// The Store interface supports:
//   - Get/Set/Delete operations by report ID
//   - Newest-first listing, optionally narrowed by circuit hash
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses $XDG_DATA_HOME/qscope/reports/
//
//	// API
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "qscope")
//
// Archive a report:
//
//	rep := store.NewReport(circ.Name, circ.Hash(), doc)
//	if err := st.Set(ctx, rep); err != nil {
//	    return err
//	}
//
//	// Later
//	reports, err := st.List(ctx, store.ListOptions{Limit: 20})
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/qscope/pkg/document"
)

// Report wraps an analysis document with identity and provenance.
type Report struct {
	ID          string            `json:"id" bson:"_id"`
	Name        string            `json:"name" bson:"name"`
	CircuitHash string            `json:"circuit_hash" bson:"circuit_hash"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	Document    document.Document `json:"document" bson:"document"`
}

// NewReport creates a report envelope with a fresh v4 UUID and the
// current time.
func NewReport(name, circuitHash string, doc document.Document) *Report {
	return &Report{
		ID:          uuid.NewString(),
		Name:        name,
		CircuitHash: circuitHash,
		CreatedAt:   time.Now().UTC(),
		Document:    doc,
	}
}

// ListOptions narrows List results.
type ListOptions struct {
	// Limit caps the number of reports returned. Zero means no cap.
	Limit int
	// CircuitHash restricts results to reports for one circuit.
	CircuitHash string
}

// Store is the interface for report storage backends.
type Store interface {
	// Get retrieves a report by ID.
	// Returns nil, nil if the report doesn't exist.
	Get(ctx context.Context, id string) (*Report, error)

	// Set stores a report, replacing any existing report with the same ID.
	Set(ctx context.Context, rep *Report) error

	// List returns stored reports, newest first.
	List(ctx context.Context, opts ListOptions) ([]*Report, error)

	// Delete removes a report. Deleting an absent report is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
