// Package store defines the record store contract: three tabular datasets
// (pilots, drones, missions) read as rows of named string fields, with
// field-level updates, appends, and deletes keyed by a record identifier.
//
// The durable copy lives in the store; everything in memory is a read cache
// that callers must rebuild after a successful write, since the store may be
// edited concurrently by other users or tools.
package store

import "errors"

// Kind selects one of the three entity datasets.
type Kind string

const (
	KindPilots   Kind = "pilots"
	KindDrones   Kind = "drones"
	KindMissions Kind = "missions"
)

// Row is one record as raw named fields.
type Row map[string]string

// ErrRowNotFound is returned by writes keyed to a record that does not exist.
var ErrRowNotFound = errors.New("store: row not found")

// Store is the external collaborator holding the durable pilot, drone, and
// mission datasets.
type Store interface {
	// Load returns the current rows for one entity kind. Missing or
	// malformed columns surface as empty field values, never an error.
	Load(kind Kind) ([]Row, error)
	// UpdateFields applies field-level updates to the row whose keyCol
	// equals keyVal.
	UpdateFields(kind Kind, keyCol, keyVal string, updates map[string]string) error
	// Append inserts a new row.
	Append(kind Kind, fields map[string]string) error
	// Delete removes the row whose keyCol equals keyVal.
	Delete(kind Kind, keyCol, keyVal string) error
}
