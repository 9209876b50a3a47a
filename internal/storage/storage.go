// Package storage persists user-to-API-key registrations. Two backends share
// the same contract: a single JSON file and a SQLite database with one row
// per user, selected at startup from configuration.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has ever been persisted.
var ErrNotFound = errors.New("storage: no records found")

// Store persists user id to API key mappings.
//
// Save merges the given records into the persisted mapping with
// last-writer-wins semantics per user and is atomic with respect to
// concurrent saves. Load returns the full mapping, or ErrNotFound when the
// store has never been written.
type Store interface {
	Save(ctx context.Context, records map[string]string) error
	Load(ctx context.Context) (map[string]string, error)

	// Maintenance runs periodic upkeep on the backing resource. Backends
	// with nothing to do return nil.
	Maintenance(ctx context.Context) error
}
