package txlog

import "context"

// Repository is the port for persisting journal entries.
// The coordinator depends on this abstraction so tests can swap in their own.
type Repository interface {
	// Save appends an entry. The journal is append-only, never an upsert.
	Save(ctx context.Context, entry *Entry) error

	// List returns every entry of a transaction in the order it was saved.
	List(ctx context.Context, txID string) ([]Entry, error)
}
