// Package memory provides an in-process implementation of txlog.Repository.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog"
)

// Repository keeps journal entries in memory, grouped by transaction.
// Safe for concurrent use.
type Repository struct {
	mu      sync.RWMutex
	entries map[string][]txlog.Entry
	count   int
}

var _ txlog.Repository = (*Repository)(nil)

func New() *Repository {
	return &Repository{entries: make(map[string][]txlog.Entry)}
}

func (r *Repository) Save(ctx context.Context, entry *txlog.Entry) error {
	if entry == nil || entry.TxID == "" {
		return fmt.Errorf("memory: save journal entry: missing transaction id")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memory: save journal entry for %q: %w", entry.TxID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.TxID] = append(r.entries[entry.TxID], *entry)
	r.count++
	return nil
}

func (r *Repository) List(ctx context.Context, txID string) ([]txlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.entries[txID]
	if !ok {
		return nil, fmt.Errorf("memory: transaction %q not found", txID)
	}
	return append([]txlog.Entry(nil), entries...), nil
}

// Len is the total number of entries across all transactions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
