// Package txlog defines the journal of order transactions.
//
// The journal is an append-only trail of every transition an order
// transaction goes through: when it opened, each line that was added or
// rejected, and how it finished. It is kept for the lifetime of the process
// and lets the operator (or a test) reconstruct exactly what happened to a
// customer's order.
package txlog

import "time"

// Status is the transition recorded by an entry.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusLineAdded    Status = "LINE_ADDED"
	StatusLineRejected Status = "LINE_REJECTED"
	StatusCompleted    Status = "COMPLETED"
	StatusEmpty        Status = "EMPTY"
)

// Entry is a single row of the journal.
type Entry struct {
	// TxID is the transaction ID. It becomes the order ID on completion.
	TxID string

	Status Status

	// Item is the menu item the transition concerns, empty for
	// STARTED/COMPLETED/EMPTY.
	Item string

	Quantity int

	// Detail is a JSON document describing the transition (customer,
	// bill, line subtotal...).
	Detail string

	// Error is the rejection reason for LINE_REJECTED.
	Error string

	// CommandID ties the entry to the shell command that produced it.
	CommandID string

	RecordedAt time.Time
}
