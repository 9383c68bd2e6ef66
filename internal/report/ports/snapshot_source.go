package ports

import (
	"context"

	"github.com/jcmexdev/cafe-console/internal/cafe"
)

// SnapshotSource supplies the latest immutable view of the café.
type SnapshotSource interface {
	Snapshot() *cafe.Snapshot
}

// TicketSource reads kitchen tickets back from the ticket cache.
type TicketSource interface {
	Ticket(ctx context.Context, orderID string) (cafe.Ticket, error)
}

type ReportSource interface {
	SnapshotSource
	TicketSource
}
