package coordinator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog"
	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

// Catalog is the stock the coordinator validates and deducts against.
type Catalog interface {
	Lookup(name string) (invdomain.MenuItem, error)
	DeductStock(name string, quantity int) error
}

// Ledger receives every completed order exactly once.
type Ledger interface {
	Record(order orderdomain.Order) error
}

// Coordinator turns sequences of item requests into recorded orders.
type Coordinator struct {
	catalog Catalog
	ledger  Ledger
	journal txlog.Repository // nil-safe: journaling skipped if nil
	now     func() time.Time
	newID   func() string
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Coordinator) { c.newID = newID }
}

// New wires the coordinator to the stores it mutates.
// journal may be nil, in that case transitions are only logged.
func New(catalog Catalog, ledger Ledger, journal txlog.Repository, opts ...Option) *Coordinator {
	c := &Coordinator{
		catalog: catalog,
		ledger:  ledger,
		journal: journal,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin opens a transaction for one customer. Repeated customer names
// produce independent orders.
func (c *Coordinator) Begin(ctx context.Context, customerName string) *Transaction {
	t := &Transaction{
		c:        c,
		id:       c.newID(),
		customer: customerName,
		index:    make(map[string]int),
	}
	ctx = telemetry.WithOrderID(ctx, t.id)
	slog.InfoContext(ctx, "order transaction started", "customer", customerName)
	c.record(ctx, txlog.NewEntry(ctx, t.id, txlog.StatusStarted, "", 0, map[string]any{"customer": customerName}, nil))
	return t
}

// PlaceOrder runs a whole transaction over reqs followed by the termination
// signal. onLine, if set, observes the result of every request.
func (c *Coordinator) PlaceOrder(
	ctx context.Context,
	customerName string,
	reqs []orderdomain.Request,
	onLine func(orderdomain.Request, LineResult, error),
) (Outcome, error) {
	tx := c.Begin(ctx, customerName)
	for _, req := range reqs {
		res, err := tx.Add(ctx, req.Item, req.Quantity)
		if onLine != nil {
			onLine(req, res, err)
		}
	}
	return tx.Finish(ctx)
}

func (c *Coordinator) record(ctx context.Context, entry *txlog.Entry) {
	if c.journal == nil {
		return
	}
	if err := c.journal.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to journal order transition", "status", entry.Status, "error", err)
	}
}
