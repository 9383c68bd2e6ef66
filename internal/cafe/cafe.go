package cafe

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cafe-console/internal/coordinator"
	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog"
	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog/memory"
	"github.com/jcmexdev/cafe-console/internal/feedback"
	fbdomain "github.com/jcmexdev/cafe-console/internal/feedback/domain"
	"github.com/jcmexdev/cafe-console/internal/inventory"
	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
	"github.com/jcmexdev/cafe-console/internal/ordering"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
	"github.com/jcmexdev/cafe-console/internal/pkg/cache"
)

// Cafe is the single owner of the catalog, the ledger and the feedback log.
// All mutating calls must come from one goroutine; readers on other
// goroutines use Snapshot.
type Cafe struct {
	catalog *inventory.Catalog
	ledger  *ordering.Ledger
	reviews *feedback.Log
	journal txlog.Repository
	coord   *coordinator.Coordinator
	now     func() time.Time

	tickets   cache.Cache // nil-safe: tickets skipped if nil
	ticketTTL time.Duration

	snapshot atomic.Pointer[Snapshot]
}

type Option func(*Cafe)

// WithTicketCache mirrors every completed order to c as a kitchen ticket.
func WithTicketCache(c cache.Cache, ttl time.Duration) Option {
	return func(cf *Cafe) {
		cf.tickets = c
		cf.ticketTTL = ttl
	}
}

func WithJournal(repo txlog.Repository) Option {
	return func(cf *Cafe) { cf.journal = repo }
}

func WithClock(now func() time.Time) Option {
	return func(cf *Cafe) { cf.now = now }
}

func New(catalog *inventory.Catalog, opts ...Option) *Cafe {
	cf := &Cafe{
		catalog: catalog,
		ledger:  ordering.NewLedger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(cf)
	}
	if cf.journal == nil {
		cf.journal = memory.New()
	}
	cf.reviews = feedback.NewLog(cf.now)
	cf.coord = coordinator.New(cf.catalog, cf.ledger, cf.journal, coordinator.WithClock(cf.now))
	cf.publish()
	return cf
}

func (cf *Cafe) Menu() []invdomain.MenuItem { return cf.catalog.ListItems() }

func (cf *Cafe) LookupItem(name string) (invdomain.MenuItem, error) { return cf.catalog.Lookup(name) }

func (cf *Cafe) TotalSales() decimal.Decimal { return cf.ledger.TotalSales() }

func (cf *Cafe) Orders() []orderdomain.Order { return cf.ledger.AllOrders() }

func (cf *Cafe) Reviews() []fbdomain.Review { return cf.reviews.AllReviews() }

func (cf *Cafe) Journal() txlog.Repository { return cf.journal }

// BeginOrder opens an order session for a customer.
func (cf *Cafe) BeginOrder(ctx context.Context, customerName string) *OrderSession {
	return &OrderSession{cafe: cf, tx: cf.coord.Begin(ctx, customerName)}
}

// PlaceOrder runs a complete order over reqs and publishes the result once.
// onLine may be nil.
func (cf *Cafe) PlaceOrder(
	ctx context.Context,
	customerName string,
	reqs []orderdomain.Request,
	onLine func(orderdomain.Request, coordinator.LineResult, error),
) (coordinator.Outcome, error) {
	out, err := cf.coord.PlaceOrder(ctx, customerName, reqs, onLine)
	cf.publish()
	if err != nil {
		return out, err
	}
	if out.Completed {
		cf.sendTicket(ctx, out.Order)
	}
	return out, nil
}

// LeaveReview records a review. Out of range ratings are rejected.
func (cf *Cafe) LeaveReview(ctx context.Context, customerName, text string, rating int) (fbdomain.Review, error) {
	r, err := cf.reviews.Record(customerName, text, rating)
	if err != nil {
		return fbdomain.Review{}, err
	}
	cf.publish()
	return r, nil
}

// OrderSession is an order transaction bound to the café that owns it.
type OrderSession struct {
	cafe *Cafe
	tx   *coordinator.Transaction
}

func (s *OrderSession) ID() string { return s.tx.ID() }

func (s *OrderSession) Bill() decimal.Decimal { return s.tx.Bill() }

func (s *OrderSession) Add(ctx context.Context, itemName string, quantity int) (coordinator.LineResult, error) {
	res, err := s.tx.Add(ctx, itemName, quantity)
	if err != nil {
		return res, err
	}
	s.cafe.publish()
	return res, nil
}

func (s *OrderSession) Finish(ctx context.Context) (coordinator.Outcome, error) {
	out, err := s.tx.Finish(ctx)
	if err != nil || !out.Completed {
		return out, err
	}
	s.cafe.publish()
	s.cafe.sendTicket(ctx, out.Order)
	return out, nil
}
