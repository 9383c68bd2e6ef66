package cafe

import (
	"time"

	"github.com/shopspring/decimal"

	fbdomain "github.com/jcmexdev/cafe-console/internal/feedback/domain"
	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
)

// Snapshot is an immutable copy of the café state, safe to read from any
// goroutine.
type Snapshot struct {
	Menu       []invdomain.MenuItem
	Orders     []orderdomain.Order
	Reviews    []fbdomain.Review
	TotalSales decimal.Decimal
	TakenAt    time.Time
}

func (s *Snapshot) Order(id string) (orderdomain.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return orderdomain.Order{}, false
}

// Snapshot returns the state as of the last change. Never nil.
func (cf *Cafe) Snapshot() *Snapshot {
	return cf.snapshot.Load()
}

func (cf *Cafe) publish() {
	cf.snapshot.Store(&Snapshot{
		Menu:       cf.catalog.ListItems(),
		Orders:     cf.ledger.AllOrders(),
		Reviews:    cf.reviews.AllReviews(),
		TotalSales: cf.ledger.TotalSales(),
		TakenAt:    cf.now().UTC(),
	})
}
