package ordering

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cafe-console/internal/ordering/domain"
)

// Ledger is the append-only record of completed orders. totalSales always
// equals the sum of the recorded order totals.
type Ledger struct {
	orders     []domain.Order
	totalSales decimal.Decimal
}

func NewLedger() *Ledger {
	return &Ledger{totalSales: decimal.Zero}
}

// Record appends a completed order and adds its total to the running sales.
func (l *Ledger) Record(order domain.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order %s has no items", domain.ErrInvalidOrder, order.ID)
	}
	if order.Total.IsNegative() {
		return fmt.Errorf("%w: order %s has negative total", domain.ErrInvalidOrder, order.ID)
	}

	l.orders = append(l.orders, order.Clone())
	l.totalSales = l.totalSales.Add(order.Total)

	slog.Debug("order recorded", "order_id", order.ID, "total", order.Total.StringFixed(2), "total_sales", l.totalSales.StringFixed(2))
	return nil
}

func (l *Ledger) TotalSales() decimal.Decimal { return l.totalSales }

// AllOrders returns the orders in the order they were recorded.
func (l *Ledger) AllOrders() []domain.Order {
	out := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}
	return out
}

func (l *Ledger) Len() int { return len(l.orders) }
