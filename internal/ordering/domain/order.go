package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidOrder = errors.New("invalid order")

// Order is a completed customer order. It is immutable once recorded.
type Order struct {
	ID           string
	CustomerName string
	Items        []LineItem
	Total        decimal.Decimal
	CreatedAt    time.Time
}

// LineItem is one item of an order. Item names are unique within an order.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Quantities returns the order as a mapping of item name to quantity.
func (o Order) Quantities() map[string]int {
	out := make(map[string]int, len(o.Items))
	for _, it := range o.Items {
		out[it.Name] += it.Quantity
	}
	return out
}

// Clone returns a deep copy so callers can't alias the line items.
func (o Order) Clone() Order {
	o.Items = append([]LineItem(nil), o.Items...)
	return o
}

// Request is one (item, quantity) selection made during an order.
type Request struct {
	Item     string
	Quantity int
}
