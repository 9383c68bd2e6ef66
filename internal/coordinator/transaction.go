package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog"
	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

var ErrTransactionClosed = errors.New("order transaction already finished")

// LineResult describes a request that was applied to the order.
type LineResult struct {
	Item      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	// Bill is the running bill after this line.
	Bill decimal.Decimal
}

// Outcome is the result of finishing a transaction. Completed is false when
// the bill is zero; the ledger is untouched in that case.
type Outcome struct {
	Completed bool
	Order     orderdomain.Order
}

// Transaction accumulates one customer's order. Every rejected request
// leaves the catalog, the ledger and the transaction untouched.
type Transaction struct {
	c        *Coordinator
	id       string
	customer string
	lines    []orderdomain.LineItem
	index    map[string]int
	bill     decimal.Decimal
	closed   bool
}

func (t *Transaction) ID() string { return t.id }

func (t *Transaction) CustomerName() string { return t.customer }

func (t *Transaction) Bill() decimal.Decimal { return t.bill }

func (t *Transaction) Lines() []orderdomain.LineItem {
	return append([]orderdomain.LineItem(nil), t.lines...)
}

// Add validates a request, deducts the stock and adds the line to the bill.
// Requesting an item already in the order accumulates its quantity.
func (t *Transaction) Add(ctx context.Context, itemName string, quantity int) (LineResult, error) {
	ctx = telemetry.WithOrderID(ctx, t.id)
	if t.closed {
		return LineResult{}, ErrTransactionClosed
	}

	if quantity <= 0 {
		return LineResult{}, t.reject(ctx, itemName, quantity, fmt.Errorf("%w: %d", invdomain.ErrInvalidQuantity, quantity))
	}

	item, err := t.c.catalog.Lookup(itemName)
	if err != nil {
		return LineResult{}, t.reject(ctx, itemName, quantity, err)
	}
	if err := t.c.catalog.DeductStock(item.Name, quantity); err != nil {
		return LineResult{}, t.reject(ctx, itemName, quantity, err)
	}

	lineTotal := item.LineTotal(quantity)
	if i, ok := t.index[item.Name]; ok {
		t.lines[i].Quantity += quantity
	} else {
		t.index[item.Name] = len(t.lines)
		t.lines = append(t.lines, orderdomain.LineItem{Name: item.Name, Quantity: quantity, UnitPrice: item.Price})
	}
	t.bill = t.bill.Add(lineTotal)

	slog.InfoContext(ctx, "line added", "item", item.Name, "quantity", quantity, "line_total", lineTotal.StringFixed(2), "bill", t.bill.StringFixed(2))
	t.c.record(ctx, txlog.NewEntry(ctx, t.id, txlog.StatusLineAdded, item.Name, quantity, map[string]any{
		"line_total": lineTotal.StringFixed(2),
		"bill":       t.bill.StringFixed(2),
	}, nil))

	return LineResult{
		Item:      item.Name,
		Quantity:  quantity,
		UnitPrice: item.Price,
		LineTotal: lineTotal,
		Bill:      t.bill,
	}, nil
}

// Finish closes the transaction. If the bill is positive the order is
// appended to the ledger exactly once. A failed ledger write leaves the
// transaction open so Finish can be retried.
func (t *Transaction) Finish(ctx context.Context) (Outcome, error) {
	ctx = telemetry.WithOrderID(ctx, t.id)
	if t.closed {
		return Outcome{}, ErrTransactionClosed
	}

	if !t.bill.IsPositive() {
		t.closed = true
		slog.InfoContext(ctx, "order transaction finished without items", "customer", t.customer)
		t.c.record(ctx, txlog.NewEntry(ctx, t.id, txlog.StatusEmpty, "", 0, map[string]any{"customer": t.customer}, nil))
		return Outcome{Completed: false}, nil
	}

	order := orderdomain.Order{
		ID:           t.id,
		CustomerName: t.customer,
		Items:        t.Lines(),
		Total:        t.bill,
		CreatedAt:    t.c.now().UTC(),
	}
	if err := t.c.ledger.Record(order); err != nil {
		slog.ErrorContext(ctx, "failed to record order", "error", err)
		return Outcome{}, fmt.Errorf("coordinator: record order %s: %w", order.ID, err)
	}
	t.closed = true

	slog.InfoContext(ctx, "order completed", "customer", t.customer, "total", order.Total.StringFixed(2), "lines", len(order.Items))
	t.c.record(ctx, txlog.NewEntry(ctx, t.id, txlog.StatusCompleted, "", 0, map[string]any{
		"customer": t.customer,
		"total":    order.Total.StringFixed(2),
	}, nil))

	return Outcome{Completed: true, Order: order}, nil
}

func (t *Transaction) reject(ctx context.Context, itemName string, quantity int, err error) error {
	slog.InfoContext(ctx, "line rejected", "item", itemName, "quantity", quantity, "reason", err)
	t.c.record(ctx, txlog.NewEntry(ctx, t.id, txlog.StatusLineRejected, itemName, quantity, nil, err))
	return err
}
