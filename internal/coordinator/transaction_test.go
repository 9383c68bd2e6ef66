package coordinator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog"
	"github.com/jcmexdev/cafe-console/internal/coordinator/txlog/memory"
	"github.com/jcmexdev/cafe-console/internal/inventory"
	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
	"github.com/jcmexdev/cafe-console/internal/ordering"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
)

type fixture struct {
	catalog *inventory.Catalog
	ledger  *ordering.Ledger
	journal *memory.Repository
	coord   *Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog: inventory.DefaultCatalog(),
		ledger:  ordering.NewLedger(),
		journal: memory.New(),
	}
	seq := 0
	f.coord = New(f.catalog, f.ledger, f.journal,
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { seq++; return fmt.Sprintf("order-%d", seq) }),
	)
	return f
}

func (f *fixture) stock(t *testing.T, name string) int {
	t.Helper()
	item, err := f.catalog.Lookup(name)
	require.NoError(t, err)
	return item.Stock
}

func TestTransaction_TenCoffees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	res, err := tx.Add(ctx, "Coffee", 10)
	require.NoError(t, err)
	assert.Equal(t, "30.00", res.LineTotal.StringFixed(2))
	assert.Equal(t, 40, f.stock(t, "Coffee"))

	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	require.True(t, out.Completed)
	assert.Equal(t, "order-1", out.Order.ID)
	assert.Equal(t, map[string]int{"Coffee": 10}, out.Order.Quantities())
	assert.Equal(t, "30.00", out.Order.Total.StringFixed(2))

	require.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, "30.00", f.ledger.TotalSales().StringFixed(2))
}

func TestTransaction_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Coffee", 60)
	require.ErrorIs(t, err, invdomain.ErrInsufficientStock)
	var stockErr *invdomain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 50, stockErr.Available)
	assert.Equal(t, 50, f.stock(t, "Coffee"))
	assert.True(t, tx.Bill().IsZero())

	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	assert.False(t, out.Completed)
	assert.Equal(t, 0, f.ledger.Len())
}

func TestTransaction_UnknownItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Espresso", 1)
	require.ErrorIs(t, err, invdomain.ErrItemNotFound)
	assert.Empty(t, tx.Lines())
	assert.Equal(t, inventory.DefaultCatalog().ListItems(), f.catalog.ListItems())
}

func TestTransaction_InvalidQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	for _, q := range []int{0, -1} {
		_, err := tx.Add(ctx, "Tea", q)
		assert.ErrorIs(t, err, invdomain.ErrInvalidQuantity)
	}
	assert.Equal(t, 40, f.stock(t, "Tea"))
	assert.Empty(t, tx.Lines())
}

func TestTransaction_AccumulatesDuplicateItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Coffee", 2)
	require.NoError(t, err)
	_, err = tx.Add(ctx, "Tea", 1)
	require.NoError(t, err)
	res, err := tx.Add(ctx, "Coffee", 3)
	require.NoError(t, err)
	assert.Equal(t, "9.00", res.LineTotal.StringFixed(2))
	assert.Equal(t, "17.50", res.Bill.StringFixed(2))

	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	require.Len(t, out.Order.Items, 2)
	assert.Equal(t, "Coffee", out.Order.Items[0].Name)
	assert.Equal(t, 5, out.Order.Items[0].Quantity)
	assert.Equal(t, "15.00", out.Order.Items[0].Subtotal().StringFixed(2))
	assert.Equal(t, map[string]int{"Coffee": 5, "Tea": 1}, out.Order.Quantities())
	assert.Equal(t, 45, f.stock(t, "Coffee"))
}

func TestTransaction_RejectionsDoNotEndTheOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Espresso", 1)
	require.Error(t, err)
	_, err = tx.Add(ctx, "Cake", 21)
	require.Error(t, err)
	_, err = tx.Add(ctx, "Cake", 20)
	require.NoError(t, err)

	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, "80.00", out.Order.Total.StringFixed(2))
	assert.Equal(t, 0, f.stock(t, "Cake"))
}

func TestTransaction_EmptyOrderLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.coord.Begin(ctx, "Ana").Finish(ctx)
	require.NoError(t, err)
	assert.False(t, out.Completed)
	assert.Equal(t, 0, f.ledger.Len())
	assert.True(t, f.ledger.TotalSales().IsZero())
}

func TestTransaction_ClosedAfterFinish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Tea", 1)
	require.NoError(t, err)
	_, err = tx.Finish(ctx)
	require.NoError(t, err)

	_, err = tx.Add(ctx, "Tea", 1)
	assert.ErrorIs(t, err, ErrTransactionClosed)
	_, err = tx.Finish(ctx)
	assert.ErrorIs(t, err, ErrTransactionClosed)
	assert.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, 39, f.stock(t, "Tea"))
}

func TestPlaceOrder_RepeatedCustomersAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := f.coord.PlaceOrder(ctx, "Ana", []orderdomain.Request{{Item: "Tea", Quantity: 2}}, nil)
		require.NoError(t, err)
		require.True(t, out.Completed)
	}

	orders := f.ledger.AllOrders()
	require.Len(t, orders, 2)
	assert.NotEqual(t, orders[0].ID, orders[1].ID)
	assert.Equal(t, "10.00", f.ledger.TotalSales().StringFixed(2))
}

func TestPlaceOrder_ObservesEveryLine(t *testing.T) {
	f := newFixture(t)

	var seen []error
	out, err := f.coord.PlaceOrder(context.Background(), "Bo", []orderdomain.Request{
		{Item: "Sandwich", Quantity: 1},
		{Item: "Espresso", Quantity: 1},
		{Item: "Sandwich", Quantity: 100},
	}, func(_ orderdomain.Request, _ LineResult, err error) {
		seen = append(seen, err)
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	assert.NoError(t, seen[0])
	assert.ErrorIs(t, seen[1], invdomain.ErrItemNotFound)
	assert.ErrorIs(t, seen[2], invdomain.ErrInsufficientStock)
	assert.Equal(t, "5.00", out.Order.Total.StringFixed(2))
}

func TestTotalSalesInvariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	script := [][]orderdomain.Request{
		{{Item: "Coffee", Quantity: 3}, {Item: "Cake", Quantity: 2}},
		{{Item: "Espresso", Quantity: 1}},
		{{Item: "Tea", Quantity: 40}, {Item: "Tea", Quantity: 1}},
		{{Item: "Coffee", Quantity: 47}, {Item: "Coffee", Quantity: 1}},
		{},
		{{Item: "Sandwich", Quantity: 7}, {Item: "Cake", Quantity: 18}},
	}
	for i, reqs := range script {
		_, err := f.coord.PlaceOrder(ctx, fmt.Sprintf("c%d", i), reqs, nil)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, o := range f.ledger.AllOrders() {
			sum = sum.Add(o.Total)
		}
		require.True(t, sum.Equal(f.ledger.TotalSales()), "after order %d", i)
		for _, it := range f.catalog.ListItems() {
			require.GreaterOrEqual(t, it.Stock, 0)
		}
	}
	assert.Equal(t, 4, f.ledger.Len())
}

func TestJournal_RecordsTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := f.coord.Begin(ctx, "Ana")
	_, _ = tx.Add(ctx, "Coffee", 1)
	_, _ = tx.Add(ctx, "Espresso", 1)
	_, err := tx.Finish(ctx)
	require.NoError(t, err)

	entries, err := f.journal.List(ctx, tx.ID())
	require.NoError(t, err)
	statuses := make([]txlog.Status, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, e.Status)
	}
	assert.Equal(t, []txlog.Status{
		txlog.StatusStarted,
		txlog.StatusLineAdded,
		txlog.StatusLineRejected,
		txlog.StatusCompleted,
	}, statuses)
	assert.Equal(t, "Espresso", entries[2].Item)
	assert.Contains(t, entries[2].Error, "invalid item")

	empty := f.coord.Begin(ctx, "Bo")
	_, err = empty.Finish(ctx)
	require.NoError(t, err)
	entries, err = f.journal.List(ctx, empty.ID())
	require.NoError(t, err)
	assert.Equal(t, txlog.StatusEmpty, entries[len(entries)-1].Status)
}

// flakyLedger fails until err is cleared.
type flakyLedger struct {
	*ordering.Ledger
	err error
}

func (l *flakyLedger) Record(o orderdomain.Order) error {
	if l.err != nil {
		return l.err
	}
	return l.Ledger.Record(o)
}

type failingJournal struct{ memory.Repository }

func (*failingJournal) Save(context.Context, *txlog.Entry) error { return errors.New("disk full") }

func TestFinish_LedgerErrorKeepsTransactionOpen(t *testing.T) {
	catalog := inventory.DefaultCatalog()
	ledger := &flakyLedger{Ledger: ordering.NewLedger(), err: errors.New("ledger unavailable")}
	c := New(catalog, ledger, nil)
	ctx := context.Background()

	tx := c.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Tea", 5)
	require.NoError(t, err)

	_, err = tx.Finish(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransactionClosed)
	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, "12.5", tx.Bill().String())

	ledger.err = nil
	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	require.True(t, out.Completed)
	assert.Equal(t, map[string]int{"Tea": 5}, out.Order.Quantities())
	assert.Equal(t, 1, ledger.Len())

	tea, err := catalog.Lookup("Tea")
	require.NoError(t, err)
	assert.Equal(t, 35, tea.Stock)
	assert.Equal(t, "12.5", ledger.TotalSales().String())

	_, err = tx.Finish(ctx)
	assert.ErrorIs(t, err, ErrTransactionClosed)
}

// freeCatalog serves items priced at zero, which NewCatalog refuses.
type freeCatalog struct{ stock map[string]int }

func (c *freeCatalog) Lookup(name string) (invdomain.MenuItem, error) {
	s, ok := c.stock[name]
	if !ok {
		return invdomain.MenuItem{}, invdomain.ErrItemNotFound
	}
	return invdomain.MenuItem{Name: name, Price: decimal.Zero, Stock: s}, nil
}

func (c *freeCatalog) DeductStock(name string, quantity int) error {
	c.stock[name] -= quantity
	return nil
}

func TestFinish_ZeroBillRecordsNothing(t *testing.T) {
	ledger := ordering.NewLedger()
	c := New(&freeCatalog{stock: map[string]int{"Water": 5}}, ledger, nil)
	ctx := context.Background()

	tx := c.Begin(ctx, "Ana")
	_, err := tx.Add(ctx, "Water", 2)
	require.NoError(t, err)

	out, err := tx.Finish(ctx)
	require.NoError(t, err)
	assert.False(t, out.Completed)
	assert.Equal(t, 0, ledger.Len())
	assert.True(t, ledger.TotalSales().IsZero())
}

func TestJournalFailureDoesNotFailOrder(t *testing.T) {
	ledger := ordering.NewLedger()
	c := New(inventory.DefaultCatalog(), ledger, &failingJournal{})

	out, err := c.PlaceOrder(context.Background(), "Ana", []orderdomain.Request{{Item: "Tea", Quantity: 1}}, nil)
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, 1, ledger.Len())
}
