package inventory

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cafe-console/internal/inventory/domain"
)

// Catalog holds the menu items in insertion order. It is owned by a single
// controller and is not safe for concurrent use.
type Catalog struct {
	order []string
	items map[string]*domain.MenuItem
}

// NewCatalog builds a catalog from a seed. Names must be unique.
func NewCatalog(seed ...domain.MenuItem) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(seed)),
		items: make(map[string]*domain.MenuItem, len(seed)),
	}
	for _, it := range seed {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.items[it.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate item %q", domain.ErrInvalidMenuItem, it.Name)
		}
		item := it
		c.items[it.Name] = &item
		c.order = append(c.order, it.Name)
	}
	return c, nil
}

// DefaultSeed is the menu the café opens with.
func DefaultSeed() []domain.MenuItem {
	return []domain.MenuItem{
		{Name: "Coffee", Price: decimal.RequireFromString("3.00"), Stock: 50},
		{Name: "Tea", Price: decimal.RequireFromString("2.50"), Stock: 40},
		{Name: "Sandwich", Price: decimal.RequireFromString("5.00"), Stock: 30},
		{Name: "Cake", Price: decimal.RequireFromString("4.00"), Stock: 20},
	}
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSeed()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup is a case-sensitive exact match on the item name.
func (c *Catalog) Lookup(name string) (domain.MenuItem, error) {
	item, ok := c.items[name]
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	return *item, nil
}

// DeductStock removes quantity units of name. On any error the catalog is
// left untouched.
func (c *Catalog) DeductStock(name string, quantity int) error {
	item, ok := c.items[name]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	if quantity > item.Stock {
		slog.Debug("insufficient stock", "item", name, "requested", quantity, "available", item.Stock)
		return &domain.InsufficientStockError{Item: name, Requested: quantity, Available: item.Stock}
	}

	item.Stock -= quantity
	slog.Debug("stock deducted", "item", name, "quantity", quantity, "stock", item.Stock)
	return nil
}

// ListItems returns copies of all items in insertion order.
func (c *Catalog) ListItems() []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.items[name])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }
