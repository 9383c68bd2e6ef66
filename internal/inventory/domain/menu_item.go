package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound      = errors.New("invalid item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidMenuItem   = errors.New("invalid menu item")
)

// MenuItem is a purchasable item. Name is the catalog key.
type MenuItem struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

func (m MenuItem) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if !m.Price.IsPositive() {
		return fmt.Errorf("%w: %s must have a positive price, got %s", ErrInvalidMenuItem, m.Name, m.Price.StringFixed(2))
	}
	if m.Stock < 0 {
		return fmt.Errorf("%w: %s has negative stock %d", ErrInvalidMenuItem, m.Name, m.Stock)
	}
	return nil
}

// LineTotal is quantity × price.
func (m MenuItem) LineTotal(quantity int) decimal.Decimal {
	return m.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// InsufficientStockError reports a deduction larger than the stock on hand.
type InsufficientStockError struct {
	Item      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Item, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
