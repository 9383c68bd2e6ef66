package shell

import (
	"context"
	"errors"
	"strconv"

	invdomain "github.com/jcmexdev/cafe-console/internal/inventory/domain"
)

// takeOrder reads item/quantity pairs until "done" or end of input.
func (s *Shell) takeOrder(ctx context.Context) {
	name, ok := s.prompt("\nEnter customer name: ")
	if !ok {
		return
	}

	session := s.cafe.BeginOrder(ctx, name)
	for {
		s.renderMenu()
		item, ok := s.prompt("Enter the item name (or type 'done' to finish): ")
		if !ok || item == doneKeyword {
			break
		}

		if _, err := s.cafe.LookupItem(item); err != nil {
			s.printf("Invalid item. Please choose again.\n")
			continue
		}

		raw, ok := s.prompt("Enter quantity for " + item + ": ")
		if !ok {
			break
		}
		qty, err := strconv.Atoi(raw)
		if err != nil {
			s.printf("Invalid quantity. Please enter a whole number.\n")
			continue
		}

		res, err := session.Add(ctx, item, qty)
		var stockErr *invdomain.InsufficientStockError
		switch {
		case err == nil:
			s.printf("%d x %s added to the order. Subtotal: $%s\n", res.Quantity, res.Item, money(res.LineTotal))
		case errors.As(err, &stockErr):
			s.printf("Insufficient stock for %s. Available stock: %d\n", item, stockErr.Available)
		case errors.Is(err, invdomain.ErrItemNotFound):
			s.printf("Invalid item. Please choose again.\n")
		case errors.Is(err, invdomain.ErrInvalidQuantity):
			s.printf("Invalid quantity. Quantity must be at least 1.\n")
		default:
			s.printf("Could not add %s: %v\n", item, err)
		}
	}

	out, err := session.Finish(ctx)
	switch {
	case err != nil:
		s.printf("Could not complete the order: %v\n", err)
	case out.Completed:
		s.printf("\nThank you for your order, %s! Your total bill is: $%s\n", name, money(out.Order.Total))
	default:
		s.printf("No items ordered. Thank you!\n")
	}
}
