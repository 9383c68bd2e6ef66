package shell

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func (s *Shell) renderMainMenu() {
	s.printf("\n--- %s Management System ---\n", s.title)
	s.printf("1. Display Menu\n")
	s.printf("2. Place an Order\n")
	s.printf("3. Leave a Review\n")
	s.printf("4. View Total Sales\n")
	s.printf("5. View Orders\n")
	s.printf("6. View Reviews\n")
	s.printf("7. Exit\n")
	s.printf("Enter your choice: ")
}

func (s *Shell) renderMenu() {
	s.printf("\n--- Menu ---\n")
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Item\tPrice\tStock")
	for _, it := range s.cafe.Menu() {
		_, _ = fmt.Fprintf(tw, "%s\t$%s\t%d\n", it.Name, money(it.Price), it.Stock)
	}
	_ = tw.Flush()
}

func (s *Shell) renderSales() {
	s.printf("\n--- Total Sales ---\n")
	s.printf("Total Sales: $%s\n", money(s.cafe.TotalSales()))
}

func (s *Shell) renderOrders() {
	s.printf("\n--- Orders ---\n")
	orders := s.cafe.Orders()
	if len(orders) == 0 {
		s.printf("No orders have been placed yet.\n")
		return
	}

	for _, o := range orders {
		s.printf("Customer: %s\nItems:\n", o.CustomerName)
		for _, it := range o.Items {
			s.printf("  %s x %d\n", it.Name, it.Quantity)
		}
		s.printf("Total: $%s\n\n", money(o.Total))
	}
}

func (s *Shell) renderReviews() {
	s.printf("\n--- Customer Reviews ---\n")
	reviews := s.cafe.Reviews()
	if len(reviews) == 0 {
		s.printf("No reviews available.\n")
		return
	}

	for _, r := range reviews {
		s.printf("%s (Rating: %d/5): %s\n", r.CustomerName, r.Rating, r.Text)
	}
}
