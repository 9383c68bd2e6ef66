package cafe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

const ticketTimeout = 2 * time.Second

var (
	ErrTicketsDisabled = errors.New("kitchen tickets are not configured")
	ErrTicketNotFound  = errors.New("kitchen ticket not found")
)

// Ticket is the kitchen copy of a completed order.
type Ticket struct {
	OrderID   string       `json:"order_id"`
	Customer  string       `json:"customer"`
	Items     []TicketLine `json:"items"`
	Total     string       `json:"total"`
	CreatedAt time.Time    `json:"created_at"`
}

type TicketLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func NewTicket(o orderdomain.Order) Ticket {
	lines := make([]TicketLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = TicketLine{Name: it.Name, Quantity: it.Quantity}
	}
	return Ticket{
		OrderID:   o.ID,
		Customer:  o.CustomerName,
		Items:     lines,
		Total:     o.Total.StringFixed(2),
		CreatedAt: o.CreatedAt,
	}
}

// sendTicket never fails the order: the ticket is a best-effort mirror.
func (cf *Cafe) sendTicket(ctx context.Context, o orderdomain.Order) {
	if cf.tickets == nil {
		return
	}
	ctx = telemetry.WithOrderID(ctx, o.ID)

	raw, err := json.Marshal(NewTicket(o))
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode kitchen ticket", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, ticketTimeout)
	defer cancel()

	key := cf.tickets.GenerateKey("ticket", o.ID)
	if err := cf.tickets.Set(ctx, key, string(raw), cf.ticketTTL); err != nil {
		slog.WarnContext(ctx, "failed to publish kitchen ticket", "key", key, "error", err)
		return
	}
	slog.DebugContext(ctx, "kitchen ticket published", "key", key)
}

// Ticket reads back the kitchen ticket of an order. Safe to call from any
// goroutine as long as the configured cache is.
func (cf *Cafe) Ticket(ctx context.Context, orderID string) (Ticket, error) {
	if cf.tickets == nil {
		return Ticket{}, ErrTicketsDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, ticketTimeout)
	defer cancel()

	raw, err := cf.tickets.Get(ctx, cf.tickets.GenerateKey("ticket", orderID))
	if err != nil {
		return Ticket{}, fmt.Errorf("cafe: read ticket %s: %w", orderID, err)
	}
	if raw == "" {
		return Ticket{}, ErrTicketNotFound
	}

	var t Ticket
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Ticket{}, fmt.Errorf("cafe: decode ticket %s: %w", orderID, err)
	}
	return t, nil
}
