package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/cafe-console/internal/cafe"
	fbdomain "github.com/jcmexdev/cafe-console/internal/feedback/domain"
	orderdomain "github.com/jcmexdev/cafe-console/internal/ordering/domain"
	"github.com/jcmexdev/cafe-console/internal/report/ports"
)

const (
	noOrdersMessage  = "No orders have been placed yet."
	noReviewsMessage = "No reviews available."
)

// Handler serves read-only reports. It never touches the live stores, only
// the snapshots and tickets handed out by source.
type Handler struct {
	source ports.ReportSource
}

func NewHandler(source ports.ReportSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	items := make([]MenuItemResponse, len(snap.Menu))
	for i, it := range snap.Menu {
		items[i] = MenuItemResponse{Name: it.Name, Price: it.Price.StringFixed(2), Stock: it.Stock}
	}
	writeJSON(w, http.StatusOK, ListResponse[MenuItemResponse]{Items: items, Count: len(items)})
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	out := ListResponse[OrderResponse]{Items: make([]OrderResponse, len(snap.Orders)), Count: len(snap.Orders)}
	for i, o := range snap.Orders {
		out.Items[i] = mapOrderToResponse(o)
	}
	if out.Count == 0 {
		out.Message = noOrdersMessage
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOrderByID retrieves a single recorded order by its ID.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	order, ok := h.source.Snapshot().Order(orderID)
	if !ok {
		slog.DebugContext(r.Context(), "order not found", "order_id", orderID)
		writeError(w, http.StatusNotFound, "order_not_found", "order "+orderID+" not found")
		return
	}

	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

// GetTicket returns the kitchen ticket stored for an order.
func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ticket, err := h.source.Ticket(r.Context(), orderID)
	switch {
	case errors.Is(err, cafe.ErrTicketsDisabled):
		writeError(w, http.StatusServiceUnavailable, "tickets_disabled", err.Error())
		return
	case errors.Is(err, cafe.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, "ticket_not_found", "no ticket for order "+orderID)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "failed to read ticket", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "ticket_unavailable", "ticket cache unavailable")
		return
	}

	writeJSON(w, http.StatusOK, mapTicketToResponse(ticket))
}

func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	out := ListResponse[ReviewResponse]{Items: make([]ReviewResponse, len(snap.Reviews)), Count: len(snap.Reviews)}
	for i, rv := range snap.Reviews {
		out.Items[i] = mapReviewToResponse(rv)
	}
	if out.Count == 0 {
		out.Message = noReviewsMessage
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	writeJSON(w, http.StatusOK, SalesResponse{
		TotalSales:  snap.TotalSales.StringFixed(2),
		OrderCount:  len(snap.Orders),
		ReviewCount: len(snap.Reviews),
		AsOf:        snap.TakenAt.Format(time.RFC3339),
	})
}

// mapOrderToResponse converts the order to the HTTP response format.
func mapOrderToResponse(order orderdomain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Total:        order.Total.StringFixed(2),
		Items:        mapItems(order.Items),
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
}

func mapItems(items []orderdomain.LineItem) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, it := range items {
		out[i] = OrderItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Subtotal:  it.Subtotal().StringFixed(2),
		}
	}
	return out
}

func mapTicketToResponse(t cafe.Ticket) TicketResponse {
	items := make([]TicketLineResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = TicketLineResponse{Name: it.Name, Quantity: it.Quantity}
	}
	return TicketResponse{
		OrderID:   t.OrderID,
		Customer:  t.Customer,
		Items:     items,
		Total:     t.Total,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func mapReviewToResponse(r fbdomain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Text:         r.Text,
		Rating:       r.Rating,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
