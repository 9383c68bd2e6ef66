package httpx

type MenuItemResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Total        string              `json:"total"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
}

type OrderItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
	CreatedAt    string `json:"created_at"`
}

type SalesResponse struct {
	TotalSales  string `json:"total_sales"`
	OrderCount  int    `json:"order_count"`
	ReviewCount int    `json:"review_count"`
	AsOf        string `json:"as_of"`
}

type TicketResponse struct {
	OrderID   string               `json:"order_id"`
	Customer  string               `json:"customer"`
	Items     []TicketLineResponse `json:"items"`
	Total     string               `json:"total"`
	CreatedAt string               `json:"created_at"`
}

type TicketLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ListResponse[T any] struct {
	Items   []T    `json:"items"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
