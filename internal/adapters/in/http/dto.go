package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderRequest is the body of POST /api/v1/orders.
// Items reference the menu by id; names and prices are resolved server-side
// so a tampered client cannot price its own order.
type SubmitOrderRequest struct {
	TableNumber string            `json:"table_number"`
	Items       []SubmitOrderItem `json:"items"`
}

// SubmitOrderItem is one requested menu item with its quantity.
// Repeating an item id keeps the last quantity, matching how the cart screen
// overwrites the quantity when a guest re-adds the same dish.
type SubmitOrderItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// SubmitOrderResponse confirms a placed order.
type SubmitOrderResponse struct {
	OrderID       int64  `json:"order_id"`
	Status        string `json:"status"`
	Total         string `json:"total"`
	BonusEligible bool   `json:"bonus_eligible"`
}

// MenuItemResponse is one menu item on the browsing screen.
type MenuItemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Spicy    bool   `json:"spicy"`
	Veg      bool   `json:"veg"`
	Popular  bool   `json:"popular"`
	ImageURL string `json:"image_url,omitempty"`
}

// OrderLineResponse is one line of a tracked order.
type OrderLineResponse struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// OrderResponse is the guest's view of a tracked order.
type OrderResponse struct {
	OrderID     int64               `json:"order_id"`
	TableNumber string              `json:"table_number"`
	Status      string              `json:"status"`
	Progress    float64             `json:"progress"`
	Lines       []OrderLineResponse `json:"lines"`
	Total       string              `json:"total"`
	CreatedAt   time.Time           `json:"created_at"`
}

// PollOrderResponse answers a status poll. Change is present only when the
// status differs from the one the caller last saw.
type PollOrderResponse struct {
	OrderID  int64         `json:"order_id"`
	Status   string        `json:"status"`
	Progress float64       `json:"progress"`
	Change   *StatusChange `json:"change,omitempty"`
}

// StatusChange describes a detected transition.
type StatusChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BoardRowResponse is one row of the staff board.
type BoardRowResponse struct {
	OrderID     int64     `json:"order_id"`
	TableNumber string    `json:"table_number"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse carries the staff dashboard headline numbers.
type DashboardResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/staff/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ClearCompletedResponse reports how many orders a bulk clear removed.
type ClearCompletedResponse struct {
	Removed int64 `json:"removed"`
}
