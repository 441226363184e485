package domain

import "time"

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCOD, PaymentCard:
		return true
	}
	return false
}

// Label is the customer-facing payment method name.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentUPI:
		return "UPI"
	case PaymentCOD:
		return "Cash on Delivery"
	case PaymentCard:
		return "Card"
	}
	return string(m)
}

// OrderItem captures name and price at order time, independent of
// later catalog edits.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is an immutable record of a committed purchase.
type Order struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Phone         string        `json:"phone,omitempty"`
	Address       string        `json:"address,omitempty"`
	City          string        `json:"city,omitempty"`
	PostalCode    string        `json:"postal_code,omitempty"`
	Note          string        `json:"note,omitempty"`
	Payment       PaymentMethod `json:"payment"`
	Items         []OrderItem   `json:"items"`
	Total         int64         `json:"total"`
	ProfileID     string        `json:"profile_id,omitempty"`
}

// OrderForm is the submission input: contact fields plus the chosen
// payment method. The cart itself travels separately.
type OrderForm struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Note       string
	Payment    PaymentMethod
}

// OrderHistory is append-only, prior orders are never mutated.
type OrderHistory struct {
	orders []Order
}

func NewOrderHistory(orders []Order) *OrderHistory {
	return &OrderHistory{orders: orders}
}

func (h *OrderHistory) Append(o Order) {
	h.orders = append(h.orders, o)
}

func (h *OrderHistory) Len() int {
	return len(h.orders)
}

func (h *OrderHistory) Orders() []Order {
	out := make([]Order, len(h.orders))
	copy(out, h.orders)
	return out
}

// HandOff tells the caller what happened to a rendered receipt.
type HandOff string

const (
	HandOffDrafted   HandOff = "drafted"
	HandOffLocalOnly HandOff = "local-only"
)

// MailMessage is the single outbound hand-off shape. The core never
// learns whether the external channel actually delivers it.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}
