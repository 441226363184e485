package service

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

type OrderOpt func(*OrderService)

// OrderClockOpt injects the clock behind order identifiers and
// timestamps, for deterministic tests.
func OrderClockOpt(now func() time.Time) OrderOpt {
	return func(s *OrderService) {
		s.now = now
	}
}

// SubmitResult is the accepted outcome of a submission: the immutable
// order, its rendered receipt and where the receipt went.
type SubmitResult struct {
	Order   domain.Order
	Receipt string
	HandOff domain.HandOff
}

// OrderService composes immutable orders out of the cart and the
// contact form. History is append-only; a rejected submission leaves
// cart and form state untouched.
type OrderService struct {
	mu       sync.Mutex
	history  *domain.OrderHistory
	cart     *domain.Cart
	products port.ProductResolver
	profiles port.ActiveProfile
	receipts port.ReceiptDispatcher
	saver    port.DocumentSaver
	now      func() time.Time
}

func NewOrderService(
	history *domain.OrderHistory,
	cart *domain.Cart,
	products port.ProductResolver,
	profiles port.ActiveProfile,
	receipts port.ReceiptDispatcher,
	saver port.DocumentSaver,
	opts ...OrderOpt,
) *OrderService {
	s := &OrderService{
		history:  history,
		cart:     cart,
		products: products,
		profiles: profiles,
		receipts: receipts,
		saver:    saver,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the form and cart, snapshots the cart into an
// order and appends it to history. The cart is cleared only on
// acceptance. Cart lines whose product left the catalog are skipped
// silently rather than failing the submission.
func (s *OrderService) Submit(form domain.OrderForm) (SubmitResult, error) {
	const op = "OrderService.Submit"
	log := slog.With("op", op)

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	if name == "" || email == "" {
		return SubmitResult{}, domain.NewValidationError("missing contact fields")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.HasSelection() {
		return SubmitResult{}, domain.NewValidationError("empty cart")
	}

	now := s.now()
	order := domain.Order{
		ID:            "ord-" + domain.TimeSuffix(now),
		CreatedAt:     now,
		CustomerName:  name,
		CustomerEmail: email,
		Phone:         strings.TrimSpace(form.Phone),
		Address:       strings.TrimSpace(form.Address),
		City:          strings.TrimSpace(form.City),
		PostalCode:    strings.TrimSpace(form.PostalCode),
		Note:          strings.TrimSpace(form.Note),
		Payment:       form.Payment,
	}

	for _, id := range s.cart.Lines() {
		p, ok := s.products.Product(id)
		if !ok {
			log.Warn("cart line no longer in catalog, skipping", "id", id)
			continue
		}
		qty := s.cart.Quantity(id)
		item := domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Subtotal:  p.Price * int64(qty),
		}
		order.Items = append(order.Items, item)
		order.Total += item.Subtotal
	}

	if profileID, ok := s.profiles.ActiveProfileID(); ok {
		order.ProfileID = profileID
	}

	s.history.Append(order)
	s.saver.Save(port.DocOrders, s.history.Orders())
	s.cart.Clear()

	receipt, handOff := s.receipts.Dispatch(order)

	log.Info("order accepted",
		"id", order.ID, "items", len(order.Items), "total", order.Total)
	return SubmitResult{Order: order, Receipt: receipt, HandOff: handOff}, nil
}

func (s *OrderService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Orders()
}
