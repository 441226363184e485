package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.ReceiptDispatcher = (*ReceiptService)(nil)

const defaultClosing = "Thank you for your order!"

// ReceiptService renders orders into deterministic multi-line text
// and hands the result to the mail-composer capability when a
// business contact address is configured.
type ReceiptService struct {
	settings port.AdminConfigView
	mail     port.MailComposer
	currency string
}

func NewReceiptService(
	settings port.AdminConfigView,
	mail port.MailComposer,
	currency string,
) *ReceiptService {
	return &ReceiptService{
		settings: settings,
		mail:     mail,
		currency: currency,
	}
}

// RenderLines produces the receipt line by line: header, contact
// block, item lines, total, payment method, optional note, closing.
func (s *ReceiptService) RenderLines(o domain.Order) []string {
	lines := []string{
		"Order " + o.ID,
		"Customer: " + o.CustomerName,
		"Email: " + o.CustomerEmail,
	}
	if o.Phone != "" {
		lines = append(lines, "Phone: "+o.Phone)
	}
	if addr := joinAddress(o.Address, o.City, o.PostalCode); addr != "" {
		lines = append(lines, "Address: "+addr)
	}

	lines = append(lines, "")
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%s ×%d @ %s = %s",
			item.Name, item.Quantity,
			s.amount(item.Price), s.amount(item.Subtotal)))
	}
	lines = append(lines, "")

	lines = append(lines,
		"Total: "+s.amount(o.Total),
		"Payment: "+o.Payment.Label(),
	)
	if o.Note != "" {
		lines = append(lines, "Note: "+o.Note)
	}

	closing := strings.TrimSpace(s.settings.AdminConfig().Tagline)
	if closing == "" {
		closing = defaultClosing
	}
	return append(lines, closing)
}

func (s *ReceiptService) Render(o domain.Order) string {
	return strings.Join(s.RenderLines(o), "\n")
}

// Dispatch renders the receipt and decides the hand-off channel: a
// configured contact address means the text goes to the external mail
// composer, otherwise it stays on the device. A compose failure is
// logged only; the channel was invoked and the core sees no further.
func (s *ReceiptService) Dispatch(o domain.Order) (string, domain.HandOff) {
	const op = "ReceiptService.Dispatch"
	log := slog.With("op", op)

	text := s.Render(o)

	to := strings.TrimSpace(s.settings.AdminConfig().ContactEmail)
	if to == "" {
		log.Info("no hand-off channel configured, receipt stored locally",
			"order", o.ID)
		return text, domain.HandOffLocalOnly
	}

	msg := domain.MailMessage{
		To:      to,
		Subject: "New order " + o.ID,
		Body:    text,
	}
	if err := s.mail.Compose(msg); err != nil {
		log.Warn("mail composer failed", "order", o.ID, "err", err)
	}
	return text, domain.HandOffDrafted
}

func (s *ReceiptService) amount(v int64) string {
	return fmt.Sprintf("%s%d", s.currency, v)
}

func joinAddress(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
