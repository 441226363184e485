package port

import (
	"context"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
)

// Durable document slot names. Each store persists under its own key.
const (
	DocAdminConfig = "admin-config"
	DocCatalog     = "catalog"
	DocProfiles    = "profiles"
	DocOrders      = "orders"
)

// DocumentSaver is the write-through persistence hook. Save is
// best-effort: failures are swallowed and logged by the adapter, the
// in-memory state stays authoritative.
type DocumentSaver interface {
	Save(name string, doc any)
}

// DocumentLoader hydrates a store from the last durable snapshot.
// The bool reports whether doc was populated.
type DocumentLoader interface {
	Load(name string, doc any) bool
}

// MailComposer is the outbound hand-off capability for a composed
// receipt. The core has no visibility into actual delivery.
type MailComposer interface {
	Compose(m domain.MailMessage) error
}

// ImageEncoder turns a file into an embeddable image representation.
// The channel yields at most one string and is closed without a value
// when the operation never completes.
type ImageEncoder interface {
	EncodeFile(ctx context.Context, path string) <-chan string
}

type ProductResolver interface {
	Product(id string) (domain.Product, bool)
	Products() []domain.Product
}

type ActiveProfile interface {
	ActiveProfileID() (string, bool)
}

type AdminConfigView interface {
	AdminConfig() domain.AdminConfig
}

// ReceiptDispatcher renders an order and decides the hand-off
// channel, returning the receipt text and what happened to it.
type ReceiptDispatcher interface {
	Dispatch(o domain.Order) (string, domain.HandOff)
}
