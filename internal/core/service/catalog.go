package service

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.ProductResolver = (*CatalogService)(nil)

type CatalogOpt func(*CatalogService)

// CatalogClockOpt injects the clock used for time-derived
// identifiers, for deterministic tests.
func CatalogClockOpt(now func() time.Time) CatalogOpt {
	return func(s *CatalogService) {
		s.now = now
	}
}

// CatalogService owns the ordered product collection and the
// administrative entry draft. The draft generation counter guards
// against a late image result landing on a draft that was already
// reset or committed.
type CatalogService struct {
	mu       sync.Mutex
	catalog  *domain.Catalog
	saver    port.DocumentSaver
	images   port.ImageEncoder
	now      func() time.Time
	draft    domain.ProductDraft
	draftGen uint64
}

func NewCatalogService(
	catalog *domain.Catalog,
	saver port.DocumentSaver,
	images port.ImageEncoder,
	opts ...CatalogOpt,
) *CatalogService {
	s := &CatalogService{
		catalog: catalog,
		saver:   saver,
		images:  images,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProduct validates the draft and appends a new product at the end
// of the catalog. The identifier is derived from the name; an already
// taken identifier gets a time-derived suffix so creation never
// overwrites an existing entry.
func (s *CatalogService) AddProduct(draft domain.ProductDraft) (domain.Product, error) {
	const op = "CatalogService.AddProduct"
	log := slog.With("op", op)

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return domain.Product{}, domain.NewValidationError("product name is required")
	}

	if math.IsNaN(draft.Price) || math.IsInf(draft.Price, 0) || draft.Price <= 0 {
		return domain.Product{}, domain.NewValidationError("product price must be a positive amount")
	}
	price := int64(math.Round(draft.Price))
	if price < 1 {
		return domain.Product{}, domain.NewValidationError("product price must be a positive amount")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.SlugifyName(name)
	if id == "" {
		id = "item-" + domain.TimeSuffix(s.now())
	}
	if s.catalog.HasID(id) {
		id += "-" + domain.TimeSuffix(s.now())
	}

	p := domain.Product{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		UsageNotes:  strings.TrimSpace(draft.UsageNotes),
		Price:       price,
		Unit:        strings.TrimSpace(draft.Unit),
		Heat:        draft.Heat,
		Origin:      strings.TrimSpace(draft.Origin),
		IsNew:       draft.IsNew,
		Signature:   draft.Signature,
		Image:       draft.Image,
	}
	s.catalog.Append(p)
	s.saver.Save(port.DocCatalog, s.catalog.Products())

	log.Info("product added", "id", p.ID)
	return p, nil
}

// Draft returns the current administrative entry form.
func (s *CatalogService) Draft() domain.ProductDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// EditDraft applies a change to the current draft.
func (s *CatalogService) EditDraft(apply func(*domain.ProductDraft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.draft)
}

// ResetDraft clears the form. Any image read still in flight for the
// old draft is discarded on completion.
func (s *CatalogService) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetDraftLocked()
}

func (s *CatalogService) resetDraftLocked() {
	s.draft = domain.ProductDraft{}
	s.draftGen++
}

// CommitDraft adds the current draft to the catalog and, on success,
// clears the form. A rejected draft stays on screen untouched.
func (s *CatalogService) CommitDraft() (domain.Product, error) {
	p, err := s.AddProduct(s.Draft())
	if err != nil {
		return domain.Product{}, err
	}
	s.ResetDraft()
	return p, nil
}

// AttachImage asks the image capability to encode path and applies
// the result to whichever draft is current when it arrives. A result
// for a stale draft generation is dropped.
func (s *CatalogService) AttachImage(ctx context.Context, path string) {
	s.mu.Lock()
	gen := s.draftGen
	s.mu.Unlock()

	stream := s.images.EncodeFile(ctx, path)
	go func() {
		image, ok := <-stream
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.draftGen != gen {
			slog.Debug("stale image result dropped", "op", "CatalogService.AttachImage")
			return
		}
		s.draft.Image = image
	}()
}

func (s *CatalogService) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Product(id)
}

func (s *CatalogService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}
