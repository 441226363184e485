package service

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.ActiveProfile = (*ProfileService)(nil)

type ProfileOpt func(*ProfileService)

// ProfileIDOpt injects the fresh-identifier source, for tests.
func ProfileIDOpt(newID func() string) ProfileOpt {
	return func(s *ProfileService) {
		s.newID = newID
	}
}

// ProfileService owns the saved customer profiles, at most one per
// normalized email, and tracks which profile is active for linking
// into submitted orders.
type ProfileService struct {
	mu       sync.Mutex
	book     *domain.ProfileBook
	saver    port.DocumentSaver
	newID    func() string
	activeID string
}

func NewProfileService(
	book *domain.ProfileBook,
	saver port.DocumentSaver,
	opts ...ProfileOpt,
) *ProfileService {
	s := &ProfileService{
		book:  book,
		saver: saver,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert saves the contact fields under the normalized email key.
// An existing profile is replaced in place, identifier preserved;
// otherwise a fresh profile is appended. The second return reports
// whether the profile was created rather than updated. The resulting
// profile becomes the active one.
func (s *ProfileService) Upsert(form domain.ProfileForm) (domain.Profile, bool, error) {
	const op = "ProfileService.Upsert"
	log := slog.With("op", op)

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	if name == "" || email == "" {
		return domain.Profile{}, false, domain.NewValidationError("name and email are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Profile{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(form.Phone),
		Address:    strings.TrimSpace(form.Address),
		City:       strings.TrimSpace(form.City),
		PostalCode: strings.TrimSpace(form.PostalCode),
	}

	created := false
	if i := s.book.IndexByEmail(email); i >= 0 {
		p.ID = s.book.At(i).ID
		s.book.ReplaceAt(i, p)
	} else {
		p.ID = s.newID()
		s.book.Append(p)
		created = true
	}

	s.activeID = p.ID
	s.saver.Save(port.DocProfiles, s.book.Profiles())

	log.Info("profile saved", "id", p.ID, "created", created)
	return p, created, nil
}

// ActiveProfileID reports the profile linked to the current session,
// if any.
func (s *ProfileService) ActiveProfileID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID, s.activeID != ""
}

func (s *ProfileService) Profiles() []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Profiles()
}
