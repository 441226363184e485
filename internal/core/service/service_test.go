package service

import (
	"context"
	"time"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
)

// Test doubles shared across the service tests.

type fakeSaver struct {
	docs  map[string]any
	calls int
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{docs: make(map[string]any)}
}

func (s *fakeSaver) Save(name string, doc any) {
	s.docs[name] = doc
	s.calls++
}

type fakeImages struct {
	stream chan string
}

func newFakeImages() *fakeImages {
	return &fakeImages{stream: make(chan string, 1)}
}

func (f *fakeImages) EncodeFile(context.Context, string) <-chan string {
	return f.stream
}

type fakeResolver map[string]domain.Product

func (r fakeResolver) Product(id string) (domain.Product, bool) {
	p, ok := r[id]
	return p, ok
}

func (r fakeResolver) Products() []domain.Product {
	out := make([]domain.Product, 0, len(r))
	for _, p := range r {
		out = append(out, p)
	}
	return out
}

type fakeActiveProfile struct {
	id string
}

func (f fakeActiveProfile) ActiveProfileID() (string, bool) {
	return f.id, f.id != ""
}

type fakeDispatcher struct {
	lastOrder domain.Order
	calls     int
}

func (d *fakeDispatcher) Dispatch(o domain.Order) (string, domain.HandOff) {
	d.lastOrder = o
	d.calls++
	return "receipt for " + o.ID, domain.HandOffLocalOnly
}

type fakeSettings struct {
	cfg domain.AdminConfig
}

func (f fakeSettings) AdminConfig() domain.AdminConfig {
	return f.cfg
}

type fakeMail struct {
	sent []domain.MailMessage
	err  error
}

func (m *fakeMail) Compose(msg domain.MailMessage) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func tickingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}
