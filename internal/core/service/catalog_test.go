package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

func newCatalogService(
	products []domain.Product, saver *fakeSaver, images *fakeImages,
) *CatalogService {
	return NewCatalogService(
		domain.NewCatalog(products), saver, images,
		CatalogClockOpt(tickingClock(time.UnixMilli(1700000000000))),
	)
}

func TestCatalogAddProduct(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		saver := newFakeSaver()
		s := newCatalogService(nil, saver, newFakeImages())

		p, err := s.AddProduct(domain.ProductDraft{
			Name: "Chai Mix", Price: 120, Unit: "100 g pouch",
			Heat: domain.HeatMild,
		})
		require.NoError(t, err)

		assert.Equal(t, "chai-mix", p.ID)
		assert.Equal(t, int64(120), p.Price)
		assert.Equal(t, 1, s.catalog.Len())
		assert.Equal(t, 1, saver.calls)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		saver := newFakeSaver()
		s := newCatalogService(nil, saver, newFakeImages())

		_, err := s.AddProduct(domain.ProductDraft{Name: "   ", Price: 100})

		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, s.catalog.Len())
		assert.Zero(t, saver.calls)
	})

	t.Run("NonPositivePriceRejected", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		for _, price := range []float64{0, -5} {
			_, err := s.AddProduct(domain.ProductDraft{Name: "X", Price: price})

			var vErr domain.ValidationError
			require.ErrorAs(t, err, &vErr)
		}
		assert.Zero(t, s.catalog.Len())
	})

	t.Run("PriceRoundsToNearestInteger", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		p, err := s.AddProduct(domain.ProductDraft{Name: "Rounded", Price: 99.6})
		require.NoError(t, err)

		assert.Equal(t, int64(100), p.Price)
	})

	t.Run("DuplicateNameGetsDistinctID", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		first, err := s.AddProduct(domain.ProductDraft{Name: "Chai Mix", Price: 120})
		require.NoError(t, err)
		second, err := s.AddProduct(domain.ProductDraft{Name: "Chai Mix", Price: 120})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 2, s.catalog.Len())

		got, ok := s.Product(first.ID)
		require.True(t, ok)
		assert.Equal(t, first, got)
	})

	t.Run("UnpronounceableNameFallsBack", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		p, err := s.AddProduct(domain.ProductDraft{Name: "***", Price: 10})
		require.NoError(t, err)

		assert.Contains(t, p.ID, "item-")
	})

	t.Run("SavesCatalogSnapshot", func(t *testing.T) {
		saver := newFakeSaver()
		s := newCatalogService(nil, saver, newFakeImages())

		_, err := s.AddProduct(domain.ProductDraft{Name: "Chai Mix", Price: 120})
		require.NoError(t, err)

		doc, ok := saver.docs[port.DocCatalog]
		require.True(t, ok)
		products, ok := doc.([]domain.Product)
		require.True(t, ok)
		assert.Len(t, products, 1)
	})
}

func TestCatalogDraft(t *testing.T) {
	t.Run("CommitAddsAndClears", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		s.EditDraft(func(d *domain.ProductDraft) {
			d.Name = "Garam Masala"
			d.Price = 220
		})

		p, err := s.CommitDraft()
		require.NoError(t, err)

		assert.Equal(t, "garam-masala", p.ID)
		assert.Equal(t, domain.ProductDraft{}, s.Draft())
	})

	t.Run("RejectedCommitKeepsDraft", func(t *testing.T) {
		s := newCatalogService(nil, newFakeSaver(), newFakeImages())

		s.EditDraft(func(d *domain.ProductDraft) {
			d.Name = "No Price"
		})

		_, err := s.CommitDraft()
		require.Error(t, err)
		assert.Equal(t, "No Price", s.Draft().Name)
	})
}

func TestCatalogAttachImage(t *testing.T) {
	t.Run("ResultLandsOnCurrentDraft", func(t *testing.T) {
		images := newFakeImages()
		s := newCatalogService(nil, newFakeSaver(), images)

		s.AttachImage(context.Background(), "pepper.png")
		images.stream <- "data:image/png;base64,AAAA"
		close(images.stream)

		require.Eventually(t, func() bool {
			return s.Draft().Image == "data:image/png;base64,AAAA"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("StaleResultDropped", func(t *testing.T) {
		images := newFakeImages()
		s := newCatalogService(nil, newFakeSaver(), images)

		s.AttachImage(context.Background(), "pepper.png")
		s.ResetDraft()

		images.stream <- "data:image/png;base64,AAAA"
		close(images.stream)

		assert.Never(t, func() bool {
			return s.Draft().Image != ""
		}, 100*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("NeverCompletedLeavesDraftAlone", func(t *testing.T) {
		images := newFakeImages()
		s := newCatalogService(nil, newFakeSaver(), images)

		s.AttachImage(context.Background(), "pepper.png")
		close(images.stream)

		assert.Never(t, func() bool {
			return s.Draft().Image != ""
		}, 100*time.Millisecond, 5*time.Millisecond)
	})
}
