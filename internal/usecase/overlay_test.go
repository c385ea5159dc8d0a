package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

func cardBySlug(t *testing.T, cards []entity.ProductCard, slug string) entity.ProductCard {
	t.Helper()
	for _, c := range cards {
		if c.Slug == slug {
			return c
		}
	}
	t.Fatalf("card %q not found", slug)
	return entity.ProductCard{}
}

func TestOverlayOpenRendersCatalog(t *testing.T) {
	uc := NewOverlayUseCase(entity.DefaultCatalog(), zap.NewNop())

	view := uc.Open()

	require.Len(t, view.RecentlyViewed, 3)
	require.Len(t, view.Related, 6)
	assert.Equal(t, 24, cardBySlug(t, view.RecentlyViewed, "double-chocolate-chip-cookies").Saves)
	assert.Equal(t, 29, cardBySlug(t, view.Related, "fudgy-oreo-brownies").Saves)
	assert.Equal(t, 22, cardBySlug(t, view.Related, "lemon-bars").Saves)
	assert.Equal(t, "/products/smores-cookies", cardBySlug(t, view.RecentlyViewed, "smores-cookies").Href)
}

func TestOverlaySaveIncrementsPerSession(t *testing.T) {
	uc := NewOverlayUseCase(entity.DefaultCatalog(), zap.NewNop())
	a := uc.Open()
	b := uc.Open()

	out, err := uc.Save(a.ID, "double-chocolate-chip-cookies")
	require.NoError(t, err)
	assert.Equal(t, SaveOutput{Slug: "double-chocolate-chip-cookies", Count: 25}, out)

	out, err = uc.Save(a.ID, "double-chocolate-chip-cookies")
	require.NoError(t, err)
	assert.Equal(t, 26, out.Count)

	other, err := uc.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 24, cardBySlug(t, other.RecentlyViewed, "double-chocolate-chip-cookies").Saves)

	view, err := uc.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 26, cardBySlug(t, view.RecentlyViewed, "double-chocolate-chip-cookies").Saves)
}

func TestOverlaySaveUnknownAndFixedCards(t *testing.T) {
	uc := NewOverlayUseCase(entity.DefaultCatalog(), zap.NewNop())
	v := uc.Open()

	out, err := uc.Save(v.ID, "new-unseen-product")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)

	out, err = uc.Save(v.ID, "lemon-bars")
	require.NoError(t, err)
	assert.Equal(t, 23, out.Count)
}

func TestOverlayQueryIsEchoedNotFiltered(t *testing.T) {
	uc := NewOverlayUseCase(entity.DefaultCatalog(), zap.NewNop())
	v := uc.Open()

	view, err := uc.SetQuery(v.ID, "lemon")
	require.NoError(t, err)
	assert.Equal(t, "lemon", view.Query)
	assert.Len(t, view.Related, 6)
}

func TestOverlayCloseDiscardsCounts(t *testing.T) {
	uc := NewOverlayUseCase(entity.DefaultCatalog(), zap.NewNop())
	v := uc.Open()
	_, err := uc.Save(v.ID, "smores-cookies")
	require.NoError(t, err)

	require.NoError(t, uc.Close(v.ID))

	_, err = uc.Save(v.ID, "smores-cookies")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, uc.Close(v.ID), ErrSessionNotFound)

	fresh := uc.Open()
	assert.Equal(t, 31, cardBySlug(t, fresh.RecentlyViewed, "smores-cookies").Saves)
}
