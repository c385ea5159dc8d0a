package usecase

import (
	"sync"
	"time"

	"github.com/aprilandbutter/storefront/internal/entity"
)

type OverlayView struct {
	ID             string               `json:"id"`
	Query          string               `json:"query"`
	RecentlyViewed []entity.ProductCard `json:"recently_viewed"`
	Related        []entity.ProductCard `json:"related"`
	OpenedAt       time.Time            `json:"opened_at"`
}

// OverlaySession is the transient state behind one open search overlay.
type OverlaySession struct {
	id       string
	catalog  entity.Catalog
	counter  *SaveCounter
	openedAt time.Time

	mu    sync.Mutex
	query string
}

func NewOverlaySession(id string, catalog entity.Catalog, openedAt time.Time) *OverlaySession {
	return &OverlaySession{
		id:       id,
		catalog:  catalog,
		counter:  NewSaveCounter(catalog.Seeds()),
		openedAt: openedAt,
	}
}

func (s *OverlaySession) ID() string {
	return s.id
}

// Save hearts a product. Catalog cards with a fixed display count continue
// from that count; any other key starts from its seed or 0.
func (s *OverlaySession) Save(productKey string) int {
	base := 0
	if p, ok := s.catalog.FindBySlug(productKey); ok {
		base = p.DisplaySaves
	}
	return s.counter.IncrementSaveFrom(productKey, base)
}

// SetQuery records the search box text. Nothing is filtered by it.
func (s *OverlaySession) SetQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

func (s *OverlaySession) View() OverlayView {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()

	return OverlayView{
		ID:             s.id,
		Query:          q,
		RecentlyViewed: s.cards(s.catalog.RecentlyViewed),
		Related:        s.cards(s.catalog.Related),
		OpenedAt:       s.openedAt,
	}
}

func (s *OverlaySession) cards(products []entity.Product) []entity.ProductCard {
	out := make([]entity.ProductCard, 0, len(products))
	for _, p := range products {
		saves := p.DisplaySaves
		if n, ok := s.counter.Count(p.Slug); ok {
			saves = n
		}
		out = append(out, entity.ProductCard{
			ID:    p.ID,
			Name:  p.Name,
			Image: p.Image,
			Slug:  p.Slug,
			Href:  p.Href(),
			Saves: saves,
		})
	}
	return out
}
