package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

type SaveOutput struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// OverlayUseCase owns the open search overlays. Each one gets its own
// SaveCounter, discarded when the overlay is dismissed.
type OverlayUseCase struct {
	Sessions *SessionStore[*OverlaySession]
	Catalog  entity.Catalog
	Logger   *zap.Logger
}

func NewOverlayUseCase(catalog entity.Catalog, logger *zap.Logger) *OverlayUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverlayUseCase{
		Sessions: NewSessionStore[*OverlaySession](),
		Catalog:  catalog,
		Logger:   logger,
	}
}

func (uc *OverlayUseCase) Open() OverlayView {
	session := NewOverlaySession(uuid.New().String(), uc.Catalog, time.Now())
	uc.Sessions.Put(session.ID(), session)
	return session.View()
}

func (uc *OverlayUseCase) Get(id string) (OverlayView, error) {
	session, err := uc.Sessions.Get(id)
	if err != nil {
		return OverlayView{}, err
	}
	return session.View(), nil
}

func (uc *OverlayUseCase) Save(id, slug string) (SaveOutput, error) {
	session, err := uc.Sessions.Get(id)
	if err != nil {
		return SaveOutput{}, err
	}
	n := session.Save(slug)
	uc.Logger.Debug("product saved",
		zap.String("overlay_id", id),
		zap.String("slug", slug),
		zap.Int("count", n),
	)
	return SaveOutput{Slug: slug, Count: n}, nil
}

func (uc *OverlayUseCase) SetQuery(id, q string) (OverlayView, error) {
	session, err := uc.Sessions.Get(id)
	if err != nil {
		return OverlayView{}, err
	}
	session.SetQuery(q)
	return session.View(), nil
}

// Close dismisses the overlay; its counts are gone afterwards.
func (uc *OverlayUseCase) Close(id string) error {
	if !uc.Sessions.Delete(id) {
		return ErrSessionNotFound
	}
	return nil
}
