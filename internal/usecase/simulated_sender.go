package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

const DefaultSubmitDelay = time.Second

// SimulatedSender stands in for a network call: it waits Delay and succeeds.
type SimulatedSender struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedSender(delay time.Duration, logger *zap.Logger) *SimulatedSender {
	return &SimulatedSender{Delay: delay, Logger: logger}
}

func (s *SimulatedSender) SendContact(ctx context.Context, msg entity.ContactMessage) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if s.Logger != nil {
		s.Logger.Info("simulated contact delivery",
			zap.String("message_id", msg.ID),
			zap.Duration("delay", s.Delay),
		)
	}
	return nil
}
