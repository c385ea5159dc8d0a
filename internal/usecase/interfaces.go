package usecase

import (
	"context"

	"github.com/aprilandbutter/storefront/internal/entity"
)

// ContactSender delivers a validated contact message. Implementations must
// return promptly once ctx is done.
type ContactSender interface {
	SendContact(ctx context.Context, msg entity.ContactMessage) error
}

type ContactSenderFunc func(ctx context.Context, msg entity.ContactMessage) error

func (f ContactSenderFunc) SendContact(ctx context.Context, msg entity.ContactMessage) error {
	return f(ctx, msg)
}
