package contracts

import (
	"context"
	"time"
	"vitalis-service/internal/app/models"
)

// SessionService owns the session snapshot. It is the single writer of
// session records; every other component reads the session through the
// request context only.
type SessionService interface {
	// CreateSession writes a fresh snapshot for the user and returns it.
	CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error)
	// GetSession loads and parses the snapshot. A missing record yields
	// ErrSessionNotFound; an unparseable record is discarded and yields
	// ErrSessionMalformed, so the caller is treated as anonymous.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	// UpdateSession rewrites an existing snapshot in place, keeping its id.
	UpdateSession(ctx context.Context, session *models.Session) error
	// DeleteSession removes the snapshot. Deleting an absent session is a no-op.
	DeleteSession(ctx context.Context, sessionID string) error
}
