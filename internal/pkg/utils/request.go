package utils

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
)

// SessionFromContext returns the authenticated session placed on the
// context by the Authenticate middleware.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session, ok
}
