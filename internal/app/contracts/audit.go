package contracts

import (
	"context"
	"time"
)

type LoginEvent struct {
	Event      string    `json:"event"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditPublisher delivers login events to the audit sink. Best effort:
// implementations log and swallow failures, they never return them.
type AuditPublisher interface {
	PublishLoginEvent(ctx context.Context, event LoginEvent)
}
