package contracts

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
)

type SubscriptionUsecase interface {
	GetStatus(ctx context.Context, session *models.Session) (*responses.SubscriptionStatus, error)
	// Activate flips the user's subscription on and rewrites the session
	// snapshot so the gate opens for this session without a re-login.
	Activate(ctx context.Context, session *models.Session, request *requests.ActivateSubscription) (*responses.SubscriptionStatus, error)
}
