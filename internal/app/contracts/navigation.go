package contracts

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type NavigationUsecase interface {
	// GetNavigation returns the caller's role menu with runtime badge
	// counts filled in.
	GetNavigation(ctx context.Context, session *models.Session) (*responses.Navigation, error)
}
