package contracts

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type SearchUsecase interface {
	Search(ctx context.Context, session *models.Session, query string) (*responses.Search, error)
}
