package contracts

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type DashboardRepository interface {
	FindByRole(ctx context.Context, role models.Role) (*models.Dashboard, error)
	UpsertDashboard(ctx context.Context, dashboard *models.Dashboard) error
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) (*responses.DashboardView, error)
	GetSection(ctx context.Context, session *models.Session, sectionKey string) (*responses.DashboardSection, error)
}
