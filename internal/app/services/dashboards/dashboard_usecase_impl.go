package dashboards

import (
	"context"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
)

type dashboardUsecase struct {
	DashboardRepository contracts.DashboardRepository
	NavigationUsecase   contracts.NavigationUsecase
}

func NewDashboardUsecase(dashboardRepository contracts.DashboardRepository, navigationUsecase contracts.NavigationUsecase) contracts.DashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository: dashboardRepository,
		NavigationUsecase:   navigationUsecase,
	}
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.DashboardView, error) {
	dashboard, err := uc.findDashboard(ctx, session.Role)
	if err != nil {
		return nil, err
	}

	navigation, err := uc.NavigationUsecase.GetNavigation(ctx, session)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardView{
		Role:       session.Role.String(),
		Title:      dashboard.Title,
		Navigation: navigation.Items,
		View:       dashboard.View,
		User: responses.AuthUser{
			ID:                 session.UserID,
			Name:               session.Name,
			Email:              session.Email,
			Role:               session.Role.String(),
			SubscriptionActive: session.SubscriptionActive,
		},
	}, nil
}

func (uc *dashboardUsecase) GetSection(ctx context.Context, session *models.Session, sectionKey string) (*responses.DashboardSection, error) {
	dashboard, err := uc.findDashboard(ctx, session.Role)
	if err != nil {
		return nil, err
	}

	section, found := dashboard.Section(sectionKey)
	if !found {
		// Unknown sub-paths under the dashboard root are a placeholder,
		// not an error: partially built areas respond with a soft 404.
		return &responses.DashboardSection{
			Role:      session.Role.String(),
			Section:   sectionKey,
			Available: false,
			Message:   constvars.SectionNotAvailableYet,
		}, nil
	}

	return &responses.DashboardSection{
		Role:      session.Role.String(),
		Section:   section.Key,
		Title:     section.Title,
		Available: true,
		Data:      section.Data,
	}, nil
}

// findDashboard loads the role's view document. The mapping is total:
// a valid role without a seeded document is an application fault, not
// a client-visible not-found.
func (uc *dashboardUsecase) findDashboard(ctx context.Context, role models.Role) (*models.Dashboard, error) {
	dashboard, err := uc.DashboardRepository.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, exceptions.ErrDashboardNotSeeded(nil)
	}
	return dashboard, nil
}
