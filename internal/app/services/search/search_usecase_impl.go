package search

import (
	"context"
	"strings"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/app/services/navigation"
	"vitalis-service/internal/pkg/dto/responses"
)

type searchUsecase struct {
	DashboardRepository contracts.DashboardRepository
}

func NewSearchUsecase(dashboardRepository contracts.DashboardRepository) contracts.SearchUsecase {
	return &searchUsecase{
		DashboardRepository: dashboardRepository,
	}
}

// Search matches over the caller's own navigation entries and dashboard
// section titles. Scope is deliberately the caller's role: nothing from
// another role's dashboard is ever surfaced.
func (uc *searchUsecase) Search(ctx context.Context, session *models.Session, query string) (*responses.Search, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	results := []responses.SearchResult{}

	for _, item := range navigation.ResolveNavigation(session.Role) {
		if strings.Contains(strings.ToLower(item.Label), needle) {
			results = append(results, responses.SearchResult{
				Kind:  "navigation",
				Label: item.Label,
				Path:  item.Path,
			})
		}
	}

	dashboard, err := uc.DashboardRepository.FindByRole(ctx, session.Role)
	if err != nil {
		return nil, err
	}
	if dashboard != nil {
		for _, section := range dashboard.Sections {
			if strings.Contains(strings.ToLower(section.Title), needle) {
				results = append(results, responses.SearchResult{
					Kind:  "section",
					Label: section.Title,
					Path:  "/dashboard/" + session.Role.String() + "/" + section.Key,
				})
			}
		}
	}

	return &responses.Search{
		Query:   query,
		Results: results,
	}, nil
}
