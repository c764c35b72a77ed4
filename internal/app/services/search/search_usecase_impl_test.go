package search

import (
	"context"
	"testing"
	"vitalis-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) FindByRole(ctx context.Context, role models.Role) (*models.Dashboard, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) UpsertDashboard(ctx context.Context, dashboard *models.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

func TestSearch(t *testing.T) {
	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      models.RoleCustomer,
	}

	dashboard := &models.Dashboard{
		Role: models.RoleCustomer,
		Sections: []models.DashboardSection{
			{Key: "nutrition", Title: "Nutrition"},
			{Key: "fitness", Title: "Fitness"},
		},
	}

	t.Run("Matches navigation labels and section titles", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(dashboard, nil)

		usecase := NewSearchUsecase(mockRepo)
		result, err := usecase.Search(context.Background(), session, "nutri")

		assert.NoError(t, err)
		assert.Equal(t, "nutri", result.Query)

		kinds := make(map[string]int)
		for _, hit := range result.Results {
			kinds[hit.Kind]++
			assert.Contains(t, hit.Label, "Nutrition")
		}
		assert.Equal(t, 1, kinds["navigation"])
		assert.Equal(t, 1, kinds["section"])
	})

	t.Run("Match is case insensitive", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(dashboard, nil)

		usecase := NewSearchUsecase(mockRepo)
		result, err := usecase.Search(context.Background(), session, "FITNESS")

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Results)
	})

	t.Run("No hits yields an empty list, not nil", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(dashboard, nil)

		usecase := NewSearchUsecase(mockRepo)
		result, err := usecase.Search(context.Background(), session, "zzzz")

		assert.NoError(t, err)
		assert.NotNil(t, result.Results)
		assert.Empty(t, result.Results)
	})

	t.Run("Scope is the caller's role only", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(dashboard, nil)

		usecase := NewSearchUsecase(mockRepo)
		result, err := usecase.Search(context.Background(), session, "patients")

		assert.NoError(t, err)
		assert.Empty(t, result.Results, "another role's menu entries must never surface")
		mockRepo.AssertCalled(t, "FindByRole", mock.Anything, models.RoleCustomer)
	})

	t.Run("Missing dashboard still searches navigation", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(nil, nil)

		usecase := NewSearchUsecase(mockRepo)
		result, err := usecase.Search(context.Background(), session, "overview")

		assert.NoError(t, err)
		assert.Len(t, result.Results, 1)
		assert.Equal(t, "navigation", result.Results[0].Kind)
	})
}
