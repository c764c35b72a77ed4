package dashboards

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"

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

type MockNavigationUsecase struct {
	mock.Mock
}

func (m *MockNavigationUsecase) GetNavigation(ctx context.Context, session *models.Session) (*responses.Navigation, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Navigation), args.Error(1)
}

func customerDashboard() *models.Dashboard {
	return &models.Dashboard{
		ID:    "dash-1",
		Role:  models.RoleCustomer,
		Title: "My Health",
		View: map[string]interface{}{
			"greeting": "Welcome back",
		},
		Sections: []models.DashboardSection{
			{Key: "nutrition", Title: "Nutrition", Data: map[string]interface{}{"dailyTargetKcal": 2000}},
			{Key: "fitness", Title: "Fitness", Data: map[string]interface{}{"weeklyGoal": 3}},
		},
	}
}

func customerSession() *models.Session {
	return &models.Session{
		SessionID:          "sess-1",
		UserID:             "user-1",
		Email:              "jane@example.com",
		Name:               "Jane Doe",
		Role:               models.RoleCustomer,
		SubscriptionActive: true,
	}
}

func TestGetDashboard(t *testing.T) {
	t.Run("Composes view, navigation and caller identity", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockNav := new(MockNavigationUsecase)

		session := customerSession()
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(customerDashboard(), nil)
		mockNav.On("GetNavigation", mock.Anything, session).Return(&responses.Navigation{
			Role:  "customer",
			Items: []models.NavItem{{Label: "Overview", Icon: "home", Path: "/dashboard/customer"}},
		}, nil)

		usecase := NewDashboardUsecase(mockRepo, mockNav)
		view, err := usecase.GetDashboard(context.Background(), session)

		assert.NoError(t, err)
		assert.Equal(t, "customer", view.Role)
		assert.Equal(t, "My Health", view.Title)
		assert.Len(t, view.Navigation, 1)
		assert.Equal(t, "Welcome back", view.View["greeting"])
		assert.Equal(t, "Jane Doe", view.User.Name)
		assert.True(t, view.User.SubscriptionActive)
	})

	t.Run("Unseeded dashboard is an application fault", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(nil, nil)

		usecase := NewDashboardUsecase(mockRepo, new(MockNavigationUsecase))
		view, err := usecase.GetDashboard(context.Background(), customerSession())

		assert.Nil(t, view)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Store failure surfaces as unavailable", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).
			Return(nil, exceptions.ErrMongoDBFindDocument(assert.AnError))

		usecase := NewDashboardUsecase(mockRepo, new(MockNavigationUsecase))
		view, err := usecase.GetDashboard(context.Background(), customerSession())

		assert.Nil(t, view)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusServiceUnavailable, customErr.StatusCode)
	})
}

func TestGetSection(t *testing.T) {
	t.Run("Known section is returned with its data", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(customerDashboard(), nil)

		usecase := NewDashboardUsecase(mockRepo, new(MockNavigationUsecase))
		section, err := usecase.GetSection(context.Background(), customerSession(), "nutrition")

		assert.NoError(t, err)
		assert.True(t, section.Available)
		assert.Equal(t, "nutrition", section.Section)
		assert.Equal(t, "Nutrition", section.Title)
		assert.Equal(t, 2000, section.Data["dailyTargetKcal"])
	})

	t.Run("Unknown section is a placeholder, not an error", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(customerDashboard(), nil)

		usecase := NewDashboardUsecase(mockRepo, new(MockNavigationUsecase))
		section, err := usecase.GetSection(context.Background(), customerSession(), "meal-planner")

		assert.NoError(t, err, "a missing section must not surface as a failure")
		assert.False(t, section.Available)
		assert.Equal(t, "meal-planner", section.Section)
		assert.Equal(t, constvars.SectionNotAvailableYet, section.Message)
		assert.Empty(t, section.Data)
	})

	t.Run("Placeholder is stable across repeated requests", func(t *testing.T) {
		mockRepo := new(MockDashboardRepository)
		mockRepo.On("FindByRole", mock.Anything, models.RoleCustomer).Return(customerDashboard(), nil)

		usecase := NewDashboardUsecase(mockRepo, new(MockNavigationUsecase))
		first, err := usecase.GetSection(context.Background(), customerSession(), "unknown-area")
		assert.NoError(t, err)
		second, err := usecase.GetSection(context.Background(), customerSession(), "unknown-area")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
