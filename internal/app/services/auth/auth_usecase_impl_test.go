package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, user, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type stubIdentityProvider struct{}

func (stubIdentityProvider) DisplayName(role models.Role, requestedName string) string {
	if requestedName != "" {
		return requestedName
	}
	return "Member " + role.String()
}

// stubAuditPublisher records events without mock expectations; events
// are published from a goroutine and must not race the test's asserts.
type stubAuditPublisher struct {
	mu     sync.Mutex
	events []contracts.LoginEvent
}

func (p *stubAuditPublisher) PublishLoginEvent(ctx context.Context, event contracts.LoginEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// stubNotificationStore records created notifications without mock
// expectations; the register flow writes to it on a best effort basis.
type stubNotificationStore struct {
	created []models.Notification
}

func (s *stubNotificationStore) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (s *stubNotificationStore) CountUnreadByUserID(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (s *stubNotificationStore) MarkRead(ctx context.Context, userID, notificationID string) error {
	return nil
}

func (s *stubNotificationStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	s.created = append(s.created, *notification)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			LoginSessionExpiredTimeInHours: 24,
			LoginLockTimeoutInSeconds:      10,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}
}

func buildSession(user *models.User) *models.Session {
	return &models.Session{
		SessionID:          "sess-1",
		UserID:             user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               user.Role,
		SubscriptionActive: user.Subscription.Active,
		ExpiresAt:          time.Now().Add(24 * time.Hour),
	}
}

func TestRegisterUser(t *testing.T) {
	t.Run("New account opens a session and returns a token", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionService)
		notificationStore := &stubNotificationStore{}

		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		mockUsers.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("user-1", nil)
		mockSessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.User"), 24*time.Hour).
			Return(&models.Session{SessionID: "sess-1", UserID: "user-1", Role: models.RoleCustomer}, nil)

		usecase := NewAuthUsecase(mockUsers, notificationStore, mockSessions, new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Sup3r!Secret",
			Role:     "customer",
			Name:     "Jane Doe",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user-1", result.User.ID)
		assert.Equal(t, "Jane Doe", result.User.Name)
		assert.Equal(t, "customer", result.User.Role)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "sess-1", sessionID)

		createdUser := mockUsers.Calls[1].Arguments.Get(1).(*models.User)
		assert.NotEqual(t, "Sup3r!Secret", createdUser.Password, "password must be stored hashed")
		assert.True(t, utils.CheckPasswordHash("Sup3r!Secret", createdUser.Password))
		assert.False(t, createdUser.Subscription.Active, "new accounts start without a subscription")

		assert.Len(t, notificationStore.created, 1, "registration leaves a welcome notification")
		assert.Equal(t, "user-1", notificationStore.created[0].UserID)
		assert.Equal(t, constvars.WelcomeNotificationTitle, notificationStore.created[0].Title)
		assert.False(t, notificationStore.created[0].Read)
	})

	t.Run("Missing name is synthesized", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionService)

		mockUsers.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
		mockUsers.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("user-2", nil)
		mockSessions.On("CreateSession", mock.Anything, mock.Anything, mock.Anything).
			Return(&models.Session{SessionID: "sess-2", UserID: "user-2", Role: models.RoleDoctor}, nil)

		usecase := NewAuthUsecase(mockUsers, &stubNotificationStore{}, mockSessions, new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "doc@example.com",
			Password: "Sup3r!Secret",
			Role:     "doctor",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Member doctor", result.User.Name)
	})

	t.Run("Duplicate email is rejected before any write", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionService)
		notificationStore := &stubNotificationStore{}

		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").
			Return(&models.User{ID: "user-1", Email: "jane@example.com"}, nil)

		usecase := NewAuthUsecase(mockUsers, notificationStore, mockSessions, new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Sup3r!Secret",
			Role:     "customer",
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		mockUsers.AssertNotCalled(t, "CreateUser")
		mockSessions.AssertNotCalled(t, "CreateSession")
		assert.Empty(t, notificationStore.created)
	})

	t.Run("Unknown role is rejected", func(t *testing.T) {
		usecase := NewAuthUsecase(new(MockUserRepository), &stubNotificationStore{}, new(MockSessionService), new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Sup3r!Secret",
			Role:     "superadmin",
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})
}

func TestLoginUser(t *testing.T) {
	hashed, err := utils.HashPassword("Sup3r!Secret")
	assert.NoError(t, err)

	user := &models.User{
		ID:       "user-1",
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		Password: hashed,
		Role:     models.RoleCoach,
		Subscription: models.Subscription{
			Active: true,
			Plan:   "monthly",
		},
	}

	lockKey := "login_lock:jane@example.com"

	t.Run("Valid credentials restore the stored role", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionService)
		mockLocker := new(MockLockerService)

		mockLocker.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "lock-1", nil)
		mockLocker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		mockSessions.On("CreateSession", mock.Anything, user, 24*time.Hour).Return(buildSession(user), nil)

		usecase := NewAuthUsecase(mockUsers, &stubNotificationStore{}, mockSessions, mockLocker, stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "jane@example.com",
			Password: "Sup3r!Secret",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "coach", result.User.Role, "the session role is the stored one, never client-supplied")
		assert.True(t, result.User.SubscriptionActive)
		mockLocker.AssertExpectations(t)
	})

	t.Run("Wrong password leaves no session behind", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionService)
		mockLocker := new(MockLockerService)

		mockLocker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-1", nil)
		mockLocker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		usecase := NewAuthUsecase(mockUsers, &stubNotificationStore{}, mockSessions, mockLocker, stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
		mockSessions.AssertNotCalled(t, "CreateSession")
	})

	t.Run("Unknown email gets the same response as a wrong password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockLocker := new(MockLockerService)

		mockLocker.On("TryLock", mock.Anything, "login_lock:ghost@example.com", mock.Anything).Return(true, "lock-1", nil)
		mockLocker.On("Unlock", mock.Anything, "login_lock:ghost@example.com", "lock-1").Return(nil)
		mockUsers.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		usecase := NewAuthUsecase(mockUsers, &stubNotificationStore{}, new(MockSessionService), mockLocker, stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "Sup3r!Secret",
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Concurrent login for the same email is rejected", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockLocker := new(MockLockerService)

		mockLocker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

		usecase := NewAuthUsecase(mockUsers, &stubNotificationStore{}, new(MockSessionService), mockLocker, stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		result, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "jane@example.com",
			Password: "Sup3r!Secret",
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		mockUsers.AssertNotCalled(t, "FindByEmail")
		mockLocker.AssertNotCalled(t, "Unlock")
	})
}

func TestLogoutUser(t *testing.T) {
	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Email:     "jane@example.com",
		Role:      models.RoleCustomer,
	}

	t.Run("Deletes the session snapshot", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

		usecase := NewAuthUsecase(new(MockUserRepository), &stubNotificationStore{}, mockSessions, new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		assert.NoError(t, usecase.LogoutUser(context.Background(), session))
		mockSessions.AssertExpectations(t)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("DeleteSession", mock.Anything, "sess-1").Return(exceptions.ErrRedisDelete(assert.AnError))

		usecase := NewAuthUsecase(new(MockUserRepository), &stubNotificationStore{}, mockSessions, new(MockLockerService), stubIdentityProvider{}, &stubAuditPublisher{}, testInternalConfig())

		assert.Error(t, usecase.LogoutUser(context.Background(), session))
	})
}
