package auth

import (
	"context"
	"fmt"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository         contracts.UserRepository
	NotificationRepository contracts.NotificationRepository
	SessionService         contracts.SessionService
	LockerService          contracts.LockerService
	IdentityProvider       contracts.IdentityProvider
	AuditPublisher         contracts.AuditPublisher
	InternalConfig         *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	notificationRepository contracts.NotificationRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	identityProvider contracts.IdentityProvider,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:         userRepository,
		NotificationRepository: notificationRepository,
		SessionService:         sessionService,
		LockerService:          lockerService,
		IdentityProvider:       identityProvider,
		AuditPublisher:         auditPublisher,
		InternalConfig:         internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	role, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInvalidRoleType(err)
	}

	// Check if email already exists
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Name:     uc.IdentityProvider.DisplayName(role, request.Name),
		Password: hashedPassword,
		Role:     role,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	// Best effort; a failed write here must not fail the registration.
	_ = uc.NotificationRepository.CreateNotification(ctx, &models.Notification{
		UserID: user.ID,
		Title:  constvars.WelcomeNotificationTitle,
		Body:   constvars.WelcomeNotificationBody,
	})

	token, session, err := uc.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(constvars.AuditEventRegister, session)

	return &responses.RegisterUser{
		Token: token,
		User:  buildAuthUser(user),
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	// A second login attempt for the same email while one is in flight
	// is rejected rather than raced.
	lockKey := fmt.Sprintf(constvars.RedisLoginLockKeyFormat, request.Email)
	lockTTL := time.Duration(uc.InternalConfig.App.LoginLockTimeoutInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLoginInProgress(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, session, err := uc.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(constvars.AuditEventLogin, session)

	return &responses.LoginUser{
		Token: token,
		User:  buildAuthUser(user),
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		return err
	}

	uc.publishEvent(constvars.AuditEventLogout, session)
	return nil
}

// openSession writes the session snapshot and wraps its id in a JWT.
// Either both succeed or neither is left behind, so a failed login
// never leaves a usable session record.
func (uc *authUsecase) openSession(ctx context.Context, user *models.User) (string, *models.Session, error) {
	ttl := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, user, ttl)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.SessionService.DeleteSession(ctx, session.SessionID)
		return "", nil, err
	}
	return token, session, nil
}

func (uc *authUsecase) publishEvent(event string, session *models.Session) {
	go uc.AuditPublisher.PublishLoginEvent(context.Background(), contracts.LoginEvent{
		Event:      event,
		UserID:     session.UserID,
		Email:      session.Email,
		Role:       session.Role.String(),
		OccurredAt: time.Now(),
	})
}

func buildAuthUser(user *models.User) responses.AuthUser {
	return responses.AuthUser{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role.String(),
		SubscriptionActive: user.Subscription.Active,
	}
}
