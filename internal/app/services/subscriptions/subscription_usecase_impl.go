package subscriptions

import (
	"context"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
)

type subscriptionUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewSubscriptionUsecase(userRepository contracts.UserRepository, sessionService contracts.SessionService, internalConfig *config.InternalConfig) contracts.SubscriptionUsecase {
	return &subscriptionUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *subscriptionUsecase) GetStatus(ctx context.Context, session *models.Session) (*responses.SubscriptionStatus, error) {
	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return &responses.SubscriptionStatus{
		Active:      user.Subscription.Active,
		Plan:        user.Subscription.Plan,
		ActivatedAt: user.Subscription.ActivatedAt,
	}, nil
}

func (uc *subscriptionUsecase) Activate(ctx context.Context, session *models.Session, request *requests.ActivateSubscription) (*responses.SubscriptionStatus, error) {
	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	plan := request.Plan
	if plan == "" {
		plan = uc.InternalConfig.Subscription.DefaultPlan
	}

	now := time.Now()
	user.Subscription = models.Subscription{
		Active:      true,
		Plan:        plan,
		ActivatedAt: &now,
	}
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// The gate reads the flag cached in the session snapshot, so the
	// snapshot is rewritten here; other live sessions of the same user
	// keep their stale flag until re-login.
	session.SubscriptionActive = true
	err = uc.SessionService.UpdateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &responses.SubscriptionStatus{
		Active:      user.Subscription.Active,
		Plan:        user.Subscription.Plan,
		ActivatedAt: user.Subscription.ActivatedAt,
	}, nil
}

func (uc *subscriptionUsecase) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}
