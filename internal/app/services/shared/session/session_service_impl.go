package session

import (
	"context"
	"time"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	session := &models.Session{
		SessionID:          uuid.NewString(),
		UserID:             user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               user.Role,
		SubscriptionActive: user.Subscription.Active,
		ExpiresAt:          time.Now().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, session.SessionID, session, ttl)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		// A snapshot we cannot parse is discarded rather than propagated,
		// so the caller is simply anonymous on the next attempt.
		svc.Log.Warn("discarding malformed session snapshot",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		if delErr := svc.RedisRepository.Delete(ctx, sessionID); delErr != nil {
			svc.Log.Error("failed to discard malformed session snapshot",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(delErr),
			)
		}
		return nil, exceptions.ErrSessionMalformed(err)
	}
	return session, nil
}

func (svc *sessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrSessionNotFound(nil)
	}
	return svc.RedisRepository.Set(ctx, session.SessionID, session, ttl)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
