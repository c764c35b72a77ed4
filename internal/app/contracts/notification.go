package contracts

import (
	"context"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	CountUnreadByUserID(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, session *models.Session) (*responses.NotificationList, error)
	MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error
}
