package notifications

import (
	"context"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
	}
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, session *models.Session) (*responses.NotificationList, error) {
	notifications, err := uc.NotificationRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]responses.Notification, 0, len(notifications))
	unread := 0
	for _, notification := range notifications {
		if !notification.Read {
			unread++
		}
		items = append(items, responses.Notification{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}

	return &responses.NotificationList{
		Items:       items,
		UnreadCount: unread,
	}, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error {
	return uc.NotificationRepository.MarkRead(ctx, session.UserID, notificationID)
}
