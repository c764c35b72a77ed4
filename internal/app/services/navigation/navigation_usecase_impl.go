package navigation

import (
	"context"
	"strings"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type navigationUsecase struct {
	NotificationRepository contracts.NotificationRepository
}

func NewNavigationUsecase(notificationRepository contracts.NotificationRepository) contracts.NavigationUsecase {
	return &navigationUsecase{
		NotificationRepository: notificationRepository,
	}
}

func (uc *navigationUsecase) GetNavigation(ctx context.Context, session *models.Session) (*responses.Navigation, error) {
	items := ResolveNavigation(session.Role)

	unread, err := uc.NotificationRepository.CountUnreadByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if unread > 0 {
		for i := range items {
			if strings.HasPrefix(items[i].Path, "/notifications") {
				items[i].Badge = unread
			}
		}
	}

	return &responses.Navigation{
		Role:  session.Role.String(),
		Items: items,
	}, nil
}
