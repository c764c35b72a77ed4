package contracts

import (
	"context"
	"io"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}

type UserUsecase interface {
	GetUserProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	UploadAvatar(ctx context.Context, session *models.Session, fileName string, file io.Reader, size int64, contentType string) (*responses.UploadAvatar, error)
}
