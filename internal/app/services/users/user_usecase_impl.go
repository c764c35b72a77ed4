package users

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	StorageService contracts.StorageService
	PresignedTTL   time.Duration
}

func NewUserUsecase(userRepository contracts.UserRepository, storageService contracts.StorageService, presignedTTL time.Duration) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		StorageService: storageService,
		PresignedTTL:   presignedTTL,
	}
}

func (uc *userUsecase) GetUserProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	profile := &responses.UserProfile{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role.String(),
		SubscriptionActive: user.Subscription.Active,
	}

	if user.AvatarObject != "" {
		avatarURL, err := uc.StorageService.GetPresignedURL(ctx, user.AvatarObject, uc.PresignedTTL)
		if err != nil {
			return nil, err
		}
		profile.AvatarURL = avatarURL
	}

	return profile, nil
}

func (uc *userUsecase) UploadAvatar(ctx context.Context, session *models.Session, fileName string, file io.Reader, size int64, contentType string) (*responses.UploadAvatar, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported extension %q", ext))
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	objectName := fmt.Sprintf(constvars.AvatarObjectNameFormat, user.ID, ext)
	err = uc.StorageService.UploadObject(ctx, objectName, file, size, contentType)
	if err != nil {
		return nil, err
	}

	user.AvatarObject = objectName
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uc.StorageService.GetPresignedURL(ctx, objectName, uc.PresignedTTL)
	if err != nil {
		return nil, err
	}

	return &responses.UploadAvatar{AvatarURL: avatarURL}, nil
}
