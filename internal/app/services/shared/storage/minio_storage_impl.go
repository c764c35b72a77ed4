package storage

import (
	"context"
	"io"
	"net/url"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	Client         *minio.Client
	InternalConfig *config.InternalConfig
}

func NewMinioStorageService(client *minio.Client, internalConfig *config.InternalConfig) contracts.StorageService {
	return &minioStorageService{
		Client:         client,
		InternalConfig: internalConfig,
	}
}

func (s *minioStorageService) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	bucketName := s.InternalConfig.Minio.BucketName
	_, err := s.Client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioPutObject(err, bucketName)
	}
	return nil
}

func (s *minioStorageService) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.Client.PresignedGetObject(ctx, s.InternalConfig.Minio.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignedURL(err)
	}
	return presignedURL.String(), nil
}
