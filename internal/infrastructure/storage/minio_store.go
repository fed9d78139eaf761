package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

const (
	maxImageSize    = 5 * 1024 * 1024
	maxMediaSize    = 50 * 1024 * 1024
	presignedURLTTL = 15 * time.Minute
)

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

var mediaContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"audio/mpeg": ".mp3",
	"audio/webm": ".weba",
	"audio/wav":  ".wav",
}

// MinioStore implements domain.ObjectStorage against a MinIO/S3-compatible
// endpoint.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore creates the store and ensures the bucket exists.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	store := &MinioStore{client: client, bucket: bucket}
	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// UploadImage implements domain.ObjectStorage for jpeg/png only.
func (s *MinioStore) UploadImage(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error) {
	return s.upload(ctx, folder, r, size, contentType, maxImageSize, imageContentTypes)
}

// UploadMedia implements domain.ObjectStorage for complaint attachments,
// which also accept video and audio.
func (s *MinioStore) UploadMedia(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error) {
	return s.upload(ctx, folder, r, size, contentType, maxMediaSize, mediaContentTypes)
}

func (s *MinioStore) upload(ctx context.Context, folder string, r io.Reader, size int64, contentType string, maxSize int64, allowed map[string]string) (string, error) {
	if r == nil || size == 0 {
		return "", domain.ErrFileMissing
	}
	if size > maxSize {
		return "", domain.ErrFileTooLarge
	}

	normalized := strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowed[normalized]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidFileType, contentType)
	}

	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.New().String(), ext)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: normalized,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

// Remove implements domain.ObjectStorage.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PresignedURL implements domain.ObjectStorage.
func (s *MinioStore) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignedURLTTL, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}
