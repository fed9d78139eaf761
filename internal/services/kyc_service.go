package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// FileUpload carries one uploaded file through the service layer.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// KYCService handles identity-document submission.
type KYCService struct {
	userRepo domain.UserRepository
	kycRepo  domain.KYCRepository
	store    domain.ObjectStorage
	logger   *zap.Logger
}

// NewKYCService creates a new KYC service.
func NewKYCService(userRepo domain.UserRepository, kycRepo domain.KYCRepository, store domain.ObjectStorage, logger *zap.Logger) *KYCService {
	return &KYCService{userRepo: userRepo, kycRepo: kycRepo, store: store, logger: logger}
}

// Submit stores the document images and creates a pending KYC record. A user
// can have at most one submission pending review; resubmission is allowed
// after a rejection.
func (s *KYCService) Submit(ctx context.Context, userID uint, documentType string, front, back, photo FileUpload) (*domain.KYCRecord, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest, err := s.kycRepo.LatestByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrKYCNotFound) {
		return nil, err
	}
	if latest != nil && latest.Status == domain.IdentityPending {
		return nil, domain.ErrKYCAlreadyPending
	}

	folder := fmt.Sprintf("kyc/user-%d", user.ID)
	frontKey, err := s.store.UploadImage(ctx, folder, front.Reader, front.Size, front.ContentType)
	if err != nil {
		return nil, fmt.Errorf("front image: %w", err)
	}
	backKey, err := s.store.UploadImage(ctx, folder, back.Reader, back.Size, back.ContentType)
	if err != nil {
		return nil, fmt.Errorf("back image: %w", err)
	}
	photoKey, err := s.store.UploadImage(ctx, folder, photo.Reader, photo.Size, photo.ContentType)
	if err != nil {
		return nil, fmt.Errorf("user photo: %w", err)
	}

	record := &domain.KYCRecord{
		UserID:       user.ID,
		DocumentType: documentType,
		FrontKey:     frontKey,
		BackKey:      backKey,
		PhotoKey:     photoKey,
		Status:       domain.IdentityPending,
		SubmittedAt:  time.Now(),
	}
	if err := s.kycRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store kyc record: %w", err)
	}

	if err := s.userRepo.SetIdentityStatus(ctx, user.ID, domain.IdentityPending); err != nil {
		return nil, fmt.Errorf("failed to mark identity pending: %w", err)
	}

	s.logger.Info("kyc submitted", zap.Uint("user_id", user.ID), zap.Uint("kyc_id", record.ID))
	return record, nil
}

// Latest returns the user's most recent submission.
func (s *KYCService) Latest(ctx context.Context, userID uint) (*domain.KYCRecord, error) {
	return s.kycRepo.LatestByUserID(ctx, userID)
}
