package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// AuthorityRegistration is one authority sign-up request with its document
// uploads.
type AuthorityRegistration struct {
	FullName          string
	Email             string
	Password          string
	AuthorityType     domain.AuthorityType
	CitizenshipNumber string
	Photo             FileUpload
	FrontImage        FileUpload
	BackImage         FileUpload
	IdentityCard      FileUpload
}

// AuthorityService handles authority registration. Login stays blocked until
// an admin approves the identity.
type AuthorityService struct {
	userRepo      domain.UserRepository
	authorityRepo domain.AuthorityRepository
	passwordSvc   domain.PasswordService
	otpSvc        domain.OTPService
	store         domain.ObjectStorage
	logger        *zap.Logger
}

// NewAuthorityService creates a new authority service.
func NewAuthorityService(
	userRepo domain.UserRepository,
	authorityRepo domain.AuthorityRepository,
	passwordSvc domain.PasswordService,
	otpSvc domain.OTPService,
	store domain.ObjectStorage,
	logger *zap.Logger,
) *AuthorityService {
	return &AuthorityService{
		userRepo:      userRepo,
		authorityRepo: authorityRepo,
		passwordSvc:   passwordSvc,
		otpSvc:        otpSvc,
		store:         store,
		logger:        logger,
	}
}

// Register creates the authority account with its profile and documents,
// then dispatches the email-verification OTP.
func (s *AuthorityService) Register(ctx context.Context, reg AuthorityRegistration) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, reg.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName:       reg.FullName,
		Email:          reg.Email,
		PasswordHash:   hash,
		Role:           domain.RoleAuthority,
		EmailStatus:    domain.EmailPending,
		IdentityStatus: domain.IdentityPending,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create authority user: %w", err)
	}

	folder := fmt.Sprintf("authorities/user-%d", user.ID)
	photoKey, err := s.store.UploadImage(ctx, folder, reg.Photo.Reader, reg.Photo.Size, reg.Photo.ContentType)
	if err != nil {
		return nil, fmt.Errorf("profile photo: %w", err)
	}
	frontKey, err := s.store.UploadImage(ctx, folder, reg.FrontImage.Reader, reg.FrontImage.Size, reg.FrontImage.ContentType)
	if err != nil {
		return nil, fmt.Errorf("citizenship front: %w", err)
	}
	backKey, err := s.store.UploadImage(ctx, folder, reg.BackImage.Reader, reg.BackImage.Size, reg.BackImage.ContentType)
	if err != nil {
		return nil, fmt.Errorf("citizenship back: %w", err)
	}
	cardKey, err := s.store.UploadImage(ctx, folder, reg.IdentityCard.Reader, reg.IdentityCard.Size, reg.IdentityCard.ContentType)
	if err != nil {
		return nil, fmt.Errorf("identity card: %w", err)
	}

	profile := &domain.AuthorityProfile{
		UserID:            user.ID,
		AuthorityType:     reg.AuthorityType,
		CitizenshipNumber: reg.CitizenshipNumber,
		PhotoKey:          photoKey,
		FrontImageKey:     frontKey,
		BackImageKey:      backKey,
		IdentityCardKey:   cardKey,
	}
	if err := s.authorityRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create authority profile: %w", err)
	}

	if err := s.otpSvc.SendOTP(ctx, user.Email, domain.PurposeVerifyEmail); err != nil {
		s.logger.Error("post-registration otp dispatch failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("authority registered",
		zap.Uint("user_id", user.ID),
		zap.String("authority_type", string(reg.AuthorityType)))
	return user, nil
}

// ProfileFor returns the authority profile attached to a user.
func (s *AuthorityService) ProfileFor(ctx context.Context, userID uint) (*domain.AuthorityProfile, error) {
	return s.authorityRepo.FindByUserID(ctx, userID)
}
