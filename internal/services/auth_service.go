package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// AuthServiceImpl implements domain.AuthService.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	logger      *zap.Logger
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	logger *zap.Logger,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		logger:      logger,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.AuthService. A verification OTP is dispatched
// after the account is stored; registration succeeds even if the dispatch
// fails, the user can request a resend.
func (s *AuthServiceImpl) Register(ctx context.Context, fullName, email, password string, role domain.Role) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName:       fullName,
		Email:          email,
		PasswordHash:   hash,
		Role:           role,
		EmailStatus:    domain.EmailPending,
		IdentityStatus: domain.IdentityUnverified,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.SendOTP(ctx, user.Email, domain.PurposeVerifyEmail); err != nil {
		s.logger.Error("post-registration otp dispatch failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// Login implements domain.AuthService with role-gated checks: citizens need
// a verified email, authorities additionally need admin identity approval,
// admins are unrestricted.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	switch user.Role {
	case domain.RoleCitizen:
		if user.EmailStatus != domain.EmailVerified {
			return nil, domain.ErrEmailNotVerified
		}
	case domain.RoleAuthority:
		if user.EmailStatus != domain.EmailVerified {
			return nil, domain.ErrEmailNotVerified
		}
		if user.IdentityStatus != domain.IdentityVerified {
			return nil, domain.ErrIdentityNotVerified
		}
	case domain.RoleAdmin:
		// no restriction
	default:
		return nil, domain.ErrInsufficientRole
	}

	token, err := s.tokenSvc.IssueSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user logged in", zap.Uint("user_id", user.ID))
	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// LoginWithGoogle implements domain.AuthService. Accounts are provisioned on
// first contact with an empty password hash, so password login stays closed
// for them until a reset. Google already verified the email; the authority
// identity gate still applies to existing authority accounts.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email, fullName string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		user = &domain.User{
			FullName:       fullName,
			Email:          email,
			PasswordHash:   "",
			Role:           domain.RoleCitizen,
			EmailStatus:    domain.EmailVerified,
			IdentityStatus: domain.IdentityUnverified,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to provision user: %w", err)
		}
		s.logger.Info("user provisioned from google profile", zap.Uint("user_id", user.ID))
	}

	if user.Role == domain.RoleAuthority && user.IdentityStatus != domain.IdentityVerified {
		return nil, domain.ErrIdentityNotVerified
	}

	token, err := s.tokenSvc.IssueSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user logged in via google", zap.Uint("user_id", user.ID))
	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// Profile implements domain.AuthService.
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
