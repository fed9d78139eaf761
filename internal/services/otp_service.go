package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// OTPConfig carries the ledger tunables.
type OTPConfig struct {
	Length   int
	TTL      time.Duration
	Cooldown time.Duration
}

// OTPServiceImpl implements domain.OTPService: it is both the ledger over
// the persisted OTP rows and the orchestrator tying the ledger, token codec,
// mailer and user store together.
type OTPServiceImpl struct {
	userRepo    domain.UserRepository
	otpRepo     domain.OtpRepository
	tokenSvc    domain.TokenService
	passwordSvc domain.PasswordService
	mailer      domain.Mailer
	logger      *zap.Logger
	config      OTPConfig
}

// NewOTPService creates a new OTP service.
func NewOTPService(
	userRepo domain.UserRepository,
	otpRepo domain.OtpRepository,
	tokenSvc domain.TokenService,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	logger *zap.Logger,
	config OTPConfig,
) domain.OTPService {
	return &OTPServiceImpl{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		tokenSvc:    tokenSvc,
		passwordSvc: passwordSvc,
		mailer:      mailer,
		logger:      logger,
		config:      config,
	}
}

// SendOTP implements domain.OTPService. Rate limiting consults only the
// most recently generated row for the (user, purpose) pair; older rows are
// superseded history.
func (s *OTPServiceImpl) SendOTP(ctx context.Context, email string, purpose domain.OtpPurpose) error {
	now := time.Now()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	latest, err := s.otpRepo.LatestByUserAndPurpose(ctx, user.ID, purpose)
	if err != nil && !errors.Is(err, domain.ErrOTPNotFound) {
		return err
	}
	if latest != nil && now.Sub(latest.GeneratedAt) < s.config.Cooldown {
		return domain.ErrOTPRateLimited
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	token := &domain.OtpToken{
		UserID:      user.ID,
		Code:        code,
		Purpose:     purpose,
		GeneratedAt: now,
		ExpiresAt:   now.Add(s.config.TTL),
		Used:        false,
	}
	if err := s.otpRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to persist otp: %w", err)
	}

	// Mail delivery is best-effort: a dispatch failure must not abort the
	// flow, the user can request a resend after the cooldown.
	if err := s.mailer.SendOtpEmail(user, code, purpose); err != nil {
		s.logger.Error("otp mail dispatch failed",
			zap.Uint("user_id", user.ID),
			zap.String("purpose", string(purpose)),
			zap.Error(err))
	}

	s.logger.Info("otp issued",
		zap.Uint("user_id", user.ID),
		zap.String("purpose", string(purpose)))
	return nil
}

// VerifyOTP implements domain.OTPService. Outcomes are checked in a fixed
// order: missing row, code mismatch, expiry, reuse. Consumption goes through
// the conditional update so exactly one concurrent verifier wins.
func (s *OTPServiceImpl) VerifyOTP(ctx context.Context, email, code string, purpose domain.OtpPurpose) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	latest, err := s.otpRepo.LatestByUserAndPurpose(ctx, user.ID, purpose)
	if err != nil {
		return "", err
	}
	if latest.Code != code {
		return "", domain.ErrOTPMismatch
	}
	if !latest.ExpiresAt.After(time.Now()) {
		return "", domain.ErrOTPExpired
	}
	if latest.Used {
		return "", domain.ErrOTPAlreadyUsed
	}

	won, err := s.otpRepo.ConsumeOnce(ctx, latest.ID)
	if err != nil {
		return "", fmt.Errorf("failed to consume otp: %w", err)
	}
	if !won {
		return "", domain.ErrOTPAlreadyUsed
	}

	switch purpose {
	case domain.PurposeVerifyEmail:
		if err := s.userRepo.SetEmailStatus(ctx, user.ID, domain.EmailVerified); err != nil {
			return "", fmt.Errorf("failed to mark email verified: %w", err)
		}
		s.logger.Info("email verified", zap.Uint("user_id", user.ID))
		return "", nil

	case domain.PurposeResetPassword:
		resetToken, err := s.tokenSvc.IssueResetToken(user.ID, user.Role)
		if err != nil {
			return "", fmt.Errorf("failed to issue reset token: %w", err)
		}
		s.logger.Info("reset token issued", zap.Uint("user_id", user.ID))
		return resetToken, nil
	}

	// Unreachable through ParseOtpPurpose; kept so a future purpose cannot
	// silently fall through.
	return "", domain.ErrOTPPurposeUnknown
}

// ResetPassword implements domain.OTPService. The whole token path fails
// closed: any parse, signature, expiry or subject problem collapses into
// ErrResetTokenInvalid rather than surfacing a raw fault.
func (s *OTPServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	subject, err := s.tokenSvc.ExtractSubject(token)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	userID, err := strconv.ParseUint(subject, 10, 32)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	if !s.tokenSvc.Validate(token, strconv.FormatUint(uint64(user.ID), 10)) {
		return domain.ErrResetTokenInvalid
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.logger.Info("password reset", zap.Uint("user_id", user.ID))
	return nil
}

// SweepExpired removes rows whose expiry passed more than one TTL ago.
// Housekeeping only: verification already treats expiry lazily.
func (s *OTPServiceImpl) SweepExpired(ctx context.Context) error {
	return s.otpRepo.DeleteExpiredBefore(ctx, time.Now().Add(-s.config.TTL))
}

// generateSecureCode draws each digit independently from a cryptographically
// secure source. Codes are not unique by construction; only the latest row
// per pair is ever consulted, so collisions are harmless.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
