package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// AdminService implements the admin review workflows: KYC and authority
// approval. Approvals mutate the user's identity status only; mail and
// notification failures never roll a decision back.
type AdminService struct {
	userRepo        domain.UserRepository
	kycRepo         domain.KYCRepository
	authorityRepo   domain.AuthorityRepository
	complaintRepo   domain.ComplaintRepository
	notificationSvc domain.NotificationService
	mailer          domain.Mailer
	logger          *zap.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	userRepo domain.UserRepository,
	kycRepo domain.KYCRepository,
	authorityRepo domain.AuthorityRepository,
	complaintRepo domain.ComplaintRepository,
	notificationSvc domain.NotificationService,
	mailer domain.Mailer,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:        userRepo,
		kycRepo:         kycRepo,
		authorityRepo:   authorityRepo,
		complaintRepo:   complaintRepo,
		notificationSvc: notificationSvc,
		mailer:          mailer,
		logger:          logger,
	}
}

// PendingKYC lists submissions awaiting review.
func (s *AdminService) PendingKYC(ctx context.Context) ([]*domain.KYCRecord, error) {
	return s.kycRepo.ListByStatus(ctx, domain.IdentityPending)
}

// ApproveKYC marks the submission and the owning user verified.
func (s *AdminService) ApproveKYC(ctx context.Context, kycID uint) error {
	record, err := s.kycRepo.FindByID(ctx, kycID)
	if err != nil {
		return err
	}

	now := time.Now()
	record.Status = domain.IdentityVerified
	record.VerifiedAt = &now
	if err := s.kycRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update kyc record: %w", err)
	}
	if err := s.userRepo.SetIdentityStatus(ctx, record.UserID, domain.IdentityVerified); err != nil {
		return fmt.Errorf("failed to mark identity verified: %w", err)
	}

	s.logger.Info("kyc approved", zap.Uint("kyc_id", kycID), zap.Uint("user_id", record.UserID))
	s.announceDecision(ctx, record.UserID, "KYC Approved",
		"Your KYC has been approved. You can now access full features.", "")
	return nil
}

// RejectKYC marks the submission and the owning user rejected.
func (s *AdminService) RejectKYC(ctx context.Context, kycID uint, reason string) error {
	record, err := s.kycRepo.FindByID(ctx, kycID)
	if err != nil {
		return err
	}

	record.Status = domain.IdentityRejected
	if err := s.kycRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update kyc record: %w", err)
	}
	if err := s.userRepo.SetIdentityStatus(ctx, record.UserID, domain.IdentityRejected); err != nil {
		return fmt.Errorf("failed to mark identity rejected: %w", err)
	}

	s.logger.Info("kyc rejected", zap.Uint("kyc_id", kycID), zap.Uint("user_id", record.UserID))
	s.announceDecision(ctx, record.UserID, "KYC Rejected",
		"Your KYC has been rejected. Reason: "+reason, reason)
	return nil
}

// PendingAuthorities lists authority profiles awaiting review.
func (s *AdminService) PendingAuthorities(ctx context.Context) ([]*domain.AuthorityProfile, error) {
	return s.authorityRepo.ListByUserIdentityStatus(ctx, domain.IdentityPending)
}

// ApproveAuthority marks the authority's user verified.
func (s *AdminService) ApproveAuthority(ctx context.Context, profileID uint) error {
	profile, err := s.authorityRepo.FindByID(ctx, profileID)
	if err != nil {
		return err
	}

	if err := s.userRepo.SetIdentityStatus(ctx, profile.UserID, domain.IdentityVerified); err != nil {
		return fmt.Errorf("failed to mark identity verified: %w", err)
	}

	s.logger.Info("authority approved",
		zap.Uint("profile_id", profileID), zap.Uint("user_id", profile.UserID))
	s.announceDecision(ctx, profile.UserID, "Authority Approved",
		"Your Authority profile has been approved.", "")
	return nil
}

// RejectAuthority marks the authority's user rejected.
func (s *AdminService) RejectAuthority(ctx context.Context, profileID uint, reason string) error {
	profile, err := s.authorityRepo.FindByID(ctx, profileID)
	if err != nil {
		return err
	}

	if err := s.userRepo.SetIdentityStatus(ctx, profile.UserID, domain.IdentityRejected); err != nil {
		return fmt.Errorf("failed to mark identity rejected: %w", err)
	}

	s.logger.Info("authority rejected",
		zap.Uint("profile_id", profileID), zap.Uint("user_id", profile.UserID))
	s.announceDecision(ctx, profile.UserID, "Authority Rejected",
		"Your Authority profile has been rejected. Reason: "+reason, reason)
	return nil
}

// ListCitizens returns all citizen accounts.
func (s *AdminService) ListCitizens(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListByRole(ctx, domain.RoleCitizen)
}

// ListComplaints returns every complaint in the system.
func (s *AdminService) ListComplaints(ctx context.Context) ([]*domain.Complaint, error) {
	return s.complaintRepo.ListAll(ctx)
}

// announceDecision delivers the in-app notification and the decision email.
// Both are best-effort on top of the already-persisted status flip.
func (s *AdminService) announceDecision(ctx context.Context, userID uint, title, message, rejectionReason string) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("decision announcement skipped, user lookup failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	if err := s.notificationSvc.Notify(ctx, user, title, message); err != nil {
		s.logger.Warn("decision notification failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}

	var mailErr error
	if rejectionReason != "" {
		mailErr = s.mailer.SendRejectionEmail(user, rejectionReason)
	} else {
		mailErr = s.mailer.SendApprovalEmail(user)
	}
	if mailErr != nil {
		s.logger.Warn("decision mail failed",
			zap.Uint("user_id", userID), zap.Error(mailErr))
	}
}
