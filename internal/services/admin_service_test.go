package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/mocks"
)

func newAdminServiceForTest(
	userRepo *mocks.MockUserRepository,
	kycRepo *mocks.MockKYCRepository,
	authorityRepo *mocks.MockAuthorityRepository,
	notificationSvc *mocks.MockNotificationService,
	mailer *mocks.MockMailer,
) *AdminService {
	return NewAdminService(userRepo, kycRepo, authorityRepo, mocks.NewMockComplaintRepository(), notificationSvc, mailer, zap.NewNop())
}

func TestAdminService_ApproveKYC(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	kycRepo := mocks.NewMockKYCRepository()
	notificationSvc := mocks.NewMockNotificationService()
	mailer := mocks.NewMockMailer()

	kycRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.KYCRecord, error) {
		return &domain.KYCRecord{ID: id, UserID: 42, Status: domain.IdentityPending}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "sita@example.com"}, nil
	}

	var updatedRecord *domain.KYCRecord
	kycRepo.UpdateFunc = func(ctx context.Context, record *domain.KYCRecord) error {
		updatedRecord = record
		return nil
	}
	var statusUser uint
	var statusValue domain.IdentityStatus
	userRepo.SetIdentityStatusFunc = func(ctx context.Context, userID uint, status domain.IdentityStatus) error {
		statusUser = userID
		statusValue = status
		return nil
	}
	var approvalMailed bool
	mailer.SendApprovalEmailFunc = func(user *domain.User) error {
		approvalMailed = true
		return nil
	}

	svc := newAdminServiceForTest(userRepo, kycRepo, mocks.NewMockAuthorityRepository(), notificationSvc, mailer)
	if err := svc.ApproveKYC(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updatedRecord == nil || updatedRecord.Status != domain.IdentityVerified {
		t.Error("kyc record was not marked verified")
	}
	if updatedRecord != nil && updatedRecord.VerifiedAt == nil {
		t.Error("verification timestamp was not set")
	}
	if statusUser != 42 || statusValue != domain.IdentityVerified {
		t.Errorf("user identity flip wrong: user=%d status=%s", statusUser, statusValue)
	}
	if !approvalMailed {
		t.Error("approval mail was not sent")
	}
}

func TestAdminService_RejectKYC(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	kycRepo := mocks.NewMockKYCRepository()
	mailer := mocks.NewMockMailer()

	kycRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.KYCRecord, error) {
		return &domain.KYCRecord{ID: id, UserID: 42, Status: domain.IdentityPending}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "sita@example.com"}, nil
	}

	var mailedReason string
	mailer.SendRejectionEmailFunc = func(user *domain.User, reason string) error {
		mailedReason = reason
		return nil
	}
	var statusValue domain.IdentityStatus
	userRepo.SetIdentityStatusFunc = func(ctx context.Context, userID uint, status domain.IdentityStatus) error {
		statusValue = status
		return nil
	}

	svc := newAdminServiceForTest(userRepo, kycRepo, mocks.NewMockAuthorityRepository(), mocks.NewMockNotificationService(), mailer)
	if err := svc.RejectKYC(context.Background(), 9, "document photo unreadable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if statusValue != domain.IdentityRejected {
		t.Errorf("expected rejected identity, got %s", statusValue)
	}
	if mailedReason != "document photo unreadable" {
		t.Errorf("rejection reason not mailed, got %q", mailedReason)
	}
}

func TestAdminService_ApproveKYC_MailFailureDoesNotRollBack(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	kycRepo := mocks.NewMockKYCRepository()
	mailer := mocks.NewMockMailer()

	kycRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.KYCRecord, error) {
		return &domain.KYCRecord{ID: id, UserID: 42, Status: domain.IdentityPending}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "sita@example.com"}, nil
	}
	mailer.SendApprovalEmailFunc = func(user *domain.User) error {
		return errors.New("smtp down")
	}

	svc := newAdminServiceForTest(userRepo, kycRepo, mocks.NewMockAuthorityRepository(), mocks.NewMockNotificationService(), mailer)
	if err := svc.ApproveKYC(context.Background(), 9); err != nil {
		t.Fatalf("mail failure must not fail the approval: %v", err)
	}
}

func TestAdminService_ApproveAuthority(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	authorityRepo := mocks.NewMockAuthorityRepository()

	authorityRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.AuthorityProfile, error) {
		return &domain.AuthorityProfile{ID: id, UserID: 77, AuthorityType: domain.AuthorityWater}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "water@example.com", Role: domain.RoleAuthority}, nil
	}

	var statusUser uint
	var statusValue domain.IdentityStatus
	userRepo.SetIdentityStatusFunc = func(ctx context.Context, userID uint, status domain.IdentityStatus) error {
		statusUser = userID
		statusValue = status
		return nil
	}

	svc := newAdminServiceForTest(userRepo, mocks.NewMockKYCRepository(), authorityRepo, mocks.NewMockNotificationService(), mocks.NewMockMailer())
	if err := svc.ApproveAuthority(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if statusUser != 77 || statusValue != domain.IdentityVerified {
		t.Errorf("authority user flip wrong: user=%d status=%s", statusUser, statusValue)
	}
}

func TestAdminService_ApproveAuthority_UnknownProfile(t *testing.T) {
	svc := newAdminServiceForTest(mocks.NewMockUserRepository(), mocks.NewMockKYCRepository(), mocks.NewMockAuthorityRepository(), mocks.NewMockNotificationService(), mocks.NewMockMailer())
	if err := svc.ApproveAuthority(context.Background(), 999); !errors.Is(err, domain.ErrAuthorityNotFound) {
		t.Fatalf("expected ErrAuthorityNotFound, got %v", err)
	}
}
