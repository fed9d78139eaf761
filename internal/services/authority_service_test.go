package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/mocks"
)

func authorityRegistration() AuthorityRegistration {
	return AuthorityRegistration{
		FullName:          "Khanepani Office",
		Email:             "water@example.com",
		Password:          "secret123",
		AuthorityType:     domain.AuthorityWater,
		CitizenshipNumber: "12-34-56-78901",
		Photo:             imageUpload("photo"),
		FrontImage:        imageUpload("front"),
		BackImage:         imageUpload("back"),
		IdentityCard:      imageUpload("card"),
	}
}

func TestAuthorityService_Register(t *testing.T) {
	t.Run("creates the pending account with its profile", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		authorityRepo := mocks.NewMockAuthorityRepository()
		otpSvc := mocks.NewMockOTPService()

		var createdUser *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = 77
			createdUser = user
			return nil
		}
		var createdProfile *domain.AuthorityProfile
		authorityRepo.CreateFunc = func(ctx context.Context, profile *domain.AuthorityProfile) error {
			profile.ID = 3
			createdProfile = profile
			return nil
		}
		var otpDispatched bool
		otpSvc.SendOTPFunc = func(ctx context.Context, email string, purpose domain.OtpPurpose) error {
			otpDispatched = true
			return nil
		}

		svc := NewAuthorityService(userRepo, authorityRepo, mocks.NewMockPasswordService(), otpSvc, mocks.NewMockObjectStorage(), zap.NewNop())
		user, err := svc.Register(context.Background(), authorityRegistration())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if createdUser.Role != domain.RoleAuthority {
			t.Errorf("expected authority role, got %s", createdUser.Role)
		}
		if createdUser.IdentityStatus != domain.IdentityPending {
			t.Errorf("authorities start identity-pending, got %s", createdUser.IdentityStatus)
		}
		if createdProfile == nil {
			t.Fatal("profile was not stored")
		}
		if createdProfile.UserID != user.ID {
			t.Errorf("profile bound to user %d, want %d", createdProfile.UserID, user.ID)
		}
		if createdProfile.PhotoKey == "" || createdProfile.FrontImageKey == "" ||
			createdProfile.BackImageKey == "" || createdProfile.IdentityCardKey == "" {
			t.Errorf("document keys incomplete: %+v", createdProfile)
		}
		if !otpDispatched {
			t.Error("verification otp was not dispatched")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}

		svc := NewAuthorityService(userRepo, mocks.NewMockAuthorityRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService(), mocks.NewMockObjectStorage(), zap.NewNop())
		if _, err := svc.Register(context.Background(), authorityRegistration()); !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("upload failure aborts registration", func(t *testing.T) {
		store := mocks.NewMockObjectStorage()
		store.UploadImageFunc = func(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error) {
			return "", errors.New("storage down")
		}

		svc := NewAuthorityService(mocks.NewMockUserRepository(), mocks.NewMockAuthorityRepository(), mocks.NewMockPasswordService(), mocks.NewMockOTPService(), store, zap.NewNop())
		if _, err := svc.Register(context.Background(), authorityRegistration()); err == nil {
			t.Fatal("upload failure must abort registration")
		}
	})
}
