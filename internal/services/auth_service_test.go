package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/mocks"
)

func newAuthServiceForTest(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, otpSvc *mocks.MockOTPService) domain.AuthService {
	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, zap.NewNop(), time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration dispatches a verification otp", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		otpSvc := mocks.NewMockOTPService()

		var otpEmail string
		var otpPurpose domain.OtpPurpose
		otpSvc.SendOTPFunc = func(ctx context.Context, email string, purpose domain.OtpPurpose) error {
			otpEmail = email
			otpPurpose = purpose
			return nil
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)
		user, err := svc.Register(context.Background(), "Ram Thapa", "ram@example.com", "password123", domain.RoleCitizen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if user.EmailStatus != domain.EmailPending {
			t.Errorf("expected pending email status, got %s", user.EmailStatus)
		}
		if user.IdentityStatus != domain.IdentityUnverified {
			t.Errorf("expected unverified identity, got %s", user.IdentityStatus)
		}
		if user.PasswordHash != "hashed:password123" {
			t.Errorf("unexpected password hash %q", user.PasswordHash)
		}
		if otpEmail != "ram@example.com" || otpPurpose != domain.PurposeVerifyEmail {
			t.Errorf("otp dispatched to %q for %q", otpEmail, otpPurpose)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())
		if _, err := svc.Register(context.Background(), "Ram Thapa", "taken@example.com", "password123", domain.RoleCitizen); !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("otp dispatch failure does not fail registration", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		otpSvc := mocks.NewMockOTPService()
		otpSvc.SendOTPFunc = func(ctx context.Context, email string, purpose domain.OtpPurpose) error {
			return errors.New("smtp down")
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)
		if _, err := svc.Register(context.Background(), "Ram Thapa", "ram@example.com", "password123", domain.RoleCitizen); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	makeUser := func(role domain.Role, email domain.EmailStatus, identity domain.IdentityStatus) *domain.User {
		return &domain.User{
			ID:             5,
			Email:          "user@example.com",
			PasswordHash:   "hashed:secret",
			Role:           role,
			EmailStatus:    email,
			IdentityStatus: identity,
		}
	}

	tests := []struct {
		name          string
		password      string
		user          *domain.User
		findErr       error
		expectedError error
	}{
		{
			name:     "verified citizen",
			password: "secret",
			user:     makeUser(domain.RoleCitizen, domain.EmailVerified, domain.IdentityUnverified),
		},
		{
			name:          "citizen with unverified email",
			password:      "secret",
			user:          makeUser(domain.RoleCitizen, domain.EmailPending, domain.IdentityUnverified),
			expectedError: domain.ErrEmailNotVerified,
		},
		{
			name:          "authority awaiting admin approval",
			password:      "secret",
			user:          makeUser(domain.RoleAuthority, domain.EmailVerified, domain.IdentityPending),
			expectedError: domain.ErrIdentityNotVerified,
		},
		{
			name:     "approved authority",
			password: "secret",
			user:     makeUser(domain.RoleAuthority, domain.EmailVerified, domain.IdentityVerified),
		},
		{
			name:     "admin bypasses both gates",
			password: "secret",
			user:     makeUser(domain.RoleAdmin, domain.EmailUnverified, domain.IdentityUnverified),
		},
		{
			name:          "wrong password",
			password:      "not-the-secret",
			user:          makeUser(domain.RoleCitizen, domain.EmailVerified, domain.IdentityUnverified),
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:          "unknown email",
			password:      "secret",
			findErr:       domain.ErrUserNotFound,
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				return tt.user, nil
			}

			svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())
			result, err := svc.Login(context.Background(), "user@example.com", tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token == "" {
				t.Error("login returned an empty session token")
			}
			if result.ExpiresIn != 3600 {
				t.Errorf("expected 3600s expiry, got %d", result.ExpiresIn)
			}
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	t.Run("provisions a citizen account on first contact", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		var created *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = 55
			created = user
			return nil
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())
		result, err := svc.LoginWithGoogle(context.Background(), "gita@example.com", "Gita Koirala")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("expected a provisioned account")
		}
		if created.Role != domain.RoleCitizen {
			t.Errorf("expected citizen role, got %s", created.Role)
		}
		if created.EmailStatus != domain.EmailVerified {
			t.Errorf("google-verified email must be stored verified, got %s", created.EmailStatus)
		}
		if created.PasswordHash != "" {
			t.Errorf("provisioned account must carry no password hash, got %q", created.PasswordHash)
		}
		if result.Token == "" {
			t.Error("login returned an empty session token")
		}
	})

	t.Run("existing account signs in without reprovisioning", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: email, Role: domain.RoleCitizen, EmailStatus: domain.EmailVerified}, nil
		}
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			t.Fatal("existing account must not be recreated")
			return nil
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())
		result, err := svc.LoginWithGoogle(context.Background(), "ram@example.com", "Ram Thapa")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.User.ID != 7 {
			t.Errorf("expected account 7, got %d", result.User.ID)
		}
	})

	t.Run("unapproved authority stays gated", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:             9,
				Email:          email,
				Role:           domain.RoleAuthority,
				EmailStatus:    domain.EmailVerified,
				IdentityStatus: domain.IdentityPending,
			}, nil
		}

		svc := newAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())
		if _, err := svc.LoginWithGoogle(context.Background(), "water@example.com", "Khanepani Office"); !errors.Is(err, domain.ErrIdentityNotVerified) {
			t.Fatalf("expected ErrIdentityNotVerified, got %v", err)
		}
	})
}
