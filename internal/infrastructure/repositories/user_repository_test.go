package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

func seedUser(t *testing.T, repo domain.UserRepository, email string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		FullName:       "Test User",
		Email:          email,
		PasswordHash:   "hashed:secret",
		Role:           role,
		EmailStatus:    domain.EmailPending,
		IdentityStatus: domain.IdentityUnverified,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created := seedUser(t, repo, "sita@example.com", domain.RoleCitizen)
	if created.ID == 0 {
		t.Fatal("create did not backfill the id")
	}

	byEmail, err := repo.FindByEmail(ctx, "sita@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.ID != byID.ID || byEmail.Email != byID.Email {
		t.Error("lookups by email and id disagree")
	}
	if byEmail.EmailStatus != domain.EmailPending {
		t.Errorf("expected pending email status, got %s", byEmail.EmailStatus)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	seedUser(t, repo, "taken@example.com", domain.RoleCitizen)
	dup := &domain.User{
		FullName:       "Impostor",
		Email:          "taken@example.com",
		PasswordHash:   "hashed:other",
		Role:           domain.RoleCitizen,
		EmailStatus:    domain.EmailPending,
		IdentityStatus: domain.IdentityUnverified,
	}
	if err := repo.Create(context.Background(), dup); err == nil {
		t.Fatal("duplicate email must be rejected by the unique index")
	}
}

func TestUserRepository_StatusSetters(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repo, "sita@example.com", domain.RoleCitizen)

	if err := repo.SetEmailStatus(ctx, user.ID, domain.EmailVerified); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SetIdentityStatus(ctx, user.ID, domain.IdentityPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EmailStatus != domain.EmailVerified {
		t.Errorf("expected verified email, got %s", got.EmailStatus)
	}
	if got.IdentityStatus != domain.IdentityPending {
		t.Errorf("expected pending identity, got %s", got.IdentityStatus)
	}
}

func TestUserRepository_ListByRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	seedUser(t, repo, "citizen1@example.com", domain.RoleCitizen)
	seedUser(t, repo, "citizen2@example.com", domain.RoleCitizen)
	seedUser(t, repo, "authority@example.com", domain.RoleAuthority)

	citizens, err := repo.ListByRole(context.Background(), domain.RoleCitizen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(citizens) != 2 {
		t.Errorf("expected 2 citizens, got %d", len(citizens))
	}
	for _, u := range citizens {
		if u.Role != domain.RoleCitizen {
			t.Errorf("non-citizen %s in citizen listing", u.Email)
		}
	}
}
