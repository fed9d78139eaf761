package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser is the database model for User.
type DBUser struct {
	ID             uint      `gorm:"primaryKey"`
	FullName       string    `gorm:"size:255;not null"`
	Email          string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `gorm:"column:password"`
	Role           string    `gorm:"index;size:32;not null"`
	EmailStatus    string    `gorm:"size:32;not null"`
	IdentityStatus string    `gorm:"size:32;not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// Update implements domain.UserRepository.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(userToDB(user)).Error
}

// SetEmailStatus implements domain.UserRepository.
func (r *UserRepositoryImpl) SetEmailStatus(ctx context.Context, userID uint, status domain.EmailStatus) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ?", userID).
		Update("email_status", string(status)).Error
}

// SetIdentityStatus implements domain.UserRepository.
func (r *UserRepositoryImpl) SetIdentityStatus(ctx context.Context, userID uint, status domain.IdentityStatus) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ?", userID).
		Update("identity_status", string(status)).Error
}

// ListByRole implements domain.UserRepository.
func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Where("role = ?", string(role)).Order("created_at DESC").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, userToDomain(&dbUsers[i]))
	}
	return users, nil
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:             user.ID,
		FullName:       user.FullName,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		Role:           string(user.Role),
		EmailStatus:    string(user.EmailStatus),
		IdentityStatus: string(user.IdentityStatus),
	}
}

func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:             dbUser.ID,
		FullName:       dbUser.FullName,
		Email:          dbUser.Email,
		PasswordHash:   dbUser.PasswordHash,
		Role:           domain.Role(dbUser.Role),
		EmailStatus:    domain.EmailStatus(dbUser.EmailStatus),
		IdentityStatus: domain.IdentityStatus(dbUser.IdentityStatus),
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
}
