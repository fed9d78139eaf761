package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// AuthorityRepositoryImpl implements domain.AuthorityRepository using GORM.
type AuthorityRepositoryImpl struct {
	db *gorm.DB
}

// DBAuthorityProfile is the database model for AuthorityProfile.
type DBAuthorityProfile struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"uniqueIndex;not null"`
	AuthorityType     string `gorm:"index;size:32;not null"`
	CitizenshipNumber string `gorm:"size:64;not null"`
	PhotoKey          string `gorm:"size:512"`
	FrontImageKey     string `gorm:"size:512"`
	BackImageKey      string `gorm:"size:512"`
	IdentityCardKey   string `gorm:"size:512"`
	CreatedAt         time.Time
}

// TableName returns the table name for GORM.
func (DBAuthorityProfile) TableName() string {
	return "authority_profiles"
}

// NewAuthorityRepository creates a new authority repository.
func NewAuthorityRepository(db *gorm.DB) domain.AuthorityRepository {
	return &AuthorityRepositoryImpl{db: db}
}

// Create implements domain.AuthorityRepository.
func (r *AuthorityRepositoryImpl) Create(ctx context.Context, profile *domain.AuthorityProfile) error {
	dbProfile := authorityToDB(profile)
	if err := r.db.WithContext(ctx).Create(dbProfile).Error; err != nil {
		return err
	}
	profile.ID = dbProfile.ID
	return nil
}

// FindByID implements domain.AuthorityRepository.
func (r *AuthorityRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.AuthorityProfile, error) {
	var dbProfile DBAuthorityProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorityNotFound
		}
		return nil, err
	}
	return authorityToDomain(&dbProfile), nil
}

// FindByUserID implements domain.AuthorityRepository.
func (r *AuthorityRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.AuthorityProfile, error) {
	var dbProfile DBAuthorityProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorityNotFound
		}
		return nil, err
	}
	return authorityToDomain(&dbProfile), nil
}

// ListByUserIdentityStatus implements domain.AuthorityRepository. Pending
// approval is a property of the owning user, so the filter joins users.
func (r *AuthorityRepositoryImpl) ListByUserIdentityStatus(ctx context.Context, status domain.IdentityStatus) ([]*domain.AuthorityProfile, error) {
	var dbProfiles []DBAuthorityProfile
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = authority_profiles.user_id").
		Where("users.identity_status = ?", string(status)).
		Order("authority_profiles.created_at ASC").
		Find(&dbProfiles).Error
	if err != nil {
		return nil, err
	}
	profiles := make([]*domain.AuthorityProfile, 0, len(dbProfiles))
	for i := range dbProfiles {
		profiles = append(profiles, authorityToDomain(&dbProfiles[i]))
	}
	return profiles, nil
}

func authorityToDB(profile *domain.AuthorityProfile) *DBAuthorityProfile {
	return &DBAuthorityProfile{
		ID:                profile.ID,
		UserID:            profile.UserID,
		AuthorityType:     string(profile.AuthorityType),
		CitizenshipNumber: profile.CitizenshipNumber,
		PhotoKey:          profile.PhotoKey,
		FrontImageKey:     profile.FrontImageKey,
		BackImageKey:      profile.BackImageKey,
		IdentityCardKey:   profile.IdentityCardKey,
	}
}

func authorityToDomain(dbProfile *DBAuthorityProfile) *domain.AuthorityProfile {
	return &domain.AuthorityProfile{
		ID:                dbProfile.ID,
		UserID:            dbProfile.UserID,
		AuthorityType:     domain.AuthorityType(dbProfile.AuthorityType),
		CitizenshipNumber: dbProfile.CitizenshipNumber,
		PhotoKey:          dbProfile.PhotoKey,
		FrontImageKey:     dbProfile.FrontImageKey,
		BackImageKey:      dbProfile.BackImageKey,
		IdentityCardKey:   dbProfile.IdentityCardKey,
		CreatedAt:         dbProfile.CreatedAt,
	}
}
