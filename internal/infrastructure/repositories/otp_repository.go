package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// OtpRepositoryImpl implements domain.OtpRepository using GORM. Rows are
// append-only; supersession happens by always reading the latest row for a
// (user, purpose) pair.
type OtpRepositoryImpl struct {
	db *gorm.DB
}

// DBOtpToken is the database model for OtpToken.
type DBOtpToken struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index:idx_otp_user_purpose;not null"`
	Code        string    `gorm:"size:16;not null"`
	Purpose     string    `gorm:"index:idx_otp_user_purpose;size:32;not null"`
	GeneratedAt time.Time `gorm:"index;not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	Used        bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM.
func (DBOtpToken) TableName() string {
	return "otp_tokens"
}

// NewOtpRepository creates a new OTP repository.
func NewOtpRepository(db *gorm.DB) domain.OtpRepository {
	return &OtpRepositoryImpl{db: db}
}

// Create implements domain.OtpRepository.
func (r *OtpRepositoryImpl) Create(ctx context.Context, token *domain.OtpToken) error {
	dbToken := otpToDB(token)
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	return nil
}

// LatestByUserAndPurpose implements domain.OtpRepository.
func (r *OtpRepositoryImpl) LatestByUserAndPurpose(ctx context.Context, userID uint, purpose domain.OtpPurpose) (*domain.OtpToken, error) {
	var dbToken DBOtpToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		Order("generated_at DESC").
		First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}
	return otpToDomain(&dbToken), nil
}

// ConsumeOnce implements domain.OtpRepository. The conditional update makes
// consumption exactly-once under concurrent verifies: the row flips at most
// one time, and only the caller whose update matched a row wins.
func (r *OtpRepositoryImpl) ConsumeOnce(ctx context.Context, tokenID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBOtpToken{}).
		Where("id = ? AND used = ?", tokenID, false).
		Update("used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteExpiredBefore implements domain.OtpRepository.
func (r *OtpRepositoryImpl) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&DBOtpToken{}).Error
}

func otpToDB(token *domain.OtpToken) *DBOtpToken {
	return &DBOtpToken{
		ID:          token.ID,
		UserID:      token.UserID,
		Code:        token.Code,
		Purpose:     string(token.Purpose),
		GeneratedAt: token.GeneratedAt,
		ExpiresAt:   token.ExpiresAt,
		Used:        token.Used,
	}
}

func otpToDomain(dbToken *DBOtpToken) *domain.OtpToken {
	return &domain.OtpToken{
		ID:          dbToken.ID,
		UserID:      dbToken.UserID,
		Code:        dbToken.Code,
		Purpose:     domain.OtpPurpose(dbToken.Purpose),
		GeneratedAt: dbToken.GeneratedAt,
		ExpiresAt:   dbToken.ExpiresAt,
		Used:        dbToken.Used,
	}
}
