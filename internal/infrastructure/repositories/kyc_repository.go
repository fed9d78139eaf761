package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// KYCRepositoryImpl implements domain.KYCRepository using GORM.
type KYCRepositoryImpl struct {
	db *gorm.DB
}

// DBKYCRecord is the database model for KYCRecord.
type DBKYCRecord struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"index;not null"`
	DocumentType string    `gorm:"size:64;not null"`
	FrontKey     string    `gorm:"size:512"`
	BackKey      string    `gorm:"size:512"`
	PhotoKey     string    `gorm:"size:512"`
	Status       string    `gorm:"index;size:32;not null"`
	SubmittedAt  time.Time `gorm:"index;not null"`
	VerifiedAt   *time.Time
}

// TableName returns the table name for GORM.
func (DBKYCRecord) TableName() string {
	return "user_kyc"
}

// NewKYCRepository creates a new KYC repository.
func NewKYCRepository(db *gorm.DB) domain.KYCRepository {
	return &KYCRepositoryImpl{db: db}
}

// Create implements domain.KYCRepository.
func (r *KYCRepositoryImpl) Create(ctx context.Context, record *domain.KYCRecord) error {
	dbRecord := kycToDB(record)
	if err := r.db.WithContext(ctx).Create(dbRecord).Error; err != nil {
		return err
	}
	record.ID = dbRecord.ID
	return nil
}

// FindByID implements domain.KYCRepository.
func (r *KYCRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.KYCRecord, error) {
	var dbRecord DBKYCRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRecord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKYCNotFound
		}
		return nil, err
	}
	return kycToDomain(&dbRecord), nil
}

// LatestByUserID implements domain.KYCRepository.
func (r *KYCRepositoryImpl) LatestByUserID(ctx context.Context, userID uint) (*domain.KYCRecord, error) {
	var dbRecord DBKYCRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		First(&dbRecord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKYCNotFound
		}
		return nil, err
	}
	return kycToDomain(&dbRecord), nil
}

// ListByStatus implements domain.KYCRepository.
func (r *KYCRepositoryImpl) ListByStatus(ctx context.Context, status domain.IdentityStatus) ([]*domain.KYCRecord, error) {
	var dbRecords []DBKYCRecord
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("submitted_at ASC").
		Find(&dbRecords).Error
	if err != nil {
		return nil, err
	}
	records := make([]*domain.KYCRecord, 0, len(dbRecords))
	for i := range dbRecords {
		records = append(records, kycToDomain(&dbRecords[i]))
	}
	return records, nil
}

// Update implements domain.KYCRepository.
func (r *KYCRepositoryImpl) Update(ctx context.Context, record *domain.KYCRecord) error {
	return r.db.WithContext(ctx).Save(kycToDB(record)).Error
}

func kycToDB(record *domain.KYCRecord) *DBKYCRecord {
	return &DBKYCRecord{
		ID:           record.ID,
		UserID:       record.UserID,
		DocumentType: record.DocumentType,
		FrontKey:     record.FrontKey,
		BackKey:      record.BackKey,
		PhotoKey:     record.PhotoKey,
		Status:       string(record.Status),
		SubmittedAt:  record.SubmittedAt,
		VerifiedAt:   record.VerifiedAt,
	}
}

func kycToDomain(dbRecord *DBKYCRecord) *domain.KYCRecord {
	return &domain.KYCRecord{
		ID:           dbRecord.ID,
		UserID:       dbRecord.UserID,
		DocumentType: dbRecord.DocumentType,
		FrontKey:     dbRecord.FrontKey,
		BackKey:      dbRecord.BackKey,
		PhotoKey:     dbRecord.PhotoKey,
		Status:       domain.IdentityStatus(dbRecord.Status),
		SubmittedAt:  dbRecord.SubmittedAt,
		VerifiedAt:   dbRecord.VerifiedAt,
	}
}
