package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// ComplaintRepositoryImpl implements domain.ComplaintRepository using GORM.
type ComplaintRepositoryImpl struct {
	db *gorm.DB
}

// DBComplaint is the database model for Complaint. Media keys are a JSON
// array column; the files themselves live in object storage.
type DBComplaint struct {
	ID        uint     `gorm:"primaryKey"`
	UserID    uint     `gorm:"index;not null"`
	Text      string   `gorm:"type:text;not null"`
	Latitude  float64  `gorm:"not null"`
	Longitude float64  `gorm:"not null"`
	Address   string   `gorm:"size:512"`
	VoiceKey  string   `gorm:"size:512"`
	MediaKeys []string `gorm:"serializer:json;type:text"`
	Status    string   `gorm:"index;size:32;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (DBComplaint) TableName() string {
	return "complaints"
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *gorm.DB) domain.ComplaintRepository {
	return &ComplaintRepositoryImpl{db: db}
}

// Create implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *domain.Complaint) error {
	dbComplaint := complaintToDB(complaint)
	if err := r.db.WithContext(ctx).Create(dbComplaint).Error; err != nil {
		return err
	}
	complaint.ID = dbComplaint.ID
	complaint.CreatedAt = dbComplaint.CreatedAt
	return nil
}

// FindByID implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	var dbComplaint DBComplaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbComplaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return complaintToDomain(&dbComplaint), nil
}

// ListByUserID implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*domain.Complaint, error) {
	var dbComplaints []DBComplaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbComplaints).Error
	if err != nil {
		return nil, err
	}
	return complaintsToDomain(dbComplaints), nil
}

// ListByStatus implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error) {
	var dbComplaints []DBComplaint
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&dbComplaints).Error
	if err != nil {
		return nil, err
	}
	return complaintsToDomain(dbComplaints), nil
}

// ListAll implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	var dbComplaints []DBComplaint
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbComplaints).Error; err != nil {
		return nil, err
	}
	return complaintsToDomain(dbComplaints), nil
}

// UpdateStatus implements domain.ComplaintRepository.
func (r *ComplaintRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.ComplaintStatus) error {
	res := r.db.WithContext(ctx).Model(&DBComplaint{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

func complaintToDB(complaint *domain.Complaint) *DBComplaint {
	return &DBComplaint{
		ID:        complaint.ID,
		UserID:    complaint.UserID,
		Text:      complaint.Text,
		Latitude:  complaint.Latitude,
		Longitude: complaint.Longitude,
		Address:   complaint.Address,
		VoiceKey:  complaint.VoiceKey,
		MediaKeys: complaint.MediaKeys,
		Status:    string(complaint.Status),
	}
}

func complaintToDomain(dbComplaint *DBComplaint) *domain.Complaint {
	return &domain.Complaint{
		ID:        dbComplaint.ID,
		UserID:    dbComplaint.UserID,
		Text:      dbComplaint.Text,
		Latitude:  dbComplaint.Latitude,
		Longitude: dbComplaint.Longitude,
		Address:   dbComplaint.Address,
		VoiceKey:  dbComplaint.VoiceKey,
		MediaKeys: dbComplaint.MediaKeys,
		Status:    domain.ComplaintStatus(dbComplaint.Status),
		CreatedAt: dbComplaint.CreatedAt,
		UpdatedAt: dbComplaint.UpdatedAt,
	}
}

func complaintsToDomain(dbComplaints []DBComplaint) []*domain.Complaint {
	complaints := make([]*domain.Complaint, 0, len(dbComplaints))
	for i := range dbComplaints {
		complaints = append(complaints, complaintToDomain(&dbComplaints[i]))
	}
	return complaints
}
