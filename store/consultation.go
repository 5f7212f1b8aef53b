package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

var (
	ErrConsultationNotFound  = fmt.Errorf("consultation not found")
	ErrConsultationFinalized = fmt.Errorf("consultation already finalized")
)

// CreateConsultation books a telemedicine consultation for a patient.
func (s *GreenEpidemicStore) CreateConsultation(accountID uuid.UUID, doctorName string, scheduledAt time.Time, reason, assessmentID string) (*schema.Consultation, error) {
	c := schema.Consultation{
		ID:           uuid.New(),
		AccountID:    accountID,
		DoctorName:   doctorName,
		ScheduledAt:  scheduledAt,
		Reason:       reason,
		Status:       schema.ConsultationStatusRequested,
		AssessmentID: assessmentID,
	}

	if err := s.ormDB.Create(&c).Error; err != nil {
		return nil, err
	}

	return &c, nil
}

// ListConsultations returns consultations booked by an account, the
// most recently scheduled first.
func (s *GreenEpidemicStore) ListConsultations(accountID uuid.UUID) ([]schema.Consultation, error) {
	consultations := make([]schema.Consultation, 0)
	if err := s.ormDB.
		Where("account_id = ?", accountID).
		Order("scheduled_at desc").
		Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

// CancelConsultation cancels a consultation owned by the given
// account. Completed or already cancelled consultations stay as is.
func (s *GreenEpidemicStore) CancelConsultation(accountID, consultationID uuid.UUID) error {
	var c schema.Consultation
	if err := s.ormDB.
		Where("id = ? AND account_id = ?", consultationID, accountID).
		First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrConsultationNotFound
		}
		return err
	}

	if c.Status == schema.ConsultationStatusCancelled || c.Status == schema.ConsultationStatusCompleted {
		return ErrConsultationFinalized
	}

	return s.ormDB.Model(&c).Update("status", schema.ConsultationStatusCancelled).Error
}
