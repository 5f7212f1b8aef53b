package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConsultationStatusRequested = "REQUESTED"
	ConsultationStatusConfirmed = "CONFIRMED"
	ConsultationStatusCancelled = "CANCELLED"
	ConsultationStatusCompleted = "COMPLETED"
)

// Consultation is a telemedicine booking made by a patient, optionally
// linked to the risk assessment that prompted it.
type Consultation struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID    uuid.UUID `json:"account_id" gorm:"type:uuid"`
	DoctorName   string    `json:"doctor_name"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status" gorm:"default:'REQUESTED'"`
	AssessmentID string    `json:"assessment_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
