package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RiskAssessmentCollection = "riskAssessment"
)

const (
	RiskLevelLow      = "LOW"
	RiskLevelMedium   = "MEDIUM"
	RiskLevelHigh     = "HIGH"
	RiskLevelCritical = "CRITICAL"
)

const (
	PriorityRoutine   = "ROUTINE"
	PriorityUrgent    = "URGENT"
	PriorityEmergency = "EMERGENCY"
)

const (
	RecommendationSelfCare    = "SELF_CARE"
	RecommendationTelehealth  = "TELEHEALTH"
	RecommendationClinicVisit = "CLINIC_VISIT"
	RecommendationEmergency   = "EMERGENCY"
)

// RiskAssessment is a scored evaluation of a patient symptom report.
// Immutable after creation except for the admin note.
type RiskAssessment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	AccountID      string             `json:"account_id" bson:"account_id"`
	Age            int                `json:"age" bson:"age"`
	Gender         string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Symptoms       []string           `json:"symptoms" bson:"symptoms"`
	Severity       int                `json:"severity" bson:"severity"`
	Score          int                `json:"score" bson:"score"`
	RiskLevel      string             `json:"risk_level" bson:"risk_level"`
	Priority       string             `json:"priority" bson:"priority"`
	Recommendation string             `json:"recommendation" bson:"recommendation"`
	Location       *GeoJSON           `json:"location,omitempty" bson:"location,omitempty"`
	AdminNote      string             `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
