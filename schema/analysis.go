package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AIAnalysisCollection = "aiAnalysis"
)

const (
	AnalysisOriginCron = "cron"
)

// AIAnalysis is a generated situational summary over a trailing data
// window. Rows are never mutated after creation.
type AIAnalysis struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Body         string             `json:"body" bson:"body"`
	Severity     float64            `json:"severity" bson:"severity"`
	Confidence   float64            `json:"confidence" bson:"confidence"`
	ReportCount  int64              `json:"report_count" bson:"report_count"`
	WeatherCount int64              `json:"weather_count" bson:"weather_count"`
	WindowHours  int                `json:"window_hours" bson:"window_hours"`
	GeneratedBy  string             `json:"generated_by" bson:"generated_by"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
