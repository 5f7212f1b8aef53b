package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportCollection = "report"
)

const (
	ReportStatusPending  = "PENDING"
	ReportStatusApproved = "APPROVED"
	ReportStatusRejected = "REJECTED"
)

const (
	ReportCategoryDisease       = "DISEASE"
	ReportCategoryEnvironmental = "ENVIRONMENTAL"
	ReportCategoryFire          = "FIRE"
	ReportCategoryAirQuality    = "AIR_QUALITY"
)

// ReportCategories lists the accepted values for Report.Category.
var ReportCategories = []string{
	ReportCategoryDisease,
	ReportCategoryEnvironmental,
	ReportCategoryFire,
	ReportCategoryAirQuality,
}

// Report is a user submitted incident. It is moderated by an admin
// before it becomes publicly visible; the moderation decision is the
// only mutation applied after creation.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	AccountID   string             `json:"account_id" bson:"account_id"`
	Category    string             `json:"category" bson:"category"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Symptoms    []string           `json:"symptoms" bson:"symptoms"`
	Severity    int                `json:"severity" bson:"severity"`
	Location    GeoJSON            `json:"location" bson:"location"`
	Country     string             `json:"country,omitempty" bson:"country,omitempty"`
	County      string             `json:"county,omitempty" bson:"county,omitempty"`
	Status      string             `json:"status" bson:"status"`
	ModeratedBy string             `json:"moderated_by,omitempty" bson:"moderated_by,omitempty"`
	ModeratedAt *time.Time         `json:"moderated_at,omitempty" bson:"moderated_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
