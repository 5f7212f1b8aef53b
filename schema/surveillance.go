package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SurveillancePointCollection = "surveillancePoint"
)

// SurveillancePoint is a named circular geofence owned by a single
// account. Active points are fan-out targets for proximity
// notifications on newly approved reports.
type SurveillancePoint struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	AccountID string             `json:"account_id" bson:"account_id"`
	Name      string             `json:"name" bson:"name"`
	Location  GeoJSON            `json:"location" bson:"location"`
	Radius    float64            `json:"radius" bson:"radius"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
