package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationCollection = "notification"
)

const (
	NotificationChannelMessenger = "MESSENGER"
	NotificationChannelInApp     = "IN_APP"
)

// Notification is a per recipient message created in bulk by the
// proximity fan-out. The delivery worker updates it exactly once with
// the delivery outcome.
type Notification struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	AccountID string              `json:"account_id" bson:"account_id"`
	ReportID  *primitive.ObjectID `json:"report_id,omitempty" bson:"report_id,omitempty"`
	Channel   string              `json:"channel" bson:"channel"`
	Title     string              `json:"title" bson:"title"`
	Body      string              `json:"body" bson:"body"`
	Sent      bool                `json:"sent" bson:"sent"`
	SentAt    *time.Time          `json:"sent_at,omitempty" bson:"sent_at,omitempty"`
	SendError string              `json:"send_error,omitempty" bson:"send_error,omitempty"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
}
