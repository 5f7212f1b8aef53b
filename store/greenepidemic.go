package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

// green epidemic main datastore
type GreenEpidemicCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordDigest, name string) (*schema.Account, error)
	GetAccount(id uuid.UUID) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	UpdateAccountProfile(id uuid.UUID, homeLocation *schema.HomeLocation, clearHomeLocation bool, channels schema.ChannelPreferences, messengerChatID *string) error

	// Consultation
	CreateConsultation(accountID uuid.UUID, doctorName string, scheduledAt time.Time, reason, assessmentID string) (*schema.Consultation, error)
	ListConsultations(accountID uuid.UUID) ([]schema.Consultation, error)
	CancelConsultation(accountID, consultationID uuid.UUID) error

	// Fan-out targets
	ListAccountsWithHomeLocation() ([]schema.Account, error)
	GetAccountsByIDs(ids []string) (map[string]*schema.Account, error)
	ListActiveSurveillancePoints() ([]schema.SurveillancePoint, error)
	CreateNotifications(notifications []schema.Notification) (int, error)
}

// GreenEpidemicStore is an implementation of GreenEpidemicCore
type GreenEpidemicStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewGreenEpidemicStore(ormDB *gorm.DB, mongo MongoStore) *GreenEpidemicStore {
	return &GreenEpidemicStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *GreenEpidemicStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// The fan-out reads surveillance points and writes notifications in
// mongo while resolving owners in postgres, so the combined store
// forwards the mongo half and satisfies fanout.Store on its own.

func (s *GreenEpidemicStore) ListActiveSurveillancePoints() ([]schema.SurveillancePoint, error) {
	return s.mongo.ListActiveSurveillancePoints()
}

func (s *GreenEpidemicStore) CreateNotifications(notifications []schema.Notification) (int, error) {
	return s.mongo.CreateNotifications(notifications)
}

// The delivery worker drains the unsent queue in mongo and records the
// outcome there, while the recipient chat ids live in postgres.

func (s *GreenEpidemicStore) ListUnsentNotifications(limit int64) ([]schema.Notification, error) {
	return s.mongo.ListUnsentNotifications(limit)
}

func (s *GreenEpidemicStore) MarkNotificationSent(notificationID primitive.ObjectID, sendError string) error {
	return s.mongo.MarkNotificationSent(notificationID, sendError)
}
