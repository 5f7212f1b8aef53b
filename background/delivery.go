package background

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/external/messenger"
	"github.com/greenepidemic/greenepidemic-api/schema"
)

var log = logrus.WithField("prefix", "background")

const deliveryBatchSize = 100

const sendTimeout = 30 * time.Second

// DeliveryStore is the slice of the datastore the delivery task needs:
// the unsent queue and outcome writes in mongo, recipient chat ids in
// postgres.
type DeliveryStore interface {
	ListUnsentNotifications(limit int64) ([]schema.Notification, error)
	GetAccountsByIDs(ids []string) (map[string]*schema.Account, error)
	MarkNotificationSent(notificationID primitive.ObjectID, sendError string) error
}

// DeliverNotifications drains the unsent messenger queue. Every row in
// the batch gets its outcome recorded, success or not, so a poisoned
// message can not wedge the queue. The task itself only errors when
// the queue can not be read at all.
func (m *BackgroundManager) DeliverNotifications() error {
	notifications, err := m.store.ListUnsentNotifications(deliveryBatchSize)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}

	accountIDs := make([]string, 0, len(notifications))
	for _, n := range notifications {
		accountIDs = append(accountIDs, n.AccountID)
	}

	accounts, err := m.store.GetAccountsByIDs(accountIDs)
	if err != nil {
		return err
	}

	for _, n := range notifications {
		sendError := deliverOne(m.messenger, accounts[n.AccountID], &n)
		if err := m.store.MarkNotificationSent(n.ID, sendError); err != nil {
			log.WithError(err).WithField("notification_id", n.ID.Hex()).Error("record delivery outcome")
		}
	}

	return nil
}

func deliverOne(m messenger.Messenger, account *schema.Account, n *schema.Notification) string {
	if account == nil || account.Profile.MessengerChatID == "" {
		return "recipient has no messenger chat"
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := m.SendMessage(ctx, account.Profile.MessengerChatID, n.Title, n.Body); err != nil {
		log.WithError(err).WithField("notification_id", n.ID.Hex()).Warn("messenger send")
		return err.Error()
	}

	return ""
}
