package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

type NotificationStore interface {
	CreateNotifications(notifications []schema.Notification) (int, error)
	ListNotifications(accountID string, limit int64) ([]schema.Notification, error)
	ListUnsentNotifications(limit int64) ([]schema.Notification, error)
	MarkNotificationSent(notificationID primitive.ObjectID, sendError string) error
}

// CreateNotifications bulk inserts notification rows built by the
// fan-out. All or nothing: a failed insert fails the whole batch.
func (m *mongoDB) CreateNotifications(notifications []schema.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(notifications))
	for i := range notifications {
		notifications[i].ID = primitive.NewObjectID()
		notifications[i].CreatedAt = now
		docs = append(docs, notifications[i])
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}

	return len(result.InsertedIDs), nil
}

func (m *mongoDB) ListNotifications(accountID string, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	cursor, err := c.Find(ctx,
		bson.M{"account_id": accountID},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// ListUnsentNotifications returns pending messenger notifications for
// the delivery worker.
func (m *mongoDB) ListUnsentNotifications(limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	if limit <= 0 {
		limit = 100
	}

	cursor, err := c.Find(ctx,
		bson.M{"sent": false, "channel": schema.NotificationChannelMessenger},
		options.Find().SetSort(bson.M{"created_at": 1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationSent records the delivery outcome exactly once. An
// empty sendError means the delivery succeeded.
func (m *mongoDB) MarkNotificationSent(notificationID primitive.ObjectID, sendError string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	now := time.Now().UTC()
	_, err := c.UpdateOne(ctx,
		bson.M{"_id": notificationID},
		bson.M{"$set": bson.M{
			"sent":       true,
			"sent_at":    now,
			"send_error": sendError,
		}},
	)
	return err
}
