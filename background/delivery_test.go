package background

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/external/mocks"
	"github.com/greenepidemic/greenepidemic-api/schema"
)

func deliveryManager(s DeliveryStore, m *mocks.MockMessenger) *BackgroundManager {
	return &BackgroundManager{
		store:     s,
		messenger: m,
	}
}

func notificationFixture(accountID, title, body string) schema.Notification {
	return schema.Notification{
		ID:        primitive.NewObjectID(),
		AccountID: accountID,
		Channel:   schema.NotificationChannelMessenger,
		Title:     title,
		Body:      body,
	}
}

func accountWithChat(chatID string) *schema.Account {
	return &schema.Account{
		Profile: schema.AccountProfile{
			MessengerChatID: chatID,
		},
	}
}

func TestDeliverNotificationsSendsAndRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := NewMockDeliveryStore(ctl)
	m := mocks.NewMockMessenger(ctl)

	n := notificationFixture("acc-1", "Alert", "fire near river bank")

	s.EXPECT().ListUnsentNotifications(int64(deliveryBatchSize)).Return([]schema.Notification{n}, nil)
	s.EXPECT().GetAccountsByIDs([]string{"acc-1"}).Return(map[string]*schema.Account{
		"acc-1": accountWithChat("chat-42"),
	}, nil)
	m.EXPECT().SendMessage(gomock.Any(), "chat-42", "Alert", "fire near river bank").Return(nil)
	s.EXPECT().MarkNotificationSent(n.ID, "").Return(nil)

	err := deliveryManager(s, m).DeliverNotifications()
	assert.NoError(t, err)
}

func TestDeliverNotificationsEmptyQueue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := NewMockDeliveryStore(ctl)
	m := mocks.NewMockMessenger(ctl)

	s.EXPECT().ListUnsentNotifications(gomock.Any()).Return([]schema.Notification{}, nil)

	err := deliveryManager(s, m).DeliverNotifications()
	assert.NoError(t, err)
}

func TestDeliverNotificationsRecordsSendFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := NewMockDeliveryStore(ctl)
	m := mocks.NewMockMessenger(ctl)

	failing := notificationFixture("acc-1", "Alert", "first")
	ok := notificationFixture("acc-2", "Alert", "second")

	s.EXPECT().ListUnsentNotifications(gomock.Any()).Return([]schema.Notification{failing, ok}, nil)
	s.EXPECT().GetAccountsByIDs([]string{"acc-1", "acc-2"}).Return(map[string]*schema.Account{
		"acc-1": accountWithChat("chat-1"),
		"acc-2": accountWithChat("chat-2"),
	}, nil)

	m.EXPECT().SendMessage(gomock.Any(), "chat-1", "Alert", "first").Return(errors.New("bot blocked by user"))
	m.EXPECT().SendMessage(gomock.Any(), "chat-2", "Alert", "second").Return(nil)

	// a failed send still records its outcome and the batch moves on
	s.EXPECT().MarkNotificationSent(failing.ID, "bot blocked by user").Return(nil)
	s.EXPECT().MarkNotificationSent(ok.ID, "").Return(nil)

	err := deliveryManager(s, m).DeliverNotifications()
	assert.NoError(t, err)
}

func TestDeliverNotificationsMissingChat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := NewMockDeliveryStore(ctl)
	m := mocks.NewMockMessenger(ctl)

	n := notificationFixture("acc-1", "Alert", "body")

	s.EXPECT().ListUnsentNotifications(gomock.Any()).Return([]schema.Notification{n}, nil)
	s.EXPECT().GetAccountsByIDs([]string{"acc-1"}).Return(map[string]*schema.Account{}, nil)
	s.EXPECT().MarkNotificationSent(n.ID, "recipient has no messenger chat").Return(nil)

	err := deliveryManager(s, m).DeliverNotifications()
	assert.NoError(t, err)
}

func TestDeliverNotificationsQueueReadError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := NewMockDeliveryStore(ctl)
	m := mocks.NewMockMessenger(ctl)

	s.EXPECT().ListUnsentNotifications(gomock.Any()).Return(nil, errors.New("mongo down"))

	err := deliveryManager(s, m).DeliverNotifications()
	assert.EqualError(t, err, "mongo down")
}
