package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenepidemic/greenepidemic-api/external/messenger"
	"github.com/greenepidemic/greenepidemic-api/store"
)

// BackgroundManager is a struct for green epidemic background manager
type BackgroundManager struct {
	store DeliveryStore

	messenger messenger.Messenger

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	core := store.NewGreenEpidemicStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	m := messenger.New(
		viper.GetString("messenger.bot_token"),
		viper.GetString("messenger.api_url"),
	)

	return &BackgroundManager{
		store:      core,
		messenger:  m,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("greenepidemic-worker", 5)
	return m.worker.Launch()
}
