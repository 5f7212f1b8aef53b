package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexReportCollection())
	panicIfError(m.IndexSurveillancePointCollection())
	panicIfError(m.IndexNotificationCollection())
	panicIfError(m.IndexRiskAssessmentCollection())
	panicIfError(m.IndexAIAnalysisCollection())
}

func (m *MongoDBIndexer) IndexReportCollection() error {
	if err := m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "status", Value: 1},
			bson.E{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexSurveillancePointCollection() error {
	if err := m.createIndex(SurveillancePointCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(SurveillancePointCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "account_id", Value: 1},
			bson.E{Key: "active", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "account_id", Value: 1},
			bson.E{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.M{
			"sent": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexRiskAssessmentCollection() error {
	return m.createIndex(RiskAssessmentCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "account_id", Value: 1},
			bson.E{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAIAnalysisCollection() error {
	return m.createIndex(AIAnalysisCollection, mongo.IndexModel{
		Keys: bson.M{
			"created_at": -1,
		},
	})
}
