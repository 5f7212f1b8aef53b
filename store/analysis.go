package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

var (
	ErrNoAnalysis = fmt.Errorf("no analysis generated yet")
)

type AnalysisStore interface {
	CreateAnalysis(analysis *schema.AIAnalysis) (*schema.AIAnalysis, error)
	GetLatestAnalysis() (*schema.AIAnalysis, error)
	ListAnalyses(limit int64) ([]schema.AIAnalysis, error)
}

func (m *mongoDB) CreateAnalysis(analysis *schema.AIAnalysis) (*schema.AIAnalysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AIAnalysisCollection)

	analysis.ID = primitive.NewObjectID()
	analysis.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// GetLatestAnalysis returns the most recently created analysis, or
// ErrNoAnalysis when none exists yet.
func (m *mongoDB) GetLatestAnalysis() (*schema.AIAnalysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AIAnalysisCollection)

	var analysis schema.AIAnalysis
	err := c.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.M{"created_at": -1}),
	).Decode(&analysis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoAnalysis
		}
		return nil, err
	}

	return &analysis, nil
}

func (m *mongoDB) ListAnalyses(limit int64) ([]schema.AIAnalysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AIAnalysisCollection)

	if limit <= 0 || limit > 50 {
		limit = 50
	}

	cursor, err := c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	analyses := make([]schema.AIAnalysis, 0)
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}

	return analyses, nil
}
