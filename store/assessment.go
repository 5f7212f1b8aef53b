package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

var (
	ErrAssessmentNotFound = fmt.Errorf("risk assessment not found")
)

type AssessmentStore interface {
	CreateRiskAssessment(assessment *schema.RiskAssessment) (*schema.RiskAssessment, error)
	ListRiskAssessments(accountID string, limit int64) ([]schema.RiskAssessment, error)
	AnnotateRiskAssessment(assessmentID primitive.ObjectID, note string) error
}

func (m *mongoDB) CreateRiskAssessment(assessment *schema.RiskAssessment) (*schema.RiskAssessment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RiskAssessmentCollection)

	assessment.ID = primitive.NewObjectID()
	assessment.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (m *mongoDB) ListRiskAssessments(accountID string, limit int64) ([]schema.RiskAssessment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RiskAssessmentCollection)

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

	assessments := make([]schema.RiskAssessment, 0)
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	return assessments, nil
}

// AnnotateRiskAssessment sets the admin note, the only field that may
// change after an assessment is created.
func (m *mongoDB) AnnotateRiskAssessment(assessmentID primitive.ObjectID, note string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RiskAssessmentCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": assessmentID},
		bson.M{"$set": bson.M{"admin_note": note}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAssessmentNotFound
	}

	return nil
}
