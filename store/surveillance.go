package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

var (
	ErrSurveillancePointNotFound = fmt.Errorf("surveillance point not found")
)

// SurveillancePointUpdate carries the mutable fields of a point. Nil
// fields are left untouched.
type SurveillancePointUpdate struct {
	Name     *string
	Location *schema.Location
	Radius   *float64
	Active   *bool
}

type SurveillanceStore interface {
	CreateSurveillancePoint(accountID, name string, loc schema.Location, radius float64) (*schema.SurveillancePoint, error)
	ListSurveillancePoints(accountID string) ([]schema.SurveillancePoint, error)
	ListActiveSurveillancePoints() ([]schema.SurveillancePoint, error)
	UpdateSurveillancePoint(accountID string, pointID primitive.ObjectID, update SurveillancePointUpdate) error
	DeleteSurveillancePoint(accountID string, pointID primitive.ObjectID) error
}

func (m *mongoDB) CreateSurveillancePoint(accountID, name string, loc schema.Location, radius float64) (*schema.SurveillancePoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveillancePointCollection)

	now := time.Now().UTC()
	point := schema.SurveillancePoint{
		ID:        primitive.NewObjectID(),
		AccountID: accountID,
		Name:      name,
		Location:  schema.NewPoint(loc),
		Radius:    radius,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := c.InsertOne(ctx, point); err != nil {
		return nil, err
	}

	return &point, nil
}

func (m *mongoDB) ListSurveillancePoints(accountID string) ([]schema.SurveillancePoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveillancePointCollection)

	cursor, err := c.Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, err
	}

	points := make([]schema.SurveillancePoint, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	return points, nil
}

// ListActiveSurveillancePoints returns every active point across all
// accounts. The fan-out scans this list linearly.
func (m *mongoDB) ListActiveSurveillancePoints() ([]schema.SurveillancePoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveillancePointCollection)

	cursor, err := c.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	points := make([]schema.SurveillancePoint, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	return points, nil
}

// UpdateSurveillancePoint applies an update to a point if it is owned
// by the given account. Ownership is part of the match filter so a
// mismatch surfaces as not found.
func (m *mongoDB) UpdateSurveillancePoint(accountID string, pointID primitive.ObjectID, update SurveillancePointUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveillancePointCollection)

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Location != nil {
		set["location"] = schema.NewPoint(*update.Location)
	}
	if update.Radius != nil {
		set["radius"] = *update.Radius
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": pointID, "account_id": accountID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSurveillancePointNotFound
	}

	return nil
}

func (m *mongoDB) DeleteSurveillancePoint(accountID string, pointID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveillancePointCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": pointID, "account_id": accountID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSurveillancePointNotFound
	}

	return nil
}
