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
	ErrReportNotFound = fmt.Errorf("report not found")
)

// ReportQueryParams are the typed filters accepted by ListReports.
// Zero valued fields are not applied.
type ReportQueryParams struct {
	Status    string
	Category  string
	AccountID string
	Limit     int64
}

type ReportStore interface {
	CreateReport(report *schema.Report) (*schema.Report, error)
	GetReport(reportID primitive.ObjectID) (*schema.Report, error)
	ListReports(params ReportQueryParams) ([]schema.Report, error)
	UpdateReportStatus(reportID primitive.ObjectID, status, moderatedBy string) (*schema.Report, error)
	CountReportsSince(since time.Time) (int64, error)
}

// CreateReport inserts a newly submitted report in pending state.
func (m *mongoDB) CreateReport(report *schema.Report) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	report.ID = primitive.NewObjectID()
	report.Status = schema.ReportStatusPending
	report.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (m *mongoDB) GetReport(reportID primitive.ObjectID) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	var report schema.Report
	if err := c.FindOne(ctx, bson.M{"_id": reportID}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// ListReports returns reports matching the given typed filters, the
// newest first.
func (m *mongoDB) ListReports(params ReportQueryParams) ([]schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	query := bson.M{}
	if params.Status != "" {
		query["status"] = params.Status
	}
	if params.Category != "" {
		query["category"] = params.Category
	}
	if params.AccountID != "" {
		query["account_id"] = params.AccountID
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	reports := make([]schema.Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// UpdateReportStatus records a moderation decision and returns the
// updated report.
func (m *mongoDB) UpdateReportStatus(reportID primitive.ObjectID, status, moderatedBy string) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	now := time.Now().UTC()
	var report schema.Report
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": reportID},
		bson.M{"$set": bson.M{
			"status":       status,
			"moderated_by": moderatedBy,
			"moderated_at": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// CountReportsSince counts reports submitted after the given time,
// used as an input size for AI analysis generation.
func (m *mongoDB) CountReportsSince(since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	return c.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}
