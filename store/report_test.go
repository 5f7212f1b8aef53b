package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

type ReportTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewReportTestSuite(connURI, dbName string) *ReportTestSuite {
	return &ReportTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ReportTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatalf("clean mongo db with error: %s", err.Error())
	}
}

func (s *ReportTestSuite) CleanMongoDB() error {
	return s.testDatabase.Collection(schema.ReportCollection).Drop(context.Background())
}

func (s *ReportTestSuite) TestCreateReportStartsPending() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	report, err := store.CreateReport(&schema.Report{
		AccountID: "account-create",
		Category:  schema.ReportCategoryFire,
		Title:     "smoke over the hills",
		Severity:  3,
		Location:  schema.NewPoint(schema.Location{Latitude: 1.2, Longitude: 3.4}),
	})
	s.NoError(err)
	s.False(report.ID.IsZero())
	s.Equal(schema.ReportStatusPending, report.Status)

	stored, err := store.GetReport(report.ID)
	s.NoError(err)
	s.Equal(schema.ReportStatusPending, stored.Status)
	s.Equal("smoke over the hills", stored.Title)
}

func (s *ReportTestSuite) TestUpdateReportStatus() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	report, err := store.CreateReport(&schema.Report{
		AccountID: "account-moderate",
		Category:  schema.ReportCategoryDisease,
		Title:     "cluster of fevers",
		Severity:  4,
		Location:  schema.NewPoint(schema.Location{Latitude: 0, Longitude: 0}),
	})
	s.NoError(err)

	updated, err := store.UpdateReportStatus(report.ID, schema.ReportStatusApproved, "admin-1")
	s.NoError(err)
	s.Equal(schema.ReportStatusApproved, updated.Status)
	s.Equal("admin-1", updated.ModeratedBy)
	s.NotNil(updated.ModeratedAt)
}

func (s *ReportTestSuite) TestListReportsFilters() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	report, err := store.CreateReport(&schema.Report{
		AccountID: "account-list",
		Category:  schema.ReportCategoryAirQuality,
		Title:     "haze downtown",
		Severity:  2,
		Location:  schema.NewPoint(schema.Location{Latitude: 0, Longitude: 0}),
	})
	s.NoError(err)

	pending, err := store.ListReports(ReportQueryParams{
		Status:    schema.ReportStatusPending,
		Category:  schema.ReportCategoryAirQuality,
		AccountID: "account-list",
	})
	s.NoError(err)
	s.Len(pending, 1)
	s.Equal(report.ID, pending[0].ID)

	approved, err := store.ListReports(ReportQueryParams{
		Status:    schema.ReportStatusApproved,
		AccountID: "account-list",
	})
	s.NoError(err)
	s.Len(approved, 0)
}

func (s *ReportTestSuite) TestCountReportsSince() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before := time.Now().UTC().Add(-time.Minute)

	_, err := store.CreateReport(&schema.Report{
		AccountID: "account-count",
		Category:  schema.ReportCategoryEnvironmental,
		Title:     "spill at the creek",
		Severity:  3,
		Location:  schema.NewPoint(schema.Location{Latitude: 0, Longitude: 0}),
	})
	s.NoError(err)

	count, err := store.CountReportsSince(before)
	s.NoError(err)
	s.True(count >= 1)

	future, err := store.CountReportsSince(time.Now().UTC().Add(time.Hour))
	s.NoError(err)
	s.Equal(int64(0), future)
}

func TestReportTestSuite(t *testing.T) {
	if os.Getenv("MONGODB_TEST") == "" {
		t.Skip("set MONGODB_TEST to run mongodb store tests")
	}
	suite.Run(t, NewReportTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
