package analysis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/greenepidemic/greenepidemic-api/external/ai"
	"github.com/greenepidemic/greenepidemic-api/external/mocks"
	"github.com/greenepidemic/greenepidemic-api/external/weather"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

func restoreClock() {
	now = time.Now
}

func TestShouldGenerateWithoutPriorAnalysis(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().GetLatestAnalysis().Return(nil, store.ErrNoAnalysis)

	g := NewGenerator(mockStore, nil, nil, nil)

	ok, err := g.ShouldGenerate()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestShouldGenerateGatedByCooldown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	defer restoreClock()

	createdAt := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	latest := &schema.AIAnalysis{CreatedAt: createdAt}

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().GetLatestAnalysis().Return(latest, nil).Times(3)

	g := NewGenerator(mockStore, nil, nil, nil)

	// right after creation
	now = func() time.Time { return createdAt.Add(time.Minute) }
	ok, err := g.ShouldGenerate()
	assert.NoError(t, err)
	assert.False(t, ok)

	// exactly at the cooldown boundary, still gated
	now = func() time.Time { return createdAt.Add(Cooldown) }
	ok, err = g.ShouldGenerate()
	assert.NoError(t, err)
	assert.False(t, ok)

	// past the cooldown
	now = func() time.Time { return createdAt.Add(Cooldown + time.Second) }
	ok, err = g.ShouldGenerate()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestShouldGenerateStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().GetLatestAnalysis().Return(nil, fmt.Errorf("connection reset"))

	g := NewGenerator(mockStore, nil, nil, nil)

	ok, err := g.ShouldGenerate()
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestGeneratePersistsTaggedAnalysis(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	monitor := schema.Location{Latitude: 25.03, Longitude: 121.56}

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().CountReportsSince(gomock.Any()).Return(int64(42), nil)

	aiMock := mocks.NewMockAI(ctl)
	aiMock.EXPECT().SummarizeSituation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input ai.SituationInput) (*ai.Summary, error) {
			assert.Equal(t, int64(42), input.ReportCount)
			assert.Equal(t, 48, input.WindowHours)
			assert.Len(t, input.Observations, 1)
			return &ai.Summary{
				Title:      "air quality degrading",
				Body:       "pm2.5 rising in the monitored area",
				Severity:   6.5,
				Confidence: 0.8,
			}, nil
		})

	weatherMock := mocks.NewMockSource(ctl)
	weatherMock.EXPECT().Current(gomock.Any(), monitor.Latitude, monitor.Longitude).
		Return(&weather.Observation{Temperature: 31.2}, nil)

	var saved *schema.AIAnalysis
	mockStore.EXPECT().CreateAnalysis(gomock.Any()).
		DoAndReturn(func(a *schema.AIAnalysis) (*schema.AIAnalysis, error) {
			saved = a
			return a, nil
		})

	g := NewGenerator(mockStore, aiMock, weatherMock, []schema.Location{monitor})

	result, err := g.Generate(context.Background(), "admin:b2f5", 48)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "admin:b2f5", saved.GeneratedBy)
	assert.Equal(t, int64(42), saved.ReportCount)
	assert.Equal(t, int64(1), saved.WeatherCount)
	assert.Equal(t, 48, saved.WindowHours)
	assert.Equal(t, "air quality degrading", saved.Title)
}

func TestGenerateSkipsUnreachableMonitors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	monitor := schema.Location{Latitude: 1, Longitude: 2}

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().CountReportsSince(gomock.Any()).Return(int64(0), nil)

	weatherMock := mocks.NewMockSource(ctl)
	weatherMock.EXPECT().Current(gomock.Any(), monitor.Latitude, monitor.Longitude).
		Return(nil, fmt.Errorf("timeout"))

	aiMock := mocks.NewMockAI(ctl)
	aiMock.EXPECT().SummarizeSituation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input ai.SituationInput) (*ai.Summary, error) {
			assert.Len(t, input.Observations, 0)
			return &ai.Summary{Title: "quiet day", Body: "nothing to report"}, nil
		})

	mockStore.EXPECT().CreateAnalysis(gomock.Any()).
		DoAndReturn(func(a *schema.AIAnalysis) (*schema.AIAnalysis, error) {
			return a, nil
		})

	g := NewGenerator(mockStore, aiMock, weatherMock, []schema.Location{monitor})

	result, err := g.Generate(context.Background(), schema.AnalysisOriginCron, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.WeatherCount)
	assert.Equal(t, DefaultWindowHours, result.WindowHours)
}

func TestGenerateProviderErrorSurfaces(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := NewMockStore(ctl)
	mockStore.EXPECT().CountReportsSince(gomock.Any()).Return(int64(3), nil)

	aiMock := mocks.NewMockAI(ctl)
	aiMock.EXPECT().SummarizeSituation(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("provider unavailable"))

	g := NewGenerator(mockStore, aiMock, mocks.NewMockSource(ctl), nil)

	result, err := g.Generate(context.Background(), "user:17ac", 24)
	assert.Error(t, err)
	assert.Nil(t, result)
}
