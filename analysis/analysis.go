package analysis

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greenepidemic/greenepidemic-api/external/ai"
	"github.com/greenepidemic/greenepidemic-api/external/weather"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "analysis")
}

// Cooldown is the minimum age of the latest analysis before a new one
// may be generated.
const Cooldown = 24 * time.Hour

// DefaultWindowHours is the trailing data window when the caller does
// not ask for a specific one.
const DefaultWindowHours = 24

// now is an alias of `time.Now` so the cadence check can be exercised
// with a simulated clock. Tests that replace it must not run in
// parallel.
var now = time.Now

// Store is the slice of the datastore the generator needs.
type Store interface {
	GetLatestAnalysis() (*schema.AIAnalysis, error)
	CreateAnalysis(analysis *schema.AIAnalysis) (*schema.AIAnalysis, error)
	CountReportsSince(since time.Time) (int64, error)
}

// Generator produces cadence gated situational summaries.
type Generator struct {
	store    Store
	ai       ai.AI
	weather  weather.Source
	monitors []schema.Location
}

func NewGenerator(s Store, aiClient ai.AI, weatherSource weather.Source, monitors []schema.Location) *Generator {
	return &Generator{
		store:    s,
		ai:       aiClient,
		weather:  weatherSource,
		monitors: monitors,
	}
}

// ShouldGenerate reports whether a new analysis is due: either none
// exists yet or the latest one is older than the cooldown. Two
// concurrent callers may both see a stale latest row and both
// generate; the store holds no uniqueness constraint against that.
func (g *Generator) ShouldGenerate() (bool, error) {
	latest, err := g.store.GetLatestAnalysis()
	if err == store.ErrNoAnalysis {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return now().Sub(latest.CreatedAt) > Cooldown, nil
}

// Generate gathers report counts and weather observations over the
// trailing window, asks the provider for a summary and persists it
// tagged with the originator.
func (g *Generator) Generate(ctx context.Context, originator string, hoursBack int) (*schema.AIAnalysis, error) {
	if hoursBack <= 0 {
		hoursBack = DefaultWindowHours
	}

	since := now().Add(-time.Duration(hoursBack) * time.Hour)
	reportCount, err := g.store.CountReportsSince(since)
	if err != nil {
		return nil, err
	}

	observations := make([]weather.Observation, 0, len(g.monitors))
	for _, m := range g.monitors {
		o, err := g.weather.Current(ctx, m.Latitude, m.Longitude)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"lat": m.Latitude,
				"lng": m.Longitude,
			}).Warn("skip unreachable weather monitor")
			continue
		}
		observations = append(observations, *o)
	}

	summary, err := g.ai.SummarizeSituation(ctx, ai.SituationInput{
		WindowHours:  hoursBack,
		ReportCount:  reportCount,
		Observations: observations,
	})
	if err != nil {
		return nil, err
	}

	return g.store.CreateAnalysis(&schema.AIAnalysis{
		Title:        summary.Title,
		Body:         summary.Body,
		Severity:     summary.Severity,
		Confidence:   summary.Confidence,
		ReportCount:  reportCount,
		WeatherCount: int64(len(observations)),
		WindowHours:  hoursBack,
		GeneratedBy:  originator,
	})
}
