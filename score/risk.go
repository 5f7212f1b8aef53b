package score

import (
	"strings"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

// criticalSymptoms immediately classify an assessment as critical
// regardless of the numeric score.
var criticalSymptoms = []string{
	"cannot breathe",
	"cardiac arrest",
	"unconscious",
	"severe bleeding",
	"severe burns",
}

var highRiskSymptoms = []string{
	"difficulty breathing",
	"chest pain",
	"severe headache",
	"confusion",
	"high fever",
	"severe vomiting",
	"severe abdominal pain",
	"loss of consciousness",
	"severe allergic reaction",
}

// RiskResult is the outcome of scoring one patient case.
type RiskResult struct {
	Score          int
	RiskLevel      string
	Priority       string
	Recommendation string
}

// AssessRisk converts a symptom report into a risk tier. The score is
// additive: severity weight, age offsets, then a bonus per symptom
// that matches a critical or high risk keyword. Critical and high risk
// matches short circuit the score thresholds.
func AssessRisk(symptoms []string, severity int, age int) RiskResult {
	total := severity * 10

	switch {
	case age >= 65:
		total += 20
	case age >= 50:
		total += 10
	case age <= 2:
		total += 15
	}

	var hasCritical, hasHighRisk bool
	for _, symptom := range symptoms {
		s := strings.ToLower(symptom)

		matched := false
		for _, keyword := range criticalSymptoms {
			if strings.Contains(s, keyword) {
				total += 50
				hasCritical = true
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		for _, keyword := range highRiskSymptoms {
			if strings.Contains(s, keyword) {
				total += 25
				hasHighRisk = true
				break
			}
		}
	}

	result := RiskResult{Score: total}
	switch {
	case hasCritical || total >= 80:
		result.RiskLevel = schema.RiskLevelCritical
		result.Priority = schema.PriorityEmergency
		result.Recommendation = schema.RecommendationEmergency
	case hasHighRisk || total >= 60:
		result.RiskLevel = schema.RiskLevelHigh
		result.Priority = schema.PriorityUrgent
		result.Recommendation = schema.RecommendationClinicVisit
	case total >= 40:
		result.RiskLevel = schema.RiskLevelMedium
		result.Priority = schema.PriorityUrgent
		result.Recommendation = schema.RecommendationTelehealth
	default:
		result.RiskLevel = schema.RiskLevelLow
		result.Priority = schema.PriorityRoutine
		result.Recommendation = schema.RecommendationSelfCare
	}

	return result
}
