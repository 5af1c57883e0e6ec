// Per-antibiotic effectiveness verdicts over the whole resistance profile
// of a run.

package amr

import (
	"math/rand"
	"sort"
	"strings"
)

// Rationale strings are stable so reports and tests can key off them.
const (
	RationaleNoMarkers = "No resistance markers detected for this antibiotic"
	RationaleLow       = "Low-level resistance detected, may still be effective at higher doses"
	RationaleMedium    = "Moderate resistance detected, limited effectiveness likely"
	RationaleHigh      = "High-level resistance detected, unlikely to be effective"
)

// Engine turns resistance records into roster-wide recommendations.
type Engine struct {
	rng *rand.Rand
}

// NewEngine builds an engine around the given random source; nil gets the
// fixed default seed.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &Engine{rng: rng}
}

// Recommend evaluates every roster antibiotic against the worst resistance
// level observed for it. The output always has exactly one entry per
// roster antibiotic, sorted effective-first then by descending confidence.
// Empty input marks the whole roster effective.
func (e *Engine) Recommend(records []ResistanceRecord) []Recommendation {

	// Worst (highest-rank) level wins per antibiotic, matched
	// case-insensitively.
	worst := make(map[string]ResistanceLevel, len(records))
	for _, r := range records {
		key := strings.ToLower(r.Antibiotic)
		if r.ResistanceLevel.Rank() > worst[key].Rank() {
			worst[key] = r.ResistanceLevel
		}
	}

	recommendations := make([]Recommendation, 0, len(Roster))

	for _, antibiotic := range Roster {
		level, found := worst[strings.ToLower(antibiotic)]

		var rec Recommendation
		rec.Antibiotic = antibiotic

		switch {
		case !found:
			rec.Effective = true
			rec.Confidence = uniform(e.rng, 0.75, 0.95)
			rec.Rationale = RationaleNoMarkers
		case level == LevelLow:
			rec.Effective = e.rng.Float64() > 0.3 // 70% chance still effective
			rec.Confidence = uniform(e.rng, 0.60, 0.80)
			rec.Rationale = RationaleLow
		case level == LevelMedium:
			rec.Effective = e.rng.Float64() > 0.7 // 30% chance still effective
			rec.Confidence = uniform(e.rng, 0.70, 0.85)
			rec.Rationale = RationaleMedium
		default: // high: never effective, no randomness in the verdict
			rec.Effective = false
			rec.Confidence = uniform(e.rng, 0.85, 0.98)
			rec.Rationale = RationaleHigh
		}

		recommendations = append(recommendations, rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Effective != recommendations[j].Effective {
			return recommendations[i].Effective
		}
		return recommendations[i].Confidence > recommendations[j].Confidence
	})

	return recommendations
}
