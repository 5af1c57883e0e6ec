// Grouping of raw hits into antibiotic classes plus identity-threshold
// effectiveness prediction. This is the alternate, provider-backed path to
// an effectiveness verdict, parallel to the signature pipeline.

package blast

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// classPrefixes maps antibiotic-class keys to the gene-name prefixes that
// place a hit in that class.
var classPrefixes = map[string][]string{
	"beta_lactams":    {"blaTEM", "blaCTX-M", "blaKPC", "blaNDM"},
	"glycopeptides":   {"vanA", "vanB"},
	"tetracyclines":   {"tetM", "tetO", "tetK"},
	"macrolides":      {"erm", "mef"},
	"aminoglycosides": {"aac", "aad", "aph"},
	"quinolones":      {"qnr", "oqx"},
	"sulfonamides":    {"sul"},
	"trimethoprim":    {"dfr"},
	"phenicols":       {"cat", "flo"},
}

// antibioticClass maps each evaluated antibiotic to its class key.
var antibioticClass = map[string]string{
	"Penicillin": "beta_lactams", "Ampicillin": "beta_lactams", "Amoxicillin": "beta_lactams",
	"Methicillin": "beta_lactams", "Oxacillin": "beta_lactams", "Cefazolin": "beta_lactams",
	"Ceftriaxone": "beta_lactams", "Ceftazidime": "beta_lactams", "Cefepime": "beta_lactams",
	"Imipenem": "beta_lactams", "Meropenem": "beta_lactams", "Aztreonam": "beta_lactams",
	"Vancomycin": "glycopeptides", "Teicoplanin": "glycopeptides",
	"Tetracycline": "tetracyclines", "Doxycycline": "tetracyclines",
	"Minocycline": "tetracyclines", "Tigecycline": "tetracyclines",
	"Erythromycin": "macrolides", "Azithromycin": "macrolides", "Clarithromycin": "macrolides",
	"Gentamicin": "aminoglycosides", "Tobramycin": "aminoglycosides", "Amikacin": "aminoglycosides",
	"Ciprofloxacin": "quinolones", "Levofloxacin": "quinolones", "Moxifloxacin": "quinolones",
	"Trimethoprim": "trimethoprim", "Sulfamethoxazole": "sulfonamides",
	"Chloramphenicol": "phenicols", "Colistin": "polymyxins", "Linezolid": "oxazolidinones",
	"Daptomycin": "lipopeptides", "Clindamycin": "lincosamides",
}

// Effectiveness is the provider-path verdict for one antibiotic.
type Effectiveness struct {
	Effective  bool    `json:"effective"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// SearchResult is the full provider-path output for one sequence.
type SearchResult struct {
	SequenceName   string                   `json:"sequence_name"`
	SequenceLength int                      `json:"sequence_length"`
	TotalHits      int                      `json:"total_hits"`
	HitsByClass    map[string][]Hit         `json:"hits_by_class"`
	AllHits        []Hit                    `json:"all_hits"`
	Effectiveness  map[string]Effectiveness `json:"antibiotic_effectiveness"`
}

// SearchAMR runs the given searcher over the sequence, groups hits by
// antibiotic class and predicts per-antibiotic effectiveness.
func SearchAMR(ctx context.Context, searcher Searcher, sequence, sequenceName string, rng *rand.Rand) (*SearchResult, error) {

	hits, err := searcher.Search(ctx, sequence)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	byClass := make(map[string][]Hit)
	for _, hit := range hits {
		title := strings.ToLower(hit.Title)
		class := "others"

	classify:
		for className, prefixes := range classPrefixes {
			for _, prefix := range prefixes {
				if strings.Contains(title, strings.ToLower(prefix)) {
					class = className
					break classify
				}
			}
		}

		byClass[class] = append(byClass[class], hit)
	}

	result := &SearchResult{
		SequenceName:   sequenceName,
		SequenceLength: len(sequence),
		TotalHits:      len(hits),
		HitsByClass:    byClass,
		AllHits:        hits,
	}
	result.Effectiveness = PredictEffectiveness(byClass, rng)

	return result, nil
}

// PredictEffectiveness scores each evaluated antibiotic from the best
// identity of the hits in its class. High identity means the resistance
// gene is almost certainly present.
func PredictEffectiveness(byClass map[string][]Hit, rng *rand.Rand) map[string]Effectiveness {

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	out := make(map[string]Effectiveness, len(antibioticClass))

	for antibiotic, class := range antibioticClass {
		hits := byClass[class]

		if len(hits) == 0 {
			out[antibiotic] = Effectiveness{
				Effective:  true,
				Confidence: round2(0.85 + rng.Float64()*0.10),
				Rationale:  "No " + class + " resistance genes detected",
			}
			continue
		}

		top := 0.0
		for _, hit := range hits {
			if hit.Identity > top {
				top = hit.Identity
			}
		}
		pct := int(math.Round(top * 100))

		switch {
		case top > 0.9:
			out[antibiotic] = Effectiveness{
				Effective:  false,
				Confidence: round2(math.Min(top, 0.95)),
				Rationale:  rationale("High", pct, class),
			}
		case top > 0.8:
			out[antibiotic] = Effectiveness{
				Effective:  false,
				Confidence: round2(math.Min(top*0.9, 0.9)),
				Rationale:  rationale("Moderate", pct, class),
			}
		default:
			out[antibiotic] = Effectiveness{
				Effective:  true,
				Confidence: round2(1 - top),
				Rationale:  rationale("Low", pct, class),
			}
		}
	}

	return out
}

func rationale(grade string, pct int, class string) string {
	return fmt.Sprintf("%s identity match (%d%%) to %s resistance gene", grade, pct, class)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
