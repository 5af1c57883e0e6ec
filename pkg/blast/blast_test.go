package blast

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func testSequence() string {
	return strings.Repeat("ATGC", 300)
}

func TestSimulatedSearcherShape(t *testing.T) {

	searcher := NewSimulatedSearcher(nil)
	hits, err := searcher.Search(context.Background(), testSequence())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hits) < 3 || len(hits) > 7 {
		t.Fatalf("expected 3-7 hits, got %d", len(hits))
	}

	for i, hit := range hits {
		if hit.Title == "" || hit.Accession == "" {
			t.Fatalf("hit %d missing identity fields: %+v", i, hit)
		}
		if hit.Identity < 0.75 || hit.Identity > 0.99 {
			t.Fatalf("hit %d identity out of range: %v", i, hit.Identity)
		}
		if hit.QueryStart < 1 || hit.QueryEnd > len(testSequence()) {
			t.Fatalf("hit %d query span out of range: %d-%d", i, hit.QueryStart, hit.QueryEnd)
		}
		if len(hit.Query) != len(hit.Sbjct) || len(hit.Query) != len(hit.Alignment) {
			t.Fatalf("hit %d alignment strings disagree in length", i)
		}
	}
}

func TestSimulatedSearcherDeterministic(t *testing.T) {

	first, err := NewSimulatedSearcher(nil).Search(context.Background(), testSequence())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewSimulatedSearcher(nil).Search(context.Background(), testSequence())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("hit counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("hit %d differs between runs", i)
		}
	}
}

func TestSearchAMRGroupsByClass(t *testing.T) {

	result, err := SearchAMR(context.Background(), NewSimulatedSearcher(nil), testSequence(), "iso1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SequenceName != "iso1" {
		t.Fatalf("unexpected sequence name %q", result.SequenceName)
	}
	if result.SequenceLength != len(testSequence()) {
		t.Fatalf("unexpected sequence length %d", result.SequenceLength)
	}
	if result.TotalHits != len(result.AllHits) {
		t.Fatalf("total hits %d disagrees with hit list %d", result.TotalHits, len(result.AllHits))
	}

	grouped := 0
	for _, classHits := range result.HitsByClass {
		grouped += len(classHits)
	}
	if grouped != result.TotalHits {
		t.Fatalf("grouping lost hits: %d grouped of %d", grouped, result.TotalHits)
	}

	if len(result.Effectiveness) != len(antibioticClass) {
		t.Fatalf("expected a verdict per evaluated antibiotic, got %d", len(result.Effectiveness))
	}
}

func TestPredictEffectivenessThresholds(t *testing.T) {

	byClass := map[string][]Hit{
		"beta_lactams":  {{Identity: 0.95}},
		"glycopeptides": {{Identity: 0.85}},
		"tetracyclines": {{Identity: 0.60}, {Identity: 0.70}},
	}

	out := PredictEffectiveness(byClass, nil)

	if v := out["Ampicillin"]; v.Effective || !strings.HasPrefix(v.Rationale, "High identity match (95%)") {
		t.Fatalf("unexpected beta_lactams verdict: %+v", v)
	}
	if v := out["Vancomycin"]; v.Effective || !strings.HasPrefix(v.Rationale, "Moderate identity match (85%)") {
		t.Fatalf("unexpected glycopeptides verdict: %+v", v)
	}
	// Best identity of the class decides, not the first hit.
	if v := out["Tetracycline"]; !v.Effective || !strings.HasPrefix(v.Rationale, "Low identity match (70%)") {
		t.Fatalf("unexpected tetracyclines verdict: %+v", v)
	}
	// No hits in the class at all.
	if v := out["Linezolid"]; !v.Effective || !strings.Contains(v.Rationale, "No oxazolidinones resistance genes") {
		t.Fatalf("unexpected oxazolidinones verdict: %+v", v)
	}
}

func TestParseTabular(t *testing.T) {

	raw := strings.Join([]string{
		"NG_047937\tmecA methicillin resistance\t2007\t1e-50\t98.5\t850.2\t1\t500\t10\t510",
		"NG_048353\tvanA vancomycin resistance\t1029\t0.5\t80.0\t100.0\t1\t200\t1\t200",
		"",
	}, "\n")

	hits, err := parseTabular(bytes.NewBufferString(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second line is dropped by the e-value cutoff.
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}

	hit := hits[0]
	if hit.Accession != "NG_047937" || hit.Title != "mecA methicillin resistance" {
		t.Fatalf("unexpected hit identity: %+v", hit)
	}
	if hit.Length != 2007 || hit.Score != 850 {
		t.Fatalf("unexpected hit numbers: %+v", hit)
	}
	if hit.Identity != 0.985 {
		t.Fatalf("expected identity 0.985, got %v", hit.Identity)
	}
	if hit.QueryStart != 1 || hit.QueryEnd != 500 || hit.SbjctStart != 10 || hit.SbjctEnd != 510 {
		t.Fatalf("unexpected hit coordinates: %+v", hit)
	}
}

func TestParseTabularMalformed(t *testing.T) {
	if _, err := parseTabular(bytes.NewBufferString("only\tthree\tfields\n")); err == nil {
		t.Fatal("expected an error for malformed output")
	}
}

func TestNewLocalSearcherRequiresDatabase(t *testing.T) {
	if _, err := NewLocalSearcher(""); err != ErrNoDatabase {
		t.Fatalf("expected ErrNoDatabase, got %v", err)
	}
}
