package amr

import "fmt"

// ResistanceLevel is the ordinal severity of a gene's effect on an
// antibiotic. The rank ordering (low < medium < high) drives aggregation
// in the recommendation engine.
type ResistanceLevel string

const (
	LevelLow    ResistanceLevel = "low"
	LevelMedium ResistanceLevel = "medium"
	LevelHigh   ResistanceLevel = "high"
)

// Rank returns the integer severity rank: low=1, medium=2, high=3.
// Unknown levels rank 0 so they never win aggregation.
func (l ResistanceLevel) Rank() int {
	switch l {
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	default:
		return 0
	}
}

// ParseLevel maps free text onto a ResistanceLevel.
func ParseLevel(s string) (ResistanceLevel, error) {
	switch ResistanceLevel(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return ResistanceLevel(s), nil
	default:
		return "", fmt.Errorf("unknown resistance level %q", s)
	}
}

// Gene is one detected (or synthesized) resistance-gene candidate. Offsets
// are 0-based half-open into the owning sequence.
type Gene struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SequenceName string  `json:"sequence_name"`
	StartPos     int     `json:"start_pos"`
	EndPos       int     `json:"end_pos"`
	Confidence   float64 `json:"confidence"`
	Sequence     string  `json:"sequence"`
}

// Protein is the translation of exactly one Gene.
type Protein struct {
	GeneID          string `json:"gene_id"`
	GeneName        string `json:"gene_name"`
	SequenceName    string `json:"sequence_name"`
	ProteinSequence string `json:"protein_sequence"`
	Length          int    `json:"length"`
}

// ResistanceRecord ties a gene to one antibiotic it degrades.
type ResistanceRecord struct {
	SequenceName    string          `json:"sequence_name"`
	GeneName        string          `json:"gene_name"`
	GeneID          string          `json:"gene_id"`
	Antibiotic      string          `json:"antibiotic"`
	ResistanceLevel ResistanceLevel `json:"resistance_level"`
	Mechanism       string          `json:"mechanism"`
	Confidence      float64         `json:"confidence"`
}

// Recommendation is the per-antibiotic verdict over the whole run.
type Recommendation struct {
	Antibiotic string  `json:"antibiotic"`
	Effective  bool    `json:"effective"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// Result is the full analysis payload for one run: the four collections
// the persistence and report layers consume.
type Result struct {
	Genes           []Gene             `json:"genes"`
	Proteins        []Protein          `json:"proteins"`
	ResistanceData  []ResistanceRecord `json:"resistance_data"`
	Recommendations []Recommendation   `json:"recommendations"`
	SkippedRecords  int                `json:"skipped_records,omitempty"`
}
