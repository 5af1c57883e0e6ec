// The analysis pipeline: detection, translation, resistance analysis and
// recommendation over validated input sequences.

package amr

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/genehack/genehack-amr/pkg/seq"
)

// RawSequenceName is the record name used when the caller pastes a bare
// sequence without naming it.
const RawSequenceName = "Raw_Sequence"

// Options configure a pipeline. The zero value is fully deterministic.
type Options struct {
	// Seed for the per-run random source. Ignored when Randomize is set.
	Seed int64
	// Randomize opts in to run-to-run variation of confidence scores and
	// low/medium effectiveness verdicts.
	Randomize bool
}

// Pipeline runs the full sequence-to-recommendation analysis. Each Run call
// gets its own random source, so a single Pipeline is safe for concurrent
// runs.
type Pipeline struct {
	opts Options
}

// NewPipeline builds a pipeline. A zero Options value uses the fixed
// default seed.
func NewPipeline(opts Options) *Pipeline {
	if !opts.Randomize && opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	return &Pipeline{opts: opts}
}

func (p *Pipeline) newRand() *rand.Rand {
	if p.opts.Randomize {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(p.opts.Seed))
}

// Run analyzes the given records, which must already be validated. Gene IDs
// are unique across the whole run, and the recommendation step sees the
// combined resistance profile of all records.
func (p *Pipeline) Run(records []seq.Record) (*Result, error) {

	rng := p.newRand()
	detector := NewDetector(rng)
	analyzer := NewAnalyzer(rng)
	engine := NewEngine(rng)

	result := &Result{
		Genes:          []Gene{},
		Proteins:       []Protein{},
		ResistanceData: []ResistanceRecord{},
	}

	for _, record := range records {
		genes := detector.Detect(record.Seq, record.Name)

		for _, gene := range genes {
			// Renumber so IDs stay unique when a run spans records.
			gene.ID = fmt.Sprintf("AMR_%d", len(result.Genes)+1)

			protein, err := seq.Translate(gene.Sequence)
			if err != nil {
				return nil, fmt.Errorf("translate gene %s: %w", gene.ID, err)
			}

			result.Genes = append(result.Genes, gene)
			result.Proteins = append(result.Proteins, Protein{
				GeneID:          gene.ID,
				GeneName:        gene.Name,
				SequenceName:    gene.SequenceName,
				ProteinSequence: protein,
				Length:          len(protein),
			})

			for _, r := range analyzer.Analyze(protein, gene.Name) {
				r.SequenceName = gene.SequenceName
				r.GeneID = gene.ID
				result.ResistanceData = append(result.ResistanceData, r)
			}
		}
	}

	result.Recommendations = engine.Recommend(result.ResistanceData)

	return result, nil
}

// RunRaw validates and analyzes a single pasted sequence. The name falls
// back to RawSequenceName when empty.
func (p *Pipeline) RunRaw(name, sequence string) (*Result, error) {

	cleaned := seq.Normalize(sequence)
	if !seq.Validate(cleaned) {
		return nil, fmt.Errorf("sequence contains characters outside A/T/G/C")
	}

	if name == "" {
		name = RawSequenceName
	}

	return p.Run([]seq.Record{{Name: name, Seq: cleaned}})
}

// RunFasta parses and analyzes FASTA text. Records dropped by validation
// are reported through Result.SkippedRecords.
func (p *Pipeline) RunFasta(text string) (*Result, error) {

	records, skipped, err := seq.ParseFasta(text)
	if err != nil {
		return nil, err
	}

	result, err := p.Run(records)
	if err != nil {
		return nil, err
	}
	result.SkippedRecords = skipped

	return result, nil
}
