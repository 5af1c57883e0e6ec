// Deterministic simulated searcher, used when no local BLAST database is
// configured. Hit shapes mimic real alignments closely enough for the
// downstream grouping and effectiveness prediction to exercise the same
// code paths.

package blast

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

type simGene struct {
	name        string
	description string
	protein     string
}

var simGenes = []simGene{
	{"mecA", "Methicillin resistance gene in Staphylococcus aureus", "Penicillin-binding protein PBP2a"},
	{"vanA", "Vancomycin resistance gene cluster", "D-alanine--D-lactate ligase VanA"},
	{"tetM", "Tetracycline resistance determinant", "Tetracycline resistance protein TetM"},
	{"blaTEM", "Beta-lactamase TEM family", "Beta-lactamase TEM-1"},
	{"blaCTX-M", "Extended-spectrum beta-lactamase CTX-M family", "Beta-lactamase CTX-M-15"},
	{"blaKPC", "Klebsiella pneumoniae carbapenemase", "Beta-lactamase KPC-2"},
	{"blaNDM", "New Delhi metallo-beta-lactamase", "Metallo-beta-lactamase NDM-1"},
	{"qnrS", "Quinolone resistance gene", "Quinolone resistance protein QnrS"},
	{"aac(6')-Ib-cr", "Aminoglycoside acetyltransferase variant", "Aminoglycoside 6'-N-acetyltransferase"},
	{"sul1", "Sulfonamide resistance gene", "Dihydropteroate synthase Sul1"},
	{"dfrA", "Dihydrofolate reductase, trimethoprim resistance", "Dihydrofolate reductase DfrA"},
	{"erm(B)", "Erythromycin ribosome methylase", "rRNA adenine N-6-methyltransferase"},
}

// SimulatedSearcher fabricates plausible hits from a fixed gene pool using
// an injected random source.
type SimulatedSearcher struct {
	rng *rand.Rand
}

// NewSimulatedSearcher builds a simulated searcher; a nil rng gets a fixed
// seed so results are reproducible.
func NewSimulatedSearcher(rng *rand.Rand) *SimulatedSearcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SimulatedSearcher{rng: rng}
}

func (s *SimulatedSearcher) Search(_ context.Context, sequence string) ([]Hit, error) {

	numHits := 3 + s.rng.Intn(5)
	hits := make([]Hit, 0, numHits)

	for i := 0; i < numHits; i++ {
		gene := simGenes[s.rng.Intn(len(simGenes))]

		maxStart := len(sequence) - 300
		if maxStart < 1 {
			maxStart = 1
		}
		queryStart := 1 + s.rng.Intn(maxStart)
		queryLen := 100 + s.rng.Intn(201)
		queryEnd := queryStart + queryLen
		if queryEnd > len(sequence) {
			queryEnd = len(sequence)
		}

		var querySeq string
		if queryStart-1 < len(sequence) {
			querySeq = sequence[queryStart-1 : queryEnd]
		}

		identity := 0.75 + s.rng.Float64()*0.24

		// Introduce mismatches at a rate matching the drawn identity.
		var match, subject strings.Builder
		for j := 0; j < len(querySeq); j++ {
			base := querySeq[j]
			if s.rng.Float64() < identity {
				subject.WriteByte(base)
				match.WriteByte('|')
			} else {
				subject.WriteByte(mutate(base, s.rng))
				match.WriteByte(' ')
			}
		}

		eValue := math.Pow(10, -(5 + s.rng.Float64()*45))

		hits = append(hits, Hit{
			Title:      fmt.Sprintf("%s - %s [%s]", gene.name, gene.description, gene.protein),
			Accession:  fmt.Sprintf("AMR_%s_%d", gene.name, 1000+s.rng.Intn(9000)),
			Length:     len(querySeq),
			EValue:     eValue,
			Identity:   identity,
			Score:      200 + s.rng.Intn(801),
			QueryStart: queryStart,
			QueryEnd:   queryEnd,
			SbjctStart: 1 + s.rng.Intn(100),
			SbjctEnd:   101 + s.rng.Intn(400),
			Alignment:  match.String(),
			Query:      querySeq,
			Sbjct:      subject.String(),
		})
	}

	return hits, nil
}

func mutate(base byte, rng *rand.Rand) byte {
	const bases = "ATGC"
	for {
		b := bases[rng.Intn(len(bases))]
		if b != base {
			return b
		}
	}
}
