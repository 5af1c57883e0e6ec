package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genehack/genehack-amr/pkg/amr"
)

func testPayload() Payload {
	return Payload{
		Genes: []amr.Gene{
			{ID: "AMR_1", Name: "mecA", SequenceName: "iso1", Confidence: 0.91},
			{ID: "AMR_2", Name: "vanA", SequenceName: "iso1", Confidence: 0.88},
		},
		Resistance: []amr.ResistanceRecord{
			{GeneName: "mecA", Antibiotic: "Methicillin", ResistanceLevel: amr.LevelHigh, Mechanism: "PBP2a production"},
			{GeneName: "mecA", Antibiotic: "Oxacillin", ResistanceLevel: amr.LevelHigh, Mechanism: "PBP2a production"},
			{GeneName: "vanA", Antibiotic: "Vancomycin", ResistanceLevel: amr.LevelHigh, Mechanism: "Cell wall target modification"},
		},
		Recommendations: []amr.Recommendation{
			{Antibiotic: "Linezolid", Effective: true, Confidence: 0.92, Rationale: amr.RationaleNoMarkers},
			{Antibiotic: "Daptomycin", Effective: true, Confidence: 0.85, Rationale: amr.RationaleNoMarkers},
			{Antibiotic: "Methicillin", Effective: false, Confidence: 0.95, Rationale: amr.RationaleHigh},
		},
	}
}

func TestBasicGeneratorSections(t *testing.T) {

	out, err := NewBasicGenerator().Generate(context.Background(), testPayload())
	require.NoError(t, err)

	require.Contains(t, out, "## Antimicrobial Resistance Analysis Summary")
	require.Contains(t, out, "**Total AMR genes identified:** 2")
	require.Contains(t, out, "**Resistance mechanisms detected:** 2")
	require.Contains(t, out, "**mecA** (Confidence: 0.91)")
	require.Contains(t, out, "**PBP2a production**: Methicillin, Oxacillin")
	require.Contains(t, out, "#### Potentially Effective Antibiotics")
	require.Contains(t, out, "Linezolid, Daptomycin")
	require.Contains(t, out, "#### Antibiotics with Detected Resistance")
}

func TestBasicGeneratorEmptyPayload(t *testing.T) {

	out, err := NewBasicGenerator().Generate(context.Background(), Payload{})
	require.NoError(t, err)

	require.Contains(t, out, "**Total AMR genes identified:** 0")
	require.Contains(t, out, "No effective antibiotics identified")
}

func TestBasicGeneratorTruncatesLongLists(t *testing.T) {

	payload := Payload{}
	for i := 0; i < 8; i++ {
		payload.Genes = append(payload.Genes, amr.Gene{Name: "gene", Confidence: 0.8})
	}

	out, err := NewBasicGenerator().Generate(context.Background(), payload)
	require.NoError(t, err)
	require.Contains(t, out, "And 3 more gene(s)")
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, Payload) (string, error) {
	return "", &ProviderError{Backend: "test", Err: errors.New("backend down")}
}

type cannedGenerator struct{ text string }

func (g cannedGenerator) Generate(context.Context, Payload) (string, error) {
	return g.text, nil
}

func TestWithFallbackUsesPrimary(t *testing.T) {

	g := NewWithFallback(cannedGenerator{text: "primary report"})
	out, err := g.Generate(context.Background(), testPayload())

	require.NoError(t, err)
	require.Equal(t, "primary report", out)
}

func TestWithFallbackDegradesOnFailure(t *testing.T) {

	g := NewWithFallback(failingGenerator{})
	out, err := g.Generate(context.Background(), testPayload())

	require.NoError(t, err)
	require.Contains(t, out, "## Antimicrobial Resistance Analysis Summary")
}

func TestWithFallbackNilPrimary(t *testing.T) {

	g := NewWithFallback(nil)
	out, err := g.Generate(context.Background(), testPayload())

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "## Antimicrobial Resistance Analysis Summary"))
}

func TestProviderErrorUnwraps(t *testing.T) {
	err := &ProviderError{Backend: "openai", Err: errors.New("boom")}
	require.ErrorIs(t, err, ErrProvider)
	require.Contains(t, err.Error(), "openai")
}
