// Deterministic templated report. This is the mandatory fallback when the
// AI backend is unavailable, and it reproduces the same section structure:
// overview, key genes, mechanisms, antibiotic summary, recommendations.

package report

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"text/template"

	"github.com/genehack/genehack-amr/pkg/amr"
)

var basicReportTemplate *template.Template

func init() {
	mainTmpl := `## Antimicrobial Resistance Analysis Summary

### Overview
- **Total AMR genes identified:** {{ len .Genes }}
- **Resistance mechanisms detected:** {{ .NumMechanisms }}
- **Antibiotics with detected resistance:** {{ len .ResistantAntibiotics }}

### Key Findings
{{ if .TopGenes }}
#### AMR Genes Detected
{{ range .TopGenes }}- **{{ .Name }}** (Confidence: {{ .Confidence }})
{{ end }}{{ if .MoreGenes }}- And {{ .MoreGenes }} more gene(s)
{{ end }}{{ end }}{{ if .Mechanisms }}
#### Resistance Profile
{{ range .Mechanisms }}- **{{ .Name }}**: {{ .Antibiotics }}
{{ end }}{{ end }}
### Treatment Recommendations
{{ if .EffectiveAntibiotics }}#### Potentially Effective Antibiotics
{{ .EffectiveAntibiotics }}
{{ else }}No effective antibiotics identified based on the resistance profile. Consider consulting an infectious disease specialist.
{{ end }}{{ if .ResistantSummary }}
#### Antibiotics with Detected Resistance
{{ .ResistantSummary }}
{{ end }}`

	basicReportTemplate = template.Must(template.New("basic_report").Parse(mainTmpl))
}

type mechanismGroup struct {
	Name        string
	Antibiotics string
}

type basicReportData struct {
	Genes                []amr.Gene
	TopGenes             []amr.Gene
	MoreGenes            int
	NumMechanisms        int
	Mechanisms           []mechanismGroup
	ResistantAntibiotics []string
	EffectiveAntibiotics string
	ResistantSummary     string
}

// BasicGenerator renders the templated fallback report. It is a pure
// function of the payload, so full test coverage needs no network.
type BasicGenerator struct{}

func NewBasicGenerator() *BasicGenerator {
	return &BasicGenerator{}
}

func (g *BasicGenerator) Generate(_ context.Context, payload Payload) (string, error) {

	data := buildReportData(payload)

	var buf bytes.Buffer
	if err := basicReportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func buildReportData(payload Payload) basicReportData {

	data := basicReportData{Genes: payload.Genes}

	// Top five genes, with a count of the rest.
	data.TopGenes = payload.Genes
	if len(data.TopGenes) > 5 {
		data.MoreGenes = len(data.TopGenes) - 5
		data.TopGenes = data.TopGenes[:5]
	}

	// Group resistant antibiotics by mechanism, keeping first-seen order.
	seenMech := make(map[string][]string)
	var mechOrder []string
	seenAbx := make(map[string]bool)

	for _, r := range payload.Resistance {
		mech := r.Mechanism
		if mech == "" {
			mech = "Unknown"
		}
		if _, ok := seenMech[mech]; !ok {
			mechOrder = append(mechOrder, mech)
		}
		seenMech[mech] = append(seenMech[mech], r.Antibiotic)

		if !seenAbx[r.Antibiotic] {
			seenAbx[r.Antibiotic] = true
			data.ResistantAntibiotics = append(data.ResistantAntibiotics, r.Antibiotic)
		}
	}
	data.NumMechanisms = len(mechOrder)

	for _, mech := range mechOrder {
		antibiotics := seenMech[mech]
		summary := strings.Join(truncate(antibiotics, 3), ", ")
		if len(antibiotics) > 3 {
			summary += " and " + strconv.Itoa(len(antibiotics)-3) + " more"
		}
		data.Mechanisms = append(data.Mechanisms, mechanismGroup{Name: mech, Antibiotics: summary})
	}

	var effective []string
	for _, rec := range payload.Recommendations {
		if rec.Effective {
			effective = append(effective, rec.Antibiotic)
		}
	}
	data.EffectiveAntibiotics = joinWithMore(effective, 7)
	data.ResistantSummary = joinWithMore(data.ResistantAntibiotics, 7)

	return data
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinWithMore(items []string, n int) string {
	if len(items) == 0 {
		return ""
	}
	out := strings.Join(truncate(items, n), ", ")
	if len(items) > n {
		out += " and " + strconv.Itoa(len(items)-n) + " more"
	}
	return out
}

