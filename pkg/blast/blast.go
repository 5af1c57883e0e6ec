// Package blast provides a swappable gene-search provider returning a
// shared hit schema, so the analysis layer can run against a local BLAST
// installation or a deterministic simulation without caring which.
package blast

import "context"

// Hit is one alignment hit. All providers emit this schema.
type Hit struct {
	Title      string  `json:"title"`
	Accession  string  `json:"accession"`
	Length     int     `json:"length"`
	EValue     float64 `json:"e_value"`
	Identity   float64 `json:"identity"`
	Score      int     `json:"score"`
	QueryStart int     `json:"query_start"`
	QueryEnd   int     `json:"query_end"`
	SbjctStart int     `json:"sbjct_start"`
	SbjctEnd   int     `json:"sbjct_end"`
	Alignment  string  `json:"alignment,omitempty"`
	Query      string  `json:"query,omitempty"`
	Sbjct      string  `json:"sbjct,omitempty"`
}

// Searcher runs a nucleotide search and returns hits ordered by relevance.
type Searcher interface {
	Search(ctx context.Context, sequence string) ([]Hit, error)
}
