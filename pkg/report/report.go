// Package report turns an analysis payload into a narrative clinical
// summary. The AI backend is optional; a deterministic templated fallback
// always exists and any provider failure degrades to it.
package report

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/genehack/genehack-amr/logger"
	"github.com/genehack/genehack-amr/pkg/amr"
)

// ErrProvider wraps failures of the external generation backend.
var ErrProvider = errors.New("report provider error")

// ProviderError carries context about a failed backend call.
type ProviderError struct {
	Backend string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("report provider %s: %v", e.Backend, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// Payload is the JSON context handed to a generator: the pipeline output
// minus proteins, which the report does not narrate.
type Payload struct {
	Genes           []amr.Gene             `json:"genes"`
	Resistance      []amr.ResistanceRecord `json:"resistance"`
	Recommendations []amr.Recommendation   `json:"recommendations"`
}

// Generator produces a narrative report from a payload.
type Generator interface {
	Generate(ctx context.Context, payload Payload) (string, error)
}

// WithFallback wraps a primary generator so that any failure falls back to
// the deterministic templated report. The fallback is mandatory: a
// provider error never reaches the user as a hard failure.
type WithFallback struct {
	Primary  Generator
	Fallback *BasicGenerator
}

// NewWithFallback builds the standard composite. A nil primary means the
// fallback is used directly.
func NewWithFallback(primary Generator) *WithFallback {
	return &WithFallback{
		Primary:  primary,
		Fallback: NewBasicGenerator(),
	}
}

func (g *WithFallback) Generate(ctx context.Context, payload Payload) (string, error) {

	if g.Primary != nil {
		summary, err := g.Primary.Generate(ctx, payload)
		if err == nil {
			return summary, nil
		}
		logger.Warn("Report backend failed, using templated fallback", zap.Error(err))
	}

	return g.Fallback.Generate(ctx, payload)
}
