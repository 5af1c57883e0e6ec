// OpenAI-backed report generation.

package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Model used for all completion calls.
const openaiModel = openai.GPT4o

// OpenAIGenerator produces narrative reports through the OpenAI chat
// completion API.
type OpenAIGenerator struct {
	client    *openai.Client
	maxTokens int
}

// NewOpenAIGenerator builds a generator for the given API key. An empty
// key returns nil, which callers should treat as "fallback only".
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	if apiKey == "" {
		return nil
	}
	return &OpenAIGenerator{
		client:    openai.NewClient(apiKey),
		maxTokens: 800,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, payload Payload) (string, error) {

	prompt, err := buildReportPrompt(payload)
	if err != nil {
		return "", &ProviderError{Backend: "openai", Err: err}
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openaiModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", &ProviderError{Backend: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Backend: "openai", Err: fmt.Errorf("empty completion response")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildReportPrompt(payload Payload) (string, error) {

	genesJSON, err := json.MarshalIndent(payload.Genes, "", "  ")
	if err != nil {
		return "", err
	}
	resistanceJSON, err := json.MarshalIndent(payload.Resistance, "", "  ")
	if err != nil {
		return "", err
	}

	// Only the top effective recommendations go into the prompt; the model
	// does not need the whole roster.
	var effective []any
	for _, rec := range payload.Recommendations {
		if rec.Effective && len(effective) < 5 {
			effective = append(effective, rec)
		}
	}
	effectiveJSON, err := json.MarshalIndent(effective, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Please provide a concise summary report of antimicrobial resistance analysis results. Here's the data:

GENES IDENTIFIED (%d):
%s

RESISTANCE PROFILE (%d):
%s

ANTIBIOTIC RECOMMENDATIONS:
%s

Format the response as a professional clinical microbiology report with these sections:
1. A brief overview of what was found
2. Key resistance genes and their significance
3. Resistance mechanisms identified
4. Antibiotic susceptibility summary
5. Treatment recommendations

Keep the language technical but accessible to healthcare professionals.`,
		len(payload.Genes), genesJSON, len(payload.Resistance), resistanceJSON, effectiveJSON), nil
}
