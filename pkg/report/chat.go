// Chat assistant over the current analysis payload.

package report

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are GeneHack Assistant, an AI expert in antimicrobial resistance (AMR) genomics.
You analyze genetic data and provide insights on:
1. Gene functions and their role in antimicrobial resistance
2. Protein structures and their significance
3. Resistance mechanisms for different antibiotics
4. Interpretation of AMR analysis results
5. Potential research directions and clinical implications

Current analysis data will be provided in JSON format. Use this data when answering questions.
Keep your responses scientifically accurate but understandable to researchers and healthcare professionals.
If you're unsure about something, acknowledge the limitations rather than making up information.

For any clinical advice, emphasize that your suggestions are for research purposes only and should be
validated by proper clinical testing and medical professionals.`

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Suggestions bundles suggested questions and research directions for the
// current analysis.
type Suggestions struct {
	SuggestedQuestions []string `json:"suggested_questions"`
	ResearchDirections []string `json:"research_directions"`
}

// defaultSuggestions are served when no backend is configured or the
// backend call fails.
var defaultSuggestions = Suggestions{
	SuggestedQuestions: []string{
		"What are the most common resistance mechanisms in this sample?",
		"Which antibiotics should be avoided based on this analysis?",
		"What are the key resistance genes identified?",
		"How do these genes confer resistance?",
	},
	ResearchDirections: []string{
		"Investigate the prevalence of these resistance genes in your region",
		"Test alternative antibiotics not affected by these mechanisms",
		"Compare this resistance profile with clinical outcomes",
	},
}

// Assistant answers questions about an analysis. A nil client (no API key)
// degrades every call to its deterministic fallback.
type Assistant struct {
	client *openai.Client
}

// NewAssistant builds an assistant; an empty API key yields an assistant
// that only serves fallbacks.
func NewAssistant(apiKey string) *Assistant {
	a := &Assistant{}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// NewHistory starts a conversation containing only the system prompt.
func NewHistory() []Message {
	return []Message{{Role: openai.ChatMessageRoleSystem, Content: systemPrompt}}
}

// WithContext injects the analysis payload as a system message right after
// the initial prompt, replacing nothing, so the model always answers
// against the current run.
func WithContext(history []Message, payload Payload) ([]Message, error) {

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}

	contextMsg := Message{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf("Here is the current analysis data:\n```json\n%s\n```\nUse this information to answer the user's questions.", data),
	}

	if len(history) > 1 {
		out := make([]Message, 0, len(history)+1)
		out = append(out, history[0], contextMsg)
		out = append(out, history[1:]...)
		return out, nil
	}
	return append(history, contextMsg), nil
}

// Chat sends the user message and returns the assistant reply plus the
// updated history. Backend failures surface as a *ProviderError so the
// handler can report them without crashing the conversation.
func (a *Assistant) Chat(ctx context.Context, history []Message, userMessage string) (string, []Message, error) {

	history = append(history, Message{Role: openai.ChatMessageRoleUser, Content: userMessage})

	if a.client == nil {
		return "", history, &ProviderError{Backend: "openai", Err: fmt.Errorf("no API key configured")}
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openaiModel,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return "", history, &ProviderError{Backend: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", history, &ProviderError{Backend: "openai", Err: fmt.Errorf("empty completion response")}
	}

	reply := resp.Choices[0].Message.Content
	history = append(history, Message{Role: openai.ChatMessageRoleAssistant, Content: reply})

	return reply, history, nil
}

// Suggest returns suggested questions and research directions for the
// payload, falling back to a fixed set when the backend is unavailable.
func (a *Assistant) Suggest(ctx context.Context, payload Payload) Suggestions {

	if a.client == nil {
		return defaultSuggestions
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return defaultSuggestions
	}

	prompt := fmt.Sprintf(`Please analyze the following antimicrobial resistance data and generate:
1. Five suggested questions a researcher might want to ask about this data
2. Three potential research directions based on these results

Data:
`+"```json\n%s\n```"+`

Return your response in JSON format as follows:
{
    "suggested_questions": ["question1", "question2", ...],
    "research_directions": ["direction1", "direction2", ...]
}`, data)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openaiModel,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   800,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return defaultSuggestions
	}

	var suggestions Suggestions
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &suggestions); err != nil {
		return defaultSuggestions
	}

	return suggestions
}
