package ai

import "context"

// Request describes a single chat completion.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Client is a chat-completion backend. Implementations return the completion
// text with surrounding whitespace trimmed, or an error when the backend did
// not produce any text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// NewFromKeys selects a backend from the configured credentials: OpenAI when
// its key is set, otherwise Gemini, otherwise no client at all. It returns
// the client, the provider name for display, and an error when a configured
// backend could not be initialized.
func NewFromKeys(ctx context.Context, openAIKey, geminiKey, openAIModel string) (Client, string, error) {
	if openAIKey != "" {
		return NewOpenAIClient(openAIKey, openAIModel), "openai", nil
	}
	if geminiKey != "" {
		client, err := NewGeminiClient(ctx, geminiKey, "")
		if err != nil {
			return nil, "", err
		}
		return client, "gemini", nil
	}
	return nil, "none", nil
}
