package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/enaizabil/Proyecto-Deportivo/internal/ai"
	"github.com/enaizabil/Proyecto-Deportivo/internal/capability"
)

const (
	// DefaultWordLimit caps the summary length in words.
	DefaultWordLimit = 50

	// NoSummaryAvailable is returned when no strategy produced any text.
	NoSummaryAvailable = "Resumen no disponible"

	aiSummaryMaxTokens   = 200
	aiSummaryTemperature = 0.2

	// sentences selected by the extractive fallback, independent of the
	// word limit
	extractSentenceCount = 4
)

// Summarizer produces Spanish summaries with a hard word cap.
type Summarizer struct {
	caps      capability.Flags
	ai        ai.Client
	wordLimit int
}

// NewSummarizer creates a new summarizer. aiClient may be nil when the AI
// capability flag is off. A non-positive wordLimit selects DefaultWordLimit.
func NewSummarizer(caps capability.Flags, aiClient ai.Client, wordLimit int) *Summarizer {
	if wordLimit <= 0 {
		wordLimit = DefaultWordLimit
	}
	return &Summarizer{
		caps:      caps,
		ai:        aiClient,
		wordLimit: wordLimit,
	}
}

// Summarize returns a summary of text in at most the configured number of
// words. It never fails; when both strategies come up empty it returns
// NoSummaryAvailable.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return NoSummaryAvailable
	}

	if s.caps.AI && s.ai != nil {
		summary, err := s.summarizeWithAI(ctx, text)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "AI summary failed, falling back to TextRank: %v\n", err)
		case summary == "":
			fmt.Fprintln(os.Stderr, "AI summary returned no text, falling back to TextRank.")
		default:
			return truncateWords(summary, s.wordLimit)
		}
	}

	summary, err := extractSummary(text, extractSentenceCount)
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "TextRank error: %v\n", err)
		}
		return NoSummaryAvailable
	}
	return truncateWords(summary, s.wordLimit)
}

func (s *Summarizer) summarizeWithAI(ctx context.Context, text string) (string, error) {
	return s.ai.Complete(ctx, ai.Request{
		System: "You are an assistant that generates concise summaries in Spanish. " +
			"Return only the summary text, without commentary.",
		User: fmt.Sprintf("Resume el siguiente texto en castellano en un máximo de %d palabras. "+
			"Devuélvelo solo como texto, sin títulos ni notas:\n\n%s", s.wordLimit, text),
		MaxTokens:   aiSummaryMaxTokens,
		Temperature: aiSummaryTemperature,
	})
}

// truncateWords enforces the word cap, appending an ellipsis marker when the
// text had to be cut. The AI is not guaranteed to respect the requested cap,
// so this runs on every summary regardless of its source.
func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.TrimSpace(text)
	}
	return strings.Join(words[:limit], " ") + "..."
}
