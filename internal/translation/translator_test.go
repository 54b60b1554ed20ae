package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/enaizabil/Proyecto-Deportivo/internal/capability"
	"github.com/enaizabil/Proyecto-Deportivo/internal/testutil"
)

type mockDirect struct {
	result string
	err    error
	calls  int
}

func (m *mockDirect) Translate(text, targetLang string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

func TestTranslate_EmptyInput(t *testing.T) {
	direct := &mockDirect{result: "should not be used"}
	aiClient := &testutil.MockAIClient{Response: "should not be used"}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: true}, aiClient)
	tr.direct = direct

	for _, input := range []string{"", "   ", "\n\t"} {
		if got := tr.Translate(context.Background(), input); got != "" {
			t.Errorf("Translate(%q) = %q, want empty string", input, got)
		}
	}

	if direct.calls != 0 {
		t.Errorf("Direct backend called %d times for blank input", direct.calls)
	}
	if len(aiClient.Calls) != 0 {
		t.Errorf("AI backend called %d times for blank input", len(aiClient.Calls))
	}
}

func TestTranslate_DirectSuccess(t *testing.T) {
	direct := &mockDirect{result: "El Arsenal es un club de fútbol."}
	aiClient := &testutil.MockAIClient{Response: "unused"}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: true}, aiClient)
	tr.direct = direct

	got := tr.Translate(context.Background(), "Arsenal is a football club.")
	if got != "El Arsenal es un club de fútbol." {
		t.Errorf("Unexpected translation: %q", got)
	}
	if len(aiClient.Calls) != 0 {
		t.Error("AI backend should not be called when direct translation succeeds")
	}
}

func TestTranslate_FallsBackToAI(t *testing.T) {
	direct := &mockDirect{err: errors.New("service unavailable")}
	aiClient := &testutil.MockAIClient{Response: "El Arsenal es un club de fútbol."}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: true}, aiClient)
	tr.direct = direct

	got := tr.Translate(context.Background(), "Arsenal is a football club.")
	if got != "El Arsenal es un club de fútbol." {
		t.Errorf("Unexpected translation: %q", got)
	}

	if len(aiClient.Calls) != 1 {
		t.Fatalf("Expected 1 AI call, got %d", len(aiClient.Calls))
	}
	req := aiClient.Calls[0]
	if req.Temperature != 0.0 {
		t.Errorf("Expected temperature 0.0, got %v", req.Temperature)
	}
	if req.MaxTokens != aiTranslationMaxTokens {
		t.Errorf("Expected max tokens %d, got %d", aiTranslationMaxTokens, req.MaxTokens)
	}
}

func TestTranslate_DirectEmptyResultFallsBack(t *testing.T) {
	direct := &mockDirect{result: ""}
	aiClient := &testutil.MockAIClient{Response: "El Arsenal es un club de fútbol."}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: true}, aiClient)
	tr.direct = direct

	got := tr.Translate(context.Background(), "Arsenal is a football club.")
	if got != "El Arsenal es un club de fútbol." {
		t.Errorf("Expected AI fallback when direct returns no text, got %q", got)
	}
	if direct.calls != 1 {
		t.Errorf("Expected 1 direct attempt, got %d", direct.calls)
	}
	if len(aiClient.Calls) != 1 {
		t.Errorf("Expected 1 AI call, got %d", len(aiClient.Calls))
	}
}

func TestTranslate_IdentityWhenEverythingFails(t *testing.T) {
	direct := &mockDirect{err: errors.New("service unavailable")}
	aiClient := &testutil.MockAIClient{Err: errors.New("quota exceeded")}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: true}, aiClient)
	tr.direct = direct

	input := "Arsenal is a football club."
	if got := tr.Translate(context.Background(), input); got != input {
		t.Errorf("Expected original text back, got %q", got)
	}
}

func TestTranslate_IdentityWhenNothingAvailable(t *testing.T) {
	tr := NewTranslator(capability.Flags{}, nil)

	input := "Arsenal is a football club."
	if got := tr.Translate(context.Background(), input); got != input {
		t.Errorf("Expected original text back, got %q", got)
	}
}

func TestTranslate_AIDisabledByFlag(t *testing.T) {
	direct := &mockDirect{err: errors.New("service unavailable")}
	aiClient := &testutil.MockAIClient{Response: "should not be used"}
	tr := NewTranslator(capability.Flags{DirectTranslation: true, AI: false}, aiClient)
	tr.direct = direct

	input := "Arsenal is a football club."
	if got := tr.Translate(context.Background(), input); got != input {
		t.Errorf("Expected original text back, got %q", got)
	}
	if len(aiClient.Calls) != 0 {
		t.Error("AI backend must not be called when the AI flag is off")
	}
}
