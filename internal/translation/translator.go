package translation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bregydoc/gtranslate"

	"github.com/enaizabil/Proyecto-Deportivo/internal/ai"
	"github.com/enaizabil/Proyecto-Deportivo/internal/capability"
)

// DefaultTargetLanguage is the translation target for the pipeline.
const DefaultTargetLanguage = "es"

const aiTranslationMaxTokens = 400

// DirectBackend is a translation service that needs no credentials.
type DirectBackend interface {
	Translate(text, targetLang string) (string, error)
}

// googleBackend implements DirectBackend using the public Google Translate
// endpoint.
type googleBackend struct{}

func (googleBackend) Translate(text, targetLang string) (string, error) {
	return gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
		From: "en",
		To:   targetLang,
	})
}

// Translator translates English text to Spanish.
type Translator struct {
	caps   capability.Flags
	direct DirectBackend
	ai     ai.Client
}

// NewTranslator creates a new translator. aiClient may be nil when the AI
// capability flag is off.
func NewTranslator(caps capability.Flags, aiClient ai.Client) *Translator {
	return &Translator{
		caps:   caps,
		direct: googleBackend{},
		ai:     aiClient,
	}
}

// Translate translates text to Spanish. It never fails: when every backend
// is unavailable or errors out, the input is returned unchanged. Blank input
// short-circuits to an empty string without any backend call.
func (t *Translator) Translate(ctx context.Context, text string) string {
	return t.TranslateTo(ctx, text, DefaultTargetLanguage)
}

// TranslateTo is Translate with an explicit target language.
func (t *Translator) TranslateTo(ctx context.Context, text, targetLang string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if t.caps.DirectTranslation && t.direct != nil {
		translated, err := t.direct.Translate(text, targetLang)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "Direct translation failed: %v\n", err)
		case translated == "":
			fmt.Fprintln(os.Stderr, "Direct translation returned no text.")
		default:
			return translated
		}
	}

	if t.caps.AI && t.ai != nil {
		translated, err := t.ai.Complete(ctx, ai.Request{
			System:      "You are a translation assistant. Translate the provided English text to Spanish only.",
			User:        fmt.Sprintf("Traduce al español el siguiente texto (devuelve solo la traducción):\n\n%s", text),
			MaxTokens:   aiTranslationMaxTokens,
			Temperature: 0.0,
		})
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "AI translation failed: %v\n", err)
		case translated == "":
			fmt.Fprintln(os.Stderr, "AI translation returned no text.")
		default:
			return translated
		}
	}

	fmt.Println("No translation available, returning original English text.")
	return text
}
