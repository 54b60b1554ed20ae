package cli

import (
	"time"

	"github.com/enaizabil/Proyecto-Deportivo/internal/export"
)

// Flags holds all command-line flag values
type Flags struct {
	CfgFile    string
	OutputPath string
	BaseURL    string
	Delay      time.Duration
	WordLimit  int
	ListModels bool

	// NoDirectTranslation turns off the credential-free Google backend,
	// forcing the AI fallback (or the untranslated text).
	NoDirectTranslation bool

	OpenAIModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputPath: export.DefaultPath,
		Delay:      500 * time.Millisecond,
		WordLimit:  50,
	}
}
