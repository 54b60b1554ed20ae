package cli

import (
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags.OutputPath != "data/teams_list.csv" {
		t.Errorf("OutputPath = %v, want data/teams_list.csv", flags.OutputPath)
	}
	if flags.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, want 500ms", flags.Delay)
	}
	if flags.WordLimit != 50 {
		t.Errorf("WordLimit = %v, want 50", flags.WordLimit)
	}

	// Everything else defaults to its zero value
	if flags.CfgFile != "" || flags.BaseURL != "" || flags.OpenAIModel != "" {
		t.Error("Expected empty string defaults")
	}
	if flags.ListModels || flags.NoDirectTranslation {
		t.Error("Expected boolean flags to default to false")
	}
}
