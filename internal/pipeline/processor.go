package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/enaizabil/Proyecto-Deportivo/internal/sportsdb"
)

// DefaultDelay paces successive API lookups.
const DefaultDelay = 500 * time.Millisecond

// Fetcher looks up one team by name.
type Fetcher interface {
	SearchTeam(ctx context.Context, name string) (*sportsdb.Team, error)
}

// Translator translates English text to Spanish, best effort.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// Summarizer produces a bounded-length Spanish summary, best effort.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Processor runs the per-team pipeline.
type Processor struct {
	fetcher    Fetcher
	translator Translator
	summarizer Summarizer
	delay      time.Duration
	sleep      func(time.Duration)
}

// NewProcessor creates a new pipeline processor. A non-positive delay
// selects DefaultDelay.
func NewProcessor(fetcher Fetcher, translator Translator, summarizer Summarizer, delay time.Duration) *Processor {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Processor{
		fetcher:    fetcher,
		translator: translator,
		summarizer: summarizer,
		delay:      delay,
		sleep:      time.Sleep,
	}
}

// Process runs every team name through the pipeline and returns the records
// for the teams that made it through, in input order. Skips are logged, not
// returned.
func (p *Processor) Process(ctx context.Context, teams []string) []TeamRecord {
	var records []TeamRecord
	skipped := 0

	for i, name := range teams {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(teams), name)

		team, err := p.fetcher.SearchTeam(ctx, name)
		if err != nil {
			skipped++
			switch {
			case errors.Is(err, sportsdb.ErrTeamNotFound):
				fmt.Printf("No data for team '%s'. Skipping.\n", name)
			case errors.Is(err, sportsdb.ErrNoDescription):
				fmt.Printf("Team '%s' has no English description. Skipping.\n", name)
			default:
				fmt.Fprintf(os.Stderr, "Error processing team '%s': %v\n", name, err)
			}
			continue
		}

		descriptionES := p.translator.Translate(ctx, team.DescriptionEN)
		summaryText := p.summarizer.Summarize(ctx, descriptionES)

		records = append(records, TeamRecord{
			Name:          team.Name,
			Sport:         team.Sport,
			League:        team.League,
			FormedYear:    team.FormedYear,
			Stadium:       team.Stadium,
			DescriptionES: descriptionES,
			Summary:       summaryText,
		})

		// pace the API; skipped teams already paid the request latency
		p.sleep(p.delay)
	}

	fmt.Printf("\n=== Processing Summary ===\n")
	fmt.Printf("Total teams: %d\n", len(teams))
	fmt.Printf("Processed: %d\n", len(records))
	if skipped > 0 {
		fmt.Printf("Skipped: %d\n", skipped)
	}
	fmt.Printf("==========================\n")

	return records
}
