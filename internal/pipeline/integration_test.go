package pipeline_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/enaizabil/Proyecto-Deportivo/internal/capability"
	"github.com/enaizabil/Proyecto-Deportivo/internal/export"
	"github.com/enaizabil/Proyecto-Deportivo/internal/pipeline"
	"github.com/enaizabil/Proyecto-Deportivo/internal/sportsdb"
	"github.com/enaizabil/Proyecto-Deportivo/internal/summary"
	"github.com/enaizabil/Proyecto-Deportivo/internal/testutil"
	"github.com/enaizabil/Proyecto-Deportivo/internal/translation"
)

const arsenalDescription = "Arsenal Football Club is a professional football club based in Islington, London. " +
	"The club plays in the Premier League, the top flight of English football. " +
	"Arsenal has won thirteen league titles and a record fourteen FA Cups. " +
	"The club was founded in 1886 by munitions workers in Woolwich. " +
	"Since 2006 the team has played its home games at the Emirates Stadium."

// newOfflinePipeline wires the real components with every optional backend
// off: translation is the identity, summaries come from TextRank.
func newOfflinePipeline(t *testing.T, responses map[string]string) *pipeline.Processor {
	t.Helper()

	server := testutil.NewSportsDBServer(t, responses)
	caps := capability.Flags{}
	fetcher := sportsdb.NewClient(server.URL)
	translator := translation.NewTranslator(caps, nil)
	summarizer := summary.NewSummarizer(caps, nil, 50)

	return pipeline.NewProcessor(fetcher, translator, summarizer, time.Millisecond)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	return rows
}

func TestEndToEnd_SingleTeam(t *testing.T) {
	p := newOfflinePipeline(t, map[string]string{
		"Arsenal": testutil.TeamJSON("Arsenal", "Soccer", "English Premier League",
			"1886", "Emirates Stadium", arsenalDescription),
	})

	records := p.Process(context.Background(), []string{"Arsenal"})

	path := filepath.Join(t.TempDir(), "teams_list.csv")
	if err := export.SaveCSV(records, path); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d rows", len(rows))
	}

	row := rows[1]
	if row[0] != "Arsenal" {
		t.Errorf("Equipo = %s, want Arsenal", row[0])
	}
	if row[1] != "Soccer" {
		t.Errorf("Deporte = %s, want Soccer", row[1])
	}

	resumen := row[6]
	if resumen == "" || resumen == summary.NoSummaryAvailable {
		t.Errorf("Expected a real summary, got %q", resumen)
	}
	if words := len(strings.Fields(resumen)); words > 50 {
		t.Errorf("Resumen has %d words, cap is 50", words)
	}
}

func TestEndToEnd_SecondTeamMissing(t *testing.T) {
	p := newOfflinePipeline(t, map[string]string{
		"Arsenal": testutil.TeamJSON("Arsenal", "Soccer", "English Premier League",
			"1886", "Emirates Stadium", arsenalDescription),
		// "Ghost FC" is absent: the server answers with no match
	})

	records := p.Process(context.Background(), []string{"Arsenal", "Ghost FC"})

	path := filepath.Join(t.TempDir(), "teams_list.csv")
	if err := export.SaveCSV(records, path); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d rows", len(rows))
	}
}

func TestEndToEnd_Idempotent(t *testing.T) {
	responses := map[string]string{
		"Arsenal": testutil.TeamJSON("Arsenal", "Soccer", "English Premier League",
			"1886", "Emirates Stadium", arsenalDescription),
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "teams_list.csv")

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		p := newOfflinePipeline(t, responses)
		records := p.Process(context.Background(), []string{"Arsenal"})
		if err := export.SaveCSV(records, path); err != nil {
			t.Fatalf("Run %d: SaveCSV failed: %v", i+1, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Run %d: failed to read output: %v", i+1, err)
		}
		outputs = append(outputs, data)
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("Two runs with identical backends must produce identical files")
	}
}
