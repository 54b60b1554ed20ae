// Package export writes the assembled team records to a CSV file. The file
// is fully overwritten on each run and starts with a UTF-8 byte-order mark
// so spreadsheet tools pick up the accented characters.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enaizabil/Proyecto-Deportivo/internal/pipeline"
)

// DefaultPath is where the CSV lands when no output path is configured.
const DefaultPath = "data/teams_list.csv"

// utf8BOM marks the file as UTF-8 for spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// header holds the column names, in fixed order.
var header = []string{
	"Equipo",
	"Deporte",
	"Liga",
	"Año de fundación",
	"Estadio",
	"Descripción (es)",
	"Resumen",
}

// SaveCSV writes records to path, creating parent directories as needed.
// An empty record set writes nothing.
func SaveCSV(records []pipeline.TeamRecord, path string) error {
	if len(records) == 0 {
		fmt.Println("No rows to save.")
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Name,
			record.Sport,
			record.League,
			record.FormedYear,
			record.Stadium,
			record.DescriptionES,
			record.Summary,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}

	fmt.Printf("Saved CSV to %s (%d rows).\n", path, len(records))
	return nil
}
