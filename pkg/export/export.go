package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

var header = []string{
	"comment_id", "username", "comment_text",
	"is_offensive", "offense_type", "severity", "explanation",
}

// Basename strips the extension from the input path so callers can derive
// sibling output names like <base>_analyzed.csv.
func Basename(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
}

// WriteCSV writes one row per moderation record, field order matching the
// record shape.
func WriteCSV(path string, records types.RecordSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.CommentID,
			record.Username,
			record.CommentText,
			strconv.FormatBool(record.IsOffensive),
			record.OffenseType,
			strconv.Itoa(record.Severity),
			record.Explanation,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJSON writes the record set as an indented JSON array.
func WriteJSON(path string, records types.RecordSet) error {
	if records == nil {
		records = types.RecordSet{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
