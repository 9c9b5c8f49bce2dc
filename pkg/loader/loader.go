package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

var requiredColumns = []string{"comment_id", "username", "comment_text"}

// Load reads and validates the input batch. Every error here is fatal to the
// whole run: a structurally invalid input must not silently produce a
// misleading report.
func Load(path string) ([]types.Comment, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file not found: %s", path)
	}

	var comments []types.Comment
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		comments, err = loadCSV(path)
	case ".json":
		comments, err = loadJSON(path)
	default:
		return nil, errors.New("unsupported file format, please use CSV or JSON")
	}
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		return nil, errors.New("input file is empty")
	}
	return comments, nil
}

func loadCSV(path string) ([]types.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("input file is empty")
	}

	index := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		index[strings.TrimSpace(col)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	comments := make([]types.Comment, 0, len(rows)-1)
	for _, row := range rows[1:] {
		comments = append(comments, types.Comment{
			CommentID:   row[index["comment_id"]],
			Username:    row[index["username"]],
			CommentText: row[index["comment_text"]],
		})
	}
	return comments, nil
}

func loadJSON(path string) ([]types.Comment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	// Decode loosely first so absent keys can be told apart from empty values.
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	missing := make(map[string]struct{})
	for _, obj := range raw {
		for _, col := range requiredColumns {
			if _, ok := obj[col]; !ok {
				missing[col] = struct{}{}
			}
		}
	}
	if len(missing) > 0 {
		var cols []string
		for _, col := range requiredColumns {
			if _, ok := missing[col]; ok {
				cols = append(cols, col)
			}
		}
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(cols, ", "))
	}

	var comments []types.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return comments, nil
}
