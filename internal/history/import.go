package history

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/password"
)

// Import reads records from a JSON or CSV file and appends them to the store.
// Returns the number of records appended.
//
// JSON files must hold a top-level array; every element is appended and the
// count equals the array length. A malformed element fails the whole call
// and appends nothing. CSV rows are imported individually: a row
// without a password is skipped, a missing timestamp defaults to now, a
// missing criteria column yields zero-value criteria, and a criteria cell
// that is present but not valid JSON skips that row.
func (s *Store) Import(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, errors.NewFileNotFound(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.NewInternal(fmt.Errorf("failed to read import file: %w", err))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.importJSON(data)
	case ".csv":
		return s.importCSV(data)
	default:
		return 0, errors.NewInvalidFormat(fmt.Sprintf("unsupported file format: %q", filepath.Ext(path)))
	}
}

func (s *Store) importJSON(data []byte) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('[') {
		return 0, errors.NewInvalidFormat("invalid JSON format: top-level value must be an array")
	}

	// The whole array must parse before the store is touched; a malformed
	// element must not leave a partial import behind.
	var records []Record
	for dec.More() {
		var r Record
		if err := dec.Decode(&r); err != nil {
			return 0, errors.NewInvalidFormat(fmt.Sprintf("invalid JSON record: %v", err))
		}
		records = append(records, r)
	}
	for _, r := range records {
		s.Append(r)
	}
	return len(records), nil
}

func (s *Store) importCSV(data []byte) (int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, errors.NewInvalidFormat(fmt.Sprintf("invalid CSV: %v", err))
	}
	if len(rows) == 0 {
		return 0, nil
	}

	// Header row maps column names to positions; files from other tools may
	// order or omit columns.
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	count := 0
	for _, row := range rows[1:] {
		pw, ok := cell(row, "password")
		if !ok || pw == "" {
			continue
		}

		r := Record{Password: pw}

		if ts, ok := cell(row, "timestamp"); ok && ts != "" {
			r.Timestamp = ts
		} else {
			r.Timestamp = time.Now().Format(time.RFC3339)
		}

		if raw, ok := cell(row, "criteria"); ok {
			var c password.Criteria
			if err := json.Unmarshal([]byte(raw), &c); err != nil {
				continue
			}
			r.Criteria = c
		}

		s.Append(r)
		count++
	}
	return count, nil
}
