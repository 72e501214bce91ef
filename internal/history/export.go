package history

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mzaglia/passmint/internal/errors"
)

// Format is a supported export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", errors.NewInvalidFormat(fmt.Sprintf("unsupported format type: %q", s))
	}
}

// csvHeader is the fixed column order for CSV files.
var csvHeader = []string{"password", "timestamp", "criteria"}

// Export writes the full record sequence to path and returns the path
// written. An empty path is synthesized as passwords_<timestamp>.<ext> in the
// working directory. Exporting an empty store fails without touching the
// filesystem.
//
// JSON files hold an indented array of records. CSV files hold one row per
// record with the criteria cell serialized as embedded JSON, so the cell
// parses back losslessly on import.
func (s *Store) Export(format Format, path string) (string, error) {
	if len(s.records) == 0 {
		return "", errors.NewEmptyHistory()
	}

	if path == "" {
		path = fmt.Sprintf("passwords_%s.%s", time.Now().Format("20060102_150405"), format)
	}

	var data []byte
	switch format {
	case FormatJSON:
		var err error
		data, err = json.MarshalIndent(s.records, "", "  ")
		if err != nil {
			return "", errors.NewInternal(err)
		}
	case FormatCSV:
		var err error
		data, err = marshalCSV(s.records)
		if err != nil {
			return "", err
		}
	default:
		return "", errors.NewInvalidFormat(fmt.Sprintf("unsupported format type: %q", format))
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}
	return path, nil
}

// marshalCSV renders records as CSV with a header row.
func marshalCSV(records []Record) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.NewInternal(err)
	}
	for _, r := range records {
		criteria, err := json.Marshal(r.Criteria)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		if err := w.Write([]string{r.Password, r.Timestamp, string(criteria)}); err != nil {
			return nil, errors.NewInternal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return []byte(sb.String()), nil
}
