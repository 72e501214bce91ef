package history

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/password"
)

func seededStore() *Store {
	store := NewStore()
	store.Append(Record{
		Password:  "XkT9#mQw$7Lz",
		Timestamp: "2026-08-31T10:00:00Z",
		Criteria:  password.Criteria{Length: 12, Uppercase: true, Numbers: true, Special: true},
	})
	store.Append(Record{
		Password:  "zkvmwhryanqp",
		Timestamp: "2026-08-31T10:00:01Z",
		Criteria:  password.Criteria{Length: 12},
	})
	return store
}

func TestExport_EmptyHistory(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := store.Export(FormatJSON, path)
	if err == nil {
		t.Fatal("expected error for empty history")
	}
	perr, ok := err.(*errors.Error)
	if !ok || perr.Code != errors.ErrEmptyHistory {
		t.Errorf("expected EMPTY_HISTORY, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("empty export must not write a file")
	}
}

func TestExport_JSON(t *testing.T) {
	store := seededStore()
	path := filepath.Join(t.TempDir(), "out.json")

	got, err := store.Export(FormatJSON, path)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	// Stable wire keys, no record IDs.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("len = %d, want 2", len(raw))
	}
	for _, key := range []string{"password", "timestamp", "criteria"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("missing key %q in %v", key, raw[0])
		}
	}
	if len(raw[0]) != 3 {
		t.Errorf("record has %d keys, want exactly 3: %v", len(raw[0]), raw[0])
	}
}

func TestExport_CSV(t *testing.T) {
	store := seededStore()
	path := filepath.Join(t.TempDir(), "out.csv")

	if _, err := store.Export(FormatCSV, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if strings.Join(rows[0], ",") != "password,timestamp,criteria" {
		t.Errorf("header = %v", rows[0])
	}

	// The criteria cell is embedded JSON and parses back.
	var c password.Criteria
	if err := json.Unmarshal([]byte(rows[1][2]), &c); err != nil {
		t.Fatalf("criteria cell is not JSON: %v", err)
	}
	if c.Length != 12 || !c.Special {
		t.Errorf("criteria round-trip mismatch: %+v", c)
	}
}

func TestExport_DefaultPath(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	store := seededStore()
	path, err := store.Export(FormatCSV, "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(path, "passwords_") || !strings.HasSuffix(path, ".csv") {
		t.Errorf("synthesized path = %q, want passwords_<timestamp>.csv", path)
	}
	if _, err := os.Stat(filepath.Join(tmp, path)); err != nil {
		t.Errorf("export file not written: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"Csv", FormatCSV, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
