package ops

import (
	"github.com/mzaglia/passmint/internal/history"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Format string // "json" or "csv"
	Path   string // optional, default: passwords_<timestamp>.<ext>
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Export writes the session history to a flat file.
func Export(store *history.Store, input ExportInput) (*ExportOutput, error) {
	format, err := history.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	path, err := store.Export(format, input.Path)
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Path: path, Count: store.Len()}, nil
}
