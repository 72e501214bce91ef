package ops

import (
	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/history"
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string // required
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Imported int `json:"imported"`
}

// Import appends records from a JSON or CSV export file to the store.
func Import(store *history.Store, input ImportInput) (*ImportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	count, err := store.Import(input.Path)
	if err != nil {
		return nil, err
	}
	return &ImportOutput{Imported: count}, nil
}
