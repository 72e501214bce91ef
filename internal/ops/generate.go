package ops

import (
	"fmt"
	"time"

	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/history"
	"github.com/mzaglia/passmint/internal/password"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	Criteria password.Criteria
}

// GenerateOutput contains one generated password and its history record.
type GenerateOutput struct {
	ID        string            `json:"id"`
	Password  string            `json:"password"`
	Timestamp string            `json:"timestamp"`
	Criteria  password.Criteria `json:"criteria"`
}

// Generate constructs one password and appends its record to the store.
// The record carries the exact criteria used and the current timestamp.
func Generate(store *history.Store, input GenerateInput) (*GenerateOutput, error) {
	pw, err := password.Generate(input.Criteria)
	if err != nil {
		return nil, err
	}

	rec := store.Append(history.Record{
		Password:  pw,
		Timestamp: time.Now().Format(time.RFC3339),
		Criteria:  input.Criteria,
	})

	return &GenerateOutput{
		ID:        rec.ID,
		Password:  rec.Password,
		Timestamp: rec.Timestamp,
		Criteria:  rec.Criteria,
	}, nil
}

// GenerateManyInput contains parameters for the GenerateMany operation.
type GenerateManyInput struct {
	Count    int
	Criteria password.Criteria
}

// GenerateManyOutput contains the generated batch.
type GenerateManyOutput struct {
	Generated int              `json:"generated"`
	Passwords []GenerateOutput `json:"passwords"`
}

// GenerateMany runs Count independent Generate calls; each appends its own
// record to the store.
func GenerateMany(store *history.Store, input GenerateManyInput) (*GenerateManyOutput, error) {
	if input.Count < 1 || input.Count > MaxGenerateCount {
		return nil, errors.NewInvalidRequest(
			fmt.Sprintf("count must be between 1 and %d", MaxGenerateCount))
	}

	out := &GenerateManyOutput{Passwords: make([]GenerateOutput, 0, input.Count)}
	for i := 0; i < input.Count; i++ {
		one, err := Generate(store, GenerateInput{Criteria: input.Criteria})
		if err != nil {
			return nil, err
		}
		out.Passwords = append(out.Passwords, *one)
		out.Generated++
	}
	return out, nil
}
