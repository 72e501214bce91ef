package ops

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/history"
	"github.com/mzaglia/passmint/internal/password"
	"github.com/mzaglia/passmint/internal/strength"
)

// TestFullWorkflow exercises the complete session lifecycle:
// generate → generate_many → evaluate → list → export → import → re-export
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	store := history.NewStore()

	criteria := password.Criteria{Length: 16, Uppercase: true, Numbers: true, Special: true}

	// 1. Generate one
	genOut, err := Generate(store, GenerateInput{Criteria: criteria})
	require.NoError(t, err)
	require.Len(t, genOut.Password, 16)
	require.NotEmpty(t, genOut.ID)

	// 2. Generate a batch
	manyOut, err := GenerateMany(store, GenerateManyInput{Count: 3, Criteria: criteria})
	require.NoError(t, err)
	require.Equal(t, 3, manyOut.Generated)

	// 3. Evaluate the first password (offline)
	evalOut, err := Evaluate(EvaluateInput{Password: genOut.Password}, nil)
	require.NoError(t, err)
	// 16 chars with every class present scores 70 before penalties; even
	// every penalty firing at once leaves 20.
	require.GreaterOrEqual(t, evalOut.Score, 20)
	require.NotEqual(t, strength.Compromised, evalOut.Rating)

	// 4. List — all four records, insertion order
	listOut, err := List(store)
	require.NoError(t, err)
	require.Equal(t, 4, listOut.Total)
	require.Equal(t, genOut.ID, listOut.Items[0].ID)

	// 5. Export to JSON
	jsonPath := filepath.Join(tmpDir, "session.json")
	exportOut, err := Export(store, ExportInput{Format: "json", Path: jsonPath})
	require.NoError(t, err)
	require.Equal(t, 4, exportOut.Count)

	// 6. Import into a fresh store
	fresh := history.NewStore()
	importOut, err := Import(fresh, ImportInput{Path: jsonPath})
	require.NoError(t, err)
	require.Equal(t, 4, importOut.Imported)

	want := store.Records()
	got := fresh.Records()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Password, got[i].Password)
		require.Equal(t, want[i].Timestamp, got[i].Timestamp)
		require.Equal(t, want[i].Criteria, got[i].Criteria)
	}

	// 7. Re-export the imported store as CSV
	csvPath := filepath.Join(tmpDir, "session.csv")
	reexportOut, err := Export(fresh, ExportInput{Format: "csv", Path: csvPath})
	require.NoError(t, err)
	require.Equal(t, 4, reexportOut.Count)

	// 8. Empty store still refuses to export
	_, err = Export(history.NewStore(), ExportInput{Format: "json", Path: filepath.Join(tmpDir, "empty.json")})
	var perr *errors.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, errors.ErrEmptyHistory, perr.Code)
}
