package ops

import (
	"github.com/mzaglia/passmint/internal/history"
	"github.com/mzaglia/passmint/internal/password"
)

// ListItem is one history entry in a listing.
type ListItem struct {
	ID        string            `json:"id"`
	Password  string            `json:"password"`
	Timestamp string            `json:"timestamp"`
	Criteria  password.Criteria `json:"criteria"`
}

// ListOutput contains the session history in insertion order.
type ListOutput struct {
	Total int        `json:"total"`
	Items []ListItem `json:"items"`
}

// List returns the session history, most-recent last.
func List(store *history.Store) (*ListOutput, error) {
	records := store.Records()
	out := &ListOutput{Total: len(records), Items: make([]ListItem, 0, len(records))}
	for _, r := range records {
		out.Items = append(out.Items, ListItem{
			ID:        r.ID,
			Password:  r.Password,
			Timestamp: r.Timestamp,
			Criteria:  r.Criteria,
		})
	}
	return out, nil
}
