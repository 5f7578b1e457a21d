// Package categories persists the per-user category-assignment map.
//
// Durable format: one key-value row per user, key "{userId}-categories",
// value a JSON object mapping document id to category id. An absent row is
// the valid initial state and reads as an empty map. The map may contain
// stale document ids; readers must tolerate them.
package categories

import "context"

// Repository is the durable store for category assignments.
type Repository interface {
	// Load returns the user's assignment map; an empty map when none was
	// ever saved.
	Load(ctx context.Context, userID string) (map[string]string, error)

	// Save overwrites the user's assignment map.
	Save(ctx context.Context, userID string, m map[string]string) error

	// Assign upserts one document→category entry.
	Assign(ctx context.Context, userID, docID, categoryID string) error

	// Clear removes one document's entry entirely. Absence is the
	// uncategorized state; no sentinel value is ever stored.
	Clear(ctx context.Context, userID, docID string) error
}
