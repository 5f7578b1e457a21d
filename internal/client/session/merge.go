package session

import (
	"time"

	"github.com/docsynchub/docsync/internal/client/models"
)

// Merge combines the remote listing with the persisted assignment map into
// the dashboard view. It is pure: one output document per remote document,
// in input order, with the category looked up by document id. Assignments
// for documents no longer present remotely are dropped silently.
func Merge(remote []models.RemoteDocument, assigned map[string]string) []models.Document {
	out := make([]models.Document, 0, len(remote))
	for _, r := range remote {
		// A malformed timestamp degrades to the zero time instead of
		// failing the whole sync.
		ts, _ := time.Parse(time.RFC3339, r.ModifiedTime)
		out = append(out, models.Document{
			ID:           r.ID,
			Name:         r.Name,
			Kind:         models.KindFromMIME(r.MIMEType),
			CategoryID:   assigned[r.ID],
			URL:          r.WebViewLink,
			ModifiedTime: ts,
		})
	}
	return out
}
