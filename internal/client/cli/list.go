package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docsynchub/docsync/internal/client/models"
)

// Sync refreshes the document list and re-renders it.
func (a *App) Sync(ctx context.Context) error {
	if err := a.core.Sync(ctx); err != nil {
		fmt.Fprintf(a.out, "Sync failed: %s\n", err)
		return err
	}
	return a.List(ctx, "")
}

// List renders the merged document list, newest first, with stable numbers
// that assign/clear/suggest accept. filter narrows to "doc" or "sheet"; any
// other value is a case-insensitive name search.
func (a *App) List(ctx context.Context, filter string) error {
	var kind models.DocumentKind
	var search string
	switch filter {
	case "":
	case "doc", "docs":
		kind = models.KindDoc
	case "sheet", "sheets":
		kind = models.KindSheet
	default:
		search = strings.ToLower(filter)
	}

	a.refreshView()

	if snap := a.core.Snapshot(); snap.Err != "" {
		fmt.Fprintf(a.out, "Note: %s\n", snap.Err)
	}

	shown := 0
	for i, d := range a.view {
		if kind != "" && d.Kind != kind {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		shown++

		cat := "-"
		if d.CategoryID != "" {
			if c, ok := a.core.CategoryByID(d.CategoryID); ok {
				cat = c.Name
			}
		}

		modified := "-"
		if !d.ModifiedTime.IsZero() {
			modified = d.ModifiedTime.Format("2006-01-02 15:04")
		}

		fmt.Fprintf(a.out, "%3d. [%-5s] %-40s %-10s %-16s %s\n", i+1, d.Kind, d.Name, cat, modified, d.URL)
	}

	if shown == 0 {
		fmt.Fprintln(a.out, "No documents. Try 'sync'.")
	}
	return nil
}

// Categories prints the fixed category set.
func (a *App) Categories(ctx context.Context) error {
	for _, c := range a.core.Snapshot().Categories {
		fmt.Fprintf(a.out, "%3s. %s\n", c.ID, c.Name)
	}
	return nil
}

// refreshView rebuilds the numbered ordering from the current snapshot.
// Presentation owns the ordering; newest first is what a dashboard shows.
func (a *App) refreshView() {
	docs := a.core.Snapshot().Documents
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].ModifiedTime.After(docs[j].ModifiedTime)
	})
	a.view = docs
}

// docAt resolves a 1-based list number against the last rendered view.
func (a *App) docAt(idxArg string) (models.Document, error) {
	if len(a.view) == 0 {
		a.refreshView()
	}

	n, err := strconv.Atoi(idxArg)
	if err != nil || n < 1 || n > len(a.view) {
		return models.Document{}, fmt.Errorf("no document %q, run 'list' for numbers", idxArg)
	}
	return a.view[n-1], nil
}
