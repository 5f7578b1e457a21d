package cli

import (
	"context"
	"fmt"
)

// Assign sets the category of the numbered document. The category is
// accepted by id or by case-insensitive name.
func (a *App) Assign(ctx context.Context, idxArg, categoryArg string) error {
	doc, err := a.docAt(idxArg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	cat, ok := a.core.CategoryByID(categoryArg)
	if !ok {
		cat, ok = a.core.CategoryByName(categoryArg)
	}
	if !ok {
		fmt.Fprintf(a.out, "Unknown category %q, see 'categories'\n", categoryArg)
		return fmt.Errorf("unknown category %q", categoryArg)
	}

	a.core.UpdateCategory(ctx, doc.ID, cat.ID)
	fmt.Fprintf(a.out, "%s -> %s\n", doc.Name, cat.Name)
	return nil
}

// Clear removes the category assignment of the numbered document.
func (a *App) Clear(ctx context.Context, idxArg string) error {
	doc, err := a.docAt(idxArg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.core.UpdateCategory(ctx, doc.ID, "")
	fmt.Fprintf(a.out, "%s -> uncategorized\n", doc.Name)
	return nil
}
