package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/docsynchub/docsync/internal/common"
)

// getSecret and getSimpleText are indirections used to facilitate testing.
var getSecret = GetSecret
var getSimpleText = GetSimpleText

// Suggest asks the suggestion backend for a category for the numbered
// document and applies it. If no API key is configured yet, the user is
// prompted for one first (read without echo).
func (a *App) Suggest(ctx context.Context, idxArg string) error {
	doc, err := a.docAt(idxArg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if !a.suggest.Configured() {
		key, err := getSecret("Enter Gemini API key", a.out)
		if err != nil {
			// No terminal on stdin (piped input); read a plain line.
			key, err = getSimpleText(a.reader, "Enter Gemini API key", a.out)
			if err != nil {
				return err
			}
		}
		a.suggest.SetAPIKey(key)
	}

	sctx, cancel := context.WithTimeout(ctx, a.config.SuggestTimeout)
	defer cancel()

	cat, err := a.core.SuggestCategory(sctx, doc.ID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotConfigured):
			fmt.Fprintln(a.out, "Suggestions are not configured (no API key).")
		default:
			fmt.Fprintf(a.out, "Suggestion failed: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%s -> %s (suggested)\n", doc.Name, cat.Name)
	return nil
}
