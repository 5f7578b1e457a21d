// Package cli provides the interactive DocSync Hub command-line dashboard.
//
// It wires configuration, local storage, the Google adapters and the sync
// core into an interactive REPL. Typical flow: sign in with the device
// consent flow, sync the document list, then assign, clear or ask for
// category suggestions per document.
//
// Key features:
//   - Login / Logout via the Google device flow
//   - Sync and list Docs and Sheets, optionally filtered by kind
//   - Assign / clear local categories
//   - Ask Gemini for a category suggestion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
