package cli

import (
	"context"
	"fmt"
)

// Login runs the device consent flow and the initial sync. Errors are
// printed, not returned to the REPL, so a failed login leaves the user at
// the prompt.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in.")
		return nil
	}

	if err := a.core.Login(ctx); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	snap := a.core.Snapshot()
	if snap.User != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", snap.User.DisplayName, snap.User.Email)
	}
	return a.List(ctx, "")
}

// Logout revokes the credential best-effort and clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.core.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}
	a.view = nil
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
