// Package session implements the session and document sync core: the state
// machine that owns the signed-in user, orchestrates fetch + merge + persist
// across the four adapters, and exposes a consistent view to the
// presentation layer.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/common"
	"github.com/docsynchub/docsync/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	StateUninitialized   State = "uninitialized"
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	// StateError is terminal: adapter bootstrap failed and the application
	// is unusable until restarted. Everything else is recoverable.
	StateError State = "error"
)

// IdentityProvider is the authentication adapter seen by the core.
type IdentityProvider interface {
	Initialize(ctx context.Context) error
	RequestToken(ctx context.Context, prompt models.Prompt) (models.User, error)
	Revoke(ctx context.Context) error
}

// DocumentSource lists the user's remote documents.
type DocumentSource interface {
	ListDocuments(ctx context.Context) ([]models.RemoteDocument, error)
}

// AssignmentStore persists the per-user category assignment map.
type AssignmentStore interface {
	Load(ctx context.Context, userID string) (map[string]string, error)
	Assign(ctx context.Context, userID, docID, categoryID string) error
	Clear(ctx context.Context, userID, docID string) error
}

// Suggester proposes a category name out of a closed candidate set.
type Suggester interface {
	Suggest(ctx context.Context, doc models.Document, candidates []string) (string, error)
}

// Snapshot is the read view handed to the presentation layer.
type Snapshot struct {
	State      State
	User       *models.User
	Documents  []models.Document
	Categories []models.Category
	IsSyncing  bool
	Err        string
}

// Core is the session and document sync core. All exported methods are safe
// for concurrent use; at most one sync is in flight at a time, later calls
// are dropped rather than queued.
type Core struct {
	identity IdentityProvider
	source   DocumentSource
	store    AssignmentStore
	suggest  Suggester
	log      logging.Logger

	categories []models.Category

	mu        sync.Mutex
	state     State
	user      *models.User
	epoch     uuid.UUID
	documents []models.Document
	syncing   bool
	errMsg    string
}

// New wires the core to its four adapters. The category set is fixed for
// the lifetime of the core.
func New(identity IdentityProvider, source DocumentSource, store AssignmentStore, suggest Suggester, categories []models.Category, log logging.Logger) *Core {
	return &Core{
		identity:   identity,
		source:     source,
		store:      store,
		suggest:    suggest,
		log:        log,
		categories: categories,
		state:      StateUninitialized,
		epoch:      uuid.New(),
	}
}

// Initialize bootstraps the identity adapter. Failure is the only fatal
// condition and leaves the core in the terminal error state.
func (c *Core) Initialize(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateInitializing
	c.mu.Unlock()

	if err := c.identity.Initialize(ctx); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()
	return nil
}

// Login requests explicit user consent, establishes the session and runs
// the initial sync. Valid only while unauthenticated.
func (c *Core) Login(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateUnauthenticated {
		st := c.state
		c.mu.Unlock()
		return fmt.Errorf("login not available in state %q", st)
	}
	c.state = StateAuthenticating
	c.mu.Unlock()

	user, err := c.identity.RequestToken(ctx, models.PromptConsent)
	if err != nil {
		c.mu.Lock()
		c.state = StateUnauthenticated
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.user = &user
	c.epoch = uuid.New()
	c.state = StateAuthenticated
	c.errMsg = ""
	c.mu.Unlock()

	c.log.Info(ctx, "signed in", "user", user.ID, "email", user.Email)

	// The session is established at this point. A failing initial sync is
	// surfaced through the snapshot like any other sync failure and must
	// not read as a failed login.
	if err := c.Sync(ctx); err != nil {
		c.log.Warn(ctx, "initial sync failed", "error", err)
	}
	return nil
}

// Logout revokes the credential best-effort and clears all session state.
// Bumping the epoch makes any sync still in flight discard its result.
func (c *Core) Logout(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateAuthenticated {
		st := c.state
		c.mu.Unlock()
		return fmt.Errorf("logout not available in state %q", st)
	}
	c.mu.Unlock()

	_ = c.identity.Revoke(ctx)

	c.mu.Lock()
	c.user = nil
	c.documents = nil
	c.epoch = uuid.New()
	c.syncing = false
	c.errMsg = ""
	c.state = StateUnauthenticated
	c.mu.Unlock()

	c.log.Info(ctx, "signed out")
	return nil
}

// Sync fetches the remote listing, merges it with the persisted assignment
// map and publishes the result. If a sync is already in flight the call is
// dropped. An expired credential triggers one silent token refresh and no
// surfaced error; the sync itself is not retried automatically.
func (c *Core) Sync(ctx context.Context) error {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return errors.New("no active session")
	}
	if c.syncing {
		c.mu.Unlock()
		return nil
	}
	c.syncing = true
	userID := c.user.ID
	epoch := c.epoch
	c.mu.Unlock()

	remote, listErr := c.source.ListDocuments(ctx)

	var (
		assigned map[string]string
		loadErr  error
	)
	if listErr == nil {
		assigned, loadErr = c.store.Load(ctx, userID)
	}

	c.mu.Lock()
	if c.epoch != epoch {
		// The session ended while this sync was running. The result
		// belongs to a user who is no longer signed in: drop it.
		c.mu.Unlock()
		c.log.Debug(ctx, "dropping stale sync result", "user", userID)
		return nil
	}
	c.syncing = false

	switch {
	case errors.Is(listErr, common.ErrUnauthorized):
		c.mu.Unlock()
		c.silentRefresh(ctx, epoch)
		return nil
	case listErr != nil:
		c.errMsg = "sync failed, previous documents kept"
		c.mu.Unlock()
		c.log.Warn(ctx, "sync failed", "error", listErr)
		return listErr
	case loadErr != nil:
		c.errMsg = "sync failed, previous documents kept"
		c.mu.Unlock()
		c.log.Warn(ctx, "loading assignments failed", "error", loadErr)
		return loadErr
	}

	c.documents = Merge(remote, assigned)
	c.errMsg = ""
	n := len(c.documents)
	c.mu.Unlock()

	c.log.Info(ctx, "sync finished", "user", userID, "documents", n)
	return nil
}

// silentRefresh renews the credential without user interaction. It neither
// surfaces an error nor re-runs the failed sync; the next explicit sync
// uses the fresh credential.
func (c *Core) silentRefresh(ctx context.Context, epoch uuid.UUID) {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if _, err := c.identity.RequestToken(ctx, models.PromptSilent); err != nil {
		c.log.Warn(ctx, "silent refresh failed", "error", err)
		return
	}
	c.log.Debug(ctx, "credential refreshed")
}

// UpdateCategory assigns or clears a document's category. The in-memory
// list is updated optimistically and the change is written through to the
// store; a persistence failure is logged, never surfaced. An empty
// categoryID clears the assignment, removing the map entry entirely.
func (c *Core) UpdateCategory(ctx context.Context, docID, categoryID string) {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return
	}
	userID := c.user.ID

	found := false
	for i := range c.documents {
		if c.documents[i].ID == docID {
			c.documents[i].CategoryID = categoryID
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		c.log.Warn(ctx, "category update for unknown document", "document", docID)
		return
	}

	var err error
	if categoryID == "" {
		err = c.store.Clear(ctx, userID, docID)
	} else {
		err = c.store.Assign(ctx, userID, docID, categoryID)
	}
	if err != nil {
		c.log.Warn(ctx, "persisting category change failed", "document", docID, "error", err)
	}
}

// SuggestCategory asks the suggestion adapter for a category for the given
// document and applies the result. The returned name is always a member of
// the configured category set.
func (c *Core) SuggestCategory(ctx context.Context, docID string) (models.Category, error) {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return models.Category{}, errors.New("no active session")
	}
	var doc *models.Document
	for i := range c.documents {
		if c.documents[i].ID == docID {
			d := c.documents[i]
			doc = &d
			break
		}
	}
	c.mu.Unlock()

	if doc == nil {
		return models.Category{}, fmt.Errorf("unknown document %q", docID)
	}

	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}

	raw, err := c.suggest.Suggest(ctx, *doc, names)
	if err != nil {
		return models.Category{}, err
	}

	name := models.ResolveCategoryName(raw, names)
	for _, cat := range c.categories {
		if cat.Name == name {
			c.UpdateCategory(ctx, docID, cat.ID)
			return cat, nil
		}
	}
	// Unreachable with a non-empty category set; kept for the empty set.
	return models.Category{Name: name}, nil
}

// Snapshot returns a copy of the presentation-facing state.
func (c *Core) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:      c.state,
		Categories: append([]models.Category(nil), c.categories...),
		Documents:  append([]models.Document(nil), c.documents...),
		IsSyncing:  c.syncing,
		Err:        c.errMsg,
	}
	if c.user != nil {
		u := *c.user
		snap.User = &u
	}
	return snap
}

// CategoryByID resolves a category id against the fixed set.
func (c *Core) CategoryByID(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// CategoryByName resolves a category name case-insensitively.
func (c *Core) CategoryByName(name string) (models.Category, bool) {
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return models.Category{}, false
}
