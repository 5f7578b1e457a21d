package googleauth

import (
	"fmt"
	"sync"

	"github.com/docsynchub/docsync/internal/common"
	"golang.org/x/oauth2"
)

// CredentialSlot is the shared credential holder: the identity adapter
// deposits tokens here and the document source's transport reads them.
//
// It implements oauth2.TokenSource but deliberately never refreshes: an
// expired credential must surface as an Unauthorized failure so the sync
// core can decide on recovery.
type CredentialSlot struct {
	mu  sync.Mutex
	tok *oauth2.Token
}

func NewCredentialSlot() *CredentialSlot {
	return &CredentialSlot{}
}

// Set replaces the held credential.
func (s *CredentialSlot) Set(tok *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
}

// Clear drops the held credential.
func (s *CredentialSlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = nil
}

// Token returns the held credential as-is, expired or not.
func (s *CredentialSlot) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok == nil {
		return nil, fmt.Errorf("no credential available: %w", common.ErrUnauthorized)
	}
	return s.tok, nil
}
