// Package googleauth wraps the Google OAuth2 token-acquisition flow and the
// user-profile lookup. The CLI has no redirect URI to receive a browser
// callback, so explicit consent uses the device-authorization flow; silent
// renewal exchanges the stored refresh token.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/common"
	"github.com/docsynchub/docsync/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	defaultProfileURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultRevokeURL  = "https://oauth2.googleapis.com/revoke"
)

// Adapter is the identity provider adapter. It owns the OAuth2 client
// configuration and the currently held token pair; issued access tokens are
// mirrored into the shared CredentialSlot for the document source transport.
type Adapter struct {
	oauth      *oauth2.Config
	slot       *CredentialSlot
	httpClient *http.Client
	log        logging.Logger

	profileURL string
	revokeURL  string

	// ShowVerification is invoked during the consent flow with the code
	// the user must enter and the page to enter it on. The presentation
	// layer installs its own renderer; the default logs the values.
	ShowVerification func(userCode, verificationURI string)

	mu      sync.Mutex
	current *oauth2.Token
}

// New builds an adapter for the given OAuth client against Google's
// endpoints.
func New(clientID, clientSecret string, scopes []string, slot *CredentialSlot, log logging.Logger) *Adapter {
	a := &Adapter{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		slot:       slot,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
		profileURL: defaultProfileURL,
		revokeURL:  defaultRevokeURL,
	}
	a.ShowVerification = func(userCode, verificationURI string) {
		a.log.Info(context.Background(), "enter device code", "code", userCode, "url", verificationURI)
	}
	return a
}

// Initialize validates that the adapter can run at all. Failure here is the
// one fatal condition of the application.
func (a *Adapter) Initialize(ctx context.Context) error {
	if a.oauth.ClientID == "" {
		return fmt.Errorf("google oauth client id is not configured: %w", common.ErrAdapterUnavailable)
	}
	if a.oauth.Endpoint.DeviceAuthURL == "" || a.oauth.Endpoint.TokenURL == "" {
		return fmt.Errorf("oauth endpoints missing: %w", common.ErrAdapterUnavailable)
	}
	return nil
}

// RequestToken acquires a credential in the requested prompt mode, fetches
// the user profile, and deposits the token into the shared slot.
func (a *Adapter) RequestToken(ctx context.Context, prompt models.Prompt) (models.User, error) {
	var (
		tok *oauth2.Token
		err error
	)
	switch prompt {
	case models.PromptConsent:
		tok, err = a.consentToken(ctx)
	case models.PromptSilent:
		tok, err = a.refreshedToken(ctx)
	default:
		return models.User{}, fmt.Errorf("unknown prompt mode %q", prompt)
	}
	if err != nil {
		return models.User{}, translateTokenError(err)
	}

	user, err := a.FetchProfile(ctx, tok.AccessToken)
	if err != nil {
		return models.User{}, err
	}

	a.mu.Lock()
	// Google omits the refresh token on renewals; keep the one we have.
	if tok.RefreshToken == "" && a.current != nil {
		tok.RefreshToken = a.current.RefreshToken
	}
	a.current = tok
	a.mu.Unlock()

	a.slot.Set(tok)
	return user, nil
}

func (a *Adapter) consentToken(ctx context.Context) (*oauth2.Token, error) {
	da, err := a.oauth.DeviceAuth(ctx)
	if err != nil {
		return nil, err
	}

	uri := da.VerificationURIComplete
	if uri == "" {
		uri = da.VerificationURI
	}
	a.ShowVerification(da.UserCode, uri)

	return a.oauth.DeviceAccessToken(ctx, da)
}

func (a *Adapter) refreshedToken(ctx context.Context) (*oauth2.Token, error) {
	a.mu.Lock()
	var refresh string
	if a.current != nil {
		refresh = a.current.RefreshToken
	}
	a.mu.Unlock()

	if refresh == "" {
		return nil, fmt.Errorf("no refresh token held: %w", common.ErrAuthDenied)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	return a.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
}

// FetchProfile resolves the user behind an access token via the OpenID
// userinfo endpoint. Fields map 1:1 onto User (sub→ID).
func (a *Adapter) FetchProfile(ctx context.Context, accessToken string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("build profile request: %w", common.ErrProfileFetch)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", common.ErrProfileFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.User{}, fmt.Errorf("profile request status %s: %w", resp.Status, common.ErrProfileFetch)
	}

	var payload struct {
		Sub     string `json:"sub"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.User{}, fmt.Errorf("decode profile: %w", common.ErrProfileFetch)
	}

	return models.User{
		ID:          payload.Sub,
		DisplayName: payload.Name,
		Email:       payload.Email,
		AvatarURL:   payload.Picture,
	}, nil
}

// Revoke invalidates the held credential at the provider and clears the
// shared slot. Best-effort: failures are logged, never returned.
func (a *Adapter) Revoke(ctx context.Context) error {
	a.mu.Lock()
	tok := a.current
	a.current = nil
	a.mu.Unlock()
	a.slot.Clear()

	if tok == nil || tok.AccessToken == "" {
		return nil
	}

	form := url.Values{"token": {tok.AccessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		a.log.Warn(ctx, "build revoke request", "error", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.log.Warn(ctx, "revoke credential", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.log.Warn(ctx, "revoke credential", "status", resp.Status)
	}
	return nil
}

// translateTokenError maps provider token responses onto the shared error
// taxonomy, preserving the provider's message for display.
func translateTokenError(err error) error {
	if errors.Is(err, common.ErrAuthDenied) {
		return err
	}

	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		msg := re.ErrorDescription
		if msg == "" {
			msg = re.ErrorCode
		}
		if msg == "" {
			msg = "token request rejected"
		}
		return fmt.Errorf("%s: %w", msg, common.ErrAuthDenied)
	}

	return fmt.Errorf("token request: %w", common.ErrTransport)
}
