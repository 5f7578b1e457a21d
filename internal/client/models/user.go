// Package models defines the domain types shared by the sync core, the
// adapters and the presentation layer.
package models

// Prompt selects how a token request interacts with the user.
type Prompt string

const (
	// PromptConsent asks the user for explicit consent (login).
	PromptConsent Prompt = "consent"
	// PromptSilent renews the credential without user-visible prompting.
	PromptSilent Prompt = "silent"
)

// User holds the identity attributes of the signed-in Google account.
// It lives only in process memory and is discarded on logout. ID is the
// stable partition key for all persisted category data.
type User struct {
	ID          string
	DisplayName string
	Email       string
	AvatarURL   string
}
