// Package gemini suggests a category for a document by asking a Gemini model
// to pick one name out of the configured closed set.
package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/common"
	"github.com/docsynchub/docsync/internal/logging"
)

// Adapter talks to the Gemini API. It is fully optional: without an API key
// every Suggest call returns ErrNotConfigured and nothing else changes.
type Adapter struct {
	model string
	log   logging.Logger

	mu     sync.Mutex
	apiKey string
	client *genai.Client
}

// New builds the adapter. An empty apiKey falls back to the GEMINI_API_KEY
// and GOOGLE_API_KEY environment variables; if those are empty too the
// adapter stays unconfigured until SetAPIKey is called.
func New(apiKey, model string, log logging.Logger) *Adapter {
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Adapter{model: model, log: log, apiKey: apiKey}
}

// Configured reports whether an API key is available.
func (a *Adapter) Configured() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.apiKey != ""
}

// SetAPIKey installs a key at runtime and drops any cached client so the
// next Suggest call authenticates with it.
func (a *Adapter) SetAPIKey(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apiKey = strings.TrimSpace(key)
	a.client = nil
}

func (a *Adapter) getClient(ctx context.Context) (*genai.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.apiKey == "" {
		return nil, common.ErrNotConfigured
	}
	if a.client != nil {
		return a.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", common.ErrTransport)
	}
	a.client = client
	return client, nil
}

// Suggest returns a category name for the document, always one of the
// candidate names. The model answer is resolved against the candidate set,
// so a hallucinated name can never leak out.
func (a *Adapter) Suggest(ctx context.Context, doc models.Document, candidates []string) (string, error) {
	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	prompt := buildPrompt(doc, candidates)
	resp, err := client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(0)),
			MaxOutputTokens: 32,
		})
	if err != nil {
		a.log.Warn(ctx, "suggestion request failed", "error", err)
		return "", fmt.Errorf("generate suggestion: %w", common.ErrTransport)
	}

	name := models.ResolveCategoryName(resp.Text(), candidates)
	a.log.Debug(ctx, "suggestion resolved", "document", doc.ID, "category", name)
	return name, nil
}

func buildPrompt(doc models.Document, candidates []string) string {
	kind := "Google Doc"
	if doc.Kind == models.KindSheet {
		kind = "Google Sheet"
	}
	var b strings.Builder
	b.WriteString("You are organizing a document dashboard. ")
	b.WriteString(fmt.Sprintf("Pick the single best category for the %s titled %q.\n", kind, doc.Name))
	b.WriteString("Choose exactly one of: ")
	b.WriteString(strings.Join(candidates, ", "))
	b.WriteString(".\nAnswer with the category name only, nothing else.")
	return b.String()
}
