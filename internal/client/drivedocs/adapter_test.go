package drivedocs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/common"
	"github.com/docsynchub/docsync/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l nopLogger) With(args ...any) logging.Logger                  { return l }

func newTestAdapter(t *testing.T, handler http.Handler) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL))
	require.NoError(t, err)

	return &Adapter{svc: svc, log: nopLogger{}}
}

func filePage(files []map[string]string, next string) map[string]any {
	return map[string]any{"files": files, "nextPageToken": next}
}

func TestListDocuments_SinglePage(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "trashed=false")
		assert.Equal(t, "modifiedTime desc", r.URL.Query().Get("orderBy"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(filePage([]map[string]string{
			{
				"id":           "d1",
				"name":         "Notes",
				"mimeType":     "application/vnd.google-apps.document",
				"webViewLink":  "https://docs.google.com/d1",
				"modifiedTime": "2026-08-30T10:00:00.000Z",
			},
			{
				"id":           "s1",
				"name":         "Budget",
				"mimeType":     "application/vnd.google-apps.spreadsheet",
				"webViewLink":  "https://docs.google.com/s1",
				"modifiedTime": "2026-08-29T09:00:00.000Z",
			},
		}, ""))
	}))

	docs, err := a.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, models.RemoteDocument{
		ID:           "d1",
		Name:         "Notes",
		MIMEType:     "application/vnd.google-apps.document",
		WebViewLink:  "https://docs.google.com/d1",
		ModifiedTime: "2026-08-30T10:00:00.000Z",
	}, docs[0])
	assert.Equal(t, "s1", docs[1].ID)
}

func TestListDocuments_CappedAtOnePage(t *testing.T) {
	var requests int
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if tok := r.URL.Query().Get("pageToken"); tok != "" {
			t.Errorf("next page must not be requested, got token %q", tok)
		}
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))

		var files []map[string]string
		for i := 0; i < 50; i++ {
			files = append(files, map[string]string{
				"id":       fmt.Sprintf("doc-%02d", i),
				"name":     fmt.Sprintf("Doc %02d", i),
				"mimeType": "application/vnd.google-apps.document",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(filePage(files, "page-2"))
	}))

	docs, err := a.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 50, "result count stays capped at one page")
	assert.Equal(t, 1, requests)
}

func TestListDocuments_OversizedPageTruncated(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var files []map[string]string
		for i := 0; i < 60; i++ {
			files = append(files, map[string]string{
				"id":       fmt.Sprintf("doc-%02d", i),
				"name":     fmt.Sprintf("Doc %02d", i),
				"mimeType": "application/vnd.google-apps.document",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(filePage(files, ""))
	}))

	docs, err := a.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 50)
}

func TestListDocuments_EmptyResult(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(filePage(nil, ""))
	}))

	docs, err := a.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListDocuments_UnauthorizedMapsToUnauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401,"message":"Invalid Credentials"}}`, http.StatusUnauthorized)
	}))

	_, err := a.ListDocuments(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.NotErrorIs(t, err, common.ErrTransport)
}

func TestListDocuments_ServerErrorMapsToTransport(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":503,"message":"backend unavailable"}}`, http.StatusServiceUnavailable)
	}))

	_, err := a.ListDocuments(context.Background())
	require.ErrorIs(t, err, common.ErrTransport)
	assert.NotErrorIs(t, err, common.ErrUnauthorized)
}
