// Package drivedocs lists the signed-in user's Google Docs and Sheets via the
// Drive v3 API. It is a read-only adapter; all state lives in the sync core.
package drivedocs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/docsynchub/docsync/internal/client/models"
	"github.com/docsynchub/docsync/internal/common"
	"github.com/docsynchub/docsync/internal/logging"
)

const (
	pageSize  = 50
	listQuery = "(mimeType='application/vnd.google-apps.document' or " +
		"mimeType='application/vnd.google-apps.spreadsheet') and trashed=false"
	listFields = "nextPageToken, files(id, name, mimeType, webViewLink, modifiedTime)"
	listOrder  = "modifiedTime desc"
)

// Adapter wraps the Drive service. The credential comes from the shared
// token source, so a token refreshed by the identity adapter is picked up
// without rebuilding the service.
type Adapter struct {
	svc *drive.Service
	log logging.Logger
}

// New builds the adapter on top of the shared credential source. Extra
// options are appended after the token source so tests can point the
// service at a local server.
func New(ctx context.Context, creds oauth2.TokenSource, log logging.Logger, extra ...option.ClientOption) (*Adapter, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(creds)}, extra...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", common.ErrAdapterUnavailable)
	}
	return &Adapter{svc: svc, log: log}, nil
}

// ListDocuments returns the newest non-trashed documents and spreadsheets
// the user can see. The result is capped at a single page of 50 entries;
// any nextPageToken in the response is ignored.
func (a *Adapter) ListDocuments(ctx context.Context) ([]models.RemoteDocument, error) {
	res, err := a.svc.Files.List().
		Context(ctx).
		Q(listQuery).
		Fields(listFields).
		OrderBy(listOrder).
		PageSize(pageSize).
		Do()
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]models.RemoteDocument, 0, len(res.Files))
	for _, f := range res.Files {
		if len(out) == pageSize {
			break
		}
		out = append(out, models.RemoteDocument{
			ID:           f.Id,
			Name:         f.Name,
			MIMEType:     f.MimeType,
			WebViewLink:  f.WebViewLink,
			ModifiedTime: f.ModifiedTime,
		})
	}

	a.log.Debug(ctx, "listed remote documents", "count", len(out))
	return out, nil
}

// mapError sorts remote failures into the two classes the sync core reacts
// to: an expired credential vs everything else.
func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusUnauthorized {
		return fmt.Errorf("drive list: %w", common.ErrUnauthorized)
	}
	if errors.Is(err, common.ErrUnauthorized) {
		return err
	}
	return fmt.Errorf("drive list: %w", common.ErrTransport)
}
