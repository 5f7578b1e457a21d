package models

import (
	"strings"
	"time"
)

// DocumentKind distinguishes the two file kinds the dashboard shows.
type DocumentKind string

const (
	KindDoc   DocumentKind = "doc"
	KindSheet DocumentKind = "sheet"
)

// RemoteDocument is the raw file metadata as returned by the document
// source, before category information is merged in.
type RemoteDocument struct {
	ID           string
	Name         string
	MIMEType     string
	WebViewLink  string
	ModifiedTime string
}

// Document is one merged entry of the dashboard list. An empty CategoryID
// means uncategorized; that is a valid, stable state, not an error.
// Documents are produced fresh on every sync and never persisted — only
// their category assignment is.
type Document struct {
	ID           string
	Name         string
	Kind         DocumentKind
	CategoryID   string
	URL          string
	ModifiedTime time.Time
}

// KindFromMIME maps a Drive MIME type onto a document kind: anything
// mentioning a spreadsheet is a sheet, everything else a text document.
func KindFromMIME(mimeType string) DocumentKind {
	if strings.Contains(mimeType, "spreadsheet") {
		return KindSheet
	}
	return KindDoc
}
