// Package publish turns raw snippet input into a created snippet.
//
// It validates the request, resolves the language tag when the caller gave
// none, submits the snippet with the active session, and builds the link
// to the snippet's web page.
package publish

import (
	"context"
	"time"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/session"
)

// Creator creates snippets on the backend.
//
// *api.Client implements this interface.
type Creator interface {
	CreateSnippet(ctx context.Context, sess *session.Session, sub api.SnippetSubmission) (*api.SnippetRecord, error)
}

// Request is a snippet to publish.
type Request struct {
	Title       string
	Language    string
	Description string
	Visibility  string
	Code        string

	// Filename is the file the code was read from, if any. It is used to
	// pick the language when Language is empty.
	Filename string
}

// Result describes a published snippet.
type Result struct {
	Snippet    api.SnippetRecord `json:"snippet"`
	Language   string            `json:"language"`
	Visibility api.Visibility    `json:"visibility"`
	URL        string            `json:"url"`
}

// Config contains publisher configuration.
type Config struct {
	// WebURL overrides the base URL of snippet links.
	// Default: derived from the session's server.
	WebURL string

	// Now returns the current time, used for token expiry checks.
	// Default: time.Now.
	Now func() time.Time
}
