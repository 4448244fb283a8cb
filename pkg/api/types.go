// Package api is the client for the snippet backend's record API.
//
// It performs three operations, each a single request with no retries:
// Register creates an account, Authenticate exchanges credentials for a
// session, and CreateSnippet publishes a snippet with the session's bearer
// token.
//
// Example usage:
//
//	client := api.NewClient(api.Config{}, logger.Default())
//
//	sess, err := client.Authenticate(ctx, "a@b.com", "secret", "http://127.0.0.1:8090")
//	if err != nil {
//	    var apiErr *apierr.Error
//	    if errors.As(err, &apiErr) {
//	        fmt.Println(apiErr.Message)
//	    }
//	    return err
//	}
package api

import (
	"net/http"
)

// Visibility controls who can see a snippet.
type Visibility string

const (
	// VisibilityPublic makes the snippet visible to everyone.
	VisibilityPublic Visibility = "public"

	// VisibilityPrivate restricts the snippet to its author.
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility validates a visibility string.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(s); v {
	case VisibilityPublic, VisibilityPrivate:
		return v, nil
	default:
		return "", ErrInvalidVisibility
	}
}

// SnippetSubmission is the payload for a create-snippet request.
type SnippetSubmission struct {
	Title       string     `json:"title"`
	Code        string     `json:"code"`
	Language    string     `json:"language"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`

	// AuthorID is the active session's SubjectID.
	AuthorID string `json:"author"`
}

// AccountSummary describes a newly registered account.
type AccountSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// SnippetRecord is the backend's acknowledgement of a created snippet.
type SnippetRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Config contains API client configuration.
type Config struct {
	// HTTPClient is used for all requests.
	// Default: http.DefaultClient.
	HTTPClient *http.Client

	// APIPath is the path prefix under the server URL, e.g. "/api".
	APIPath string
}

// registerRequest is the body of POST /collections/users/records.
// The backend requires the confirmation to match; it is always the same value.
type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Name            string `json:"name"`
}

// authRequest is the body of POST /collections/users/auth-with-password.
type authRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// authResponse is the success body of auth-with-password.
type authResponse struct {
	Token  string     `json:"token"`
	Record userRecord `json:"record"`
}

// userRecord is a users collection record.
type userRecord struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
	Name  string  `json:"name"`
}
