package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/0xmhha/snipet/pkg/apierr"
)

// Common errors returned by the API client.
var (
	// ErrConnect is returned when the server cannot be reached.
	ErrConnect = errors.New("failed to connect to server")

	// ErrParse is returned when a success response body cannot be decoded.
	ErrParse = errors.New("failed to parse response")

	// ErrTitleRequired is returned when a submission has an empty title.
	ErrTitleRequired = errors.New("title is required")

	// ErrEmptyCode is returned when a submission body is blank.
	ErrEmptyCode = errors.New("no code provided (empty input)")

	// ErrInvalidVisibility is returned for visibility other than public or private.
	ErrInvalidVisibility = errors.New("visibility must be 'public' or 'private'")

	// ErrNoToken is returned when a request needs a session without a token.
	ErrNoToken = errors.New("session has no token")
)

// SnippetError is a rejected create-snippet request.
type SnippetError struct {
	Err *apierr.Error
}

// Error implements the error interface.
func (e *SnippetError) Error() string {
	return fmt.Sprintf("Failed to create snippet (%s): %s", statusText(e.Err.Status), e.Err.Error())
}

// Unwrap returns the normalized API error.
func (e *SnippetError) Unwrap() error {
	return e.Err
}

// statusText renders a status as "400 Bad Request".
func statusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return fmt.Sprintf("%d %s", code, text)
	}
	return fmt.Sprintf("%d", code)
}
