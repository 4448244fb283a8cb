// Package apierr turns the backend's JSON error envelope into a single
// human-readable message.
//
// The envelope has the shape:
//
//	{
//	  "message": "Failed to create record.",
//	  "data": {
//	    "email": {"code": "validation_not_unique", "message": "Value must be unique."}
//	  }
//	}
//
// and is rendered as "Failed to create record. (email: Value must be unique.)".
package apierr

import (
	"encoding/json"
)

// DefaultMessage is used when the envelope is absent, malformed, or has no
// top-level message.
const DefaultMessage = "Unknown error"

// Envelope is the decoded error body of a non-success response.
//
// Data is kept raw because the backend does not guarantee it is an object.
type Envelope struct {
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Error is a normalized, rejected backend response.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int

	// Message is the top-level message, DefaultMessage if absent.
	Message string

	// Fields maps a field name to its per-field message.
	Fields map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return render(e.Message, e.Fields)
}
