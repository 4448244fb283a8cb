package apierr

import (
	"encoding/json"
	"sort"
	"strings"
)

// Decode parses a response body into an Envelope.
//
// A body that is not a JSON object yields an empty Envelope instead of an
// error, so callers always get something Normalize can render.
func Decode(body []byte) *Envelope {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &Envelope{}
	}
	return &env
}

// Normalize renders an envelope as one message.
//
// A nil envelope or a missing message yields DefaultMessage. Field entries
// that are not objects or lack a string "message" are skipped.
func Normalize(env *Envelope) string {
	message, fields := parts(env)
	return render(message, fields)
}

// FromResponse builds an Error for a rejected response with the given status.
func FromResponse(status int, body []byte) *Error {
	message, fields := parts(Decode(body))
	return &Error{
		Status:  status,
		Message: message,
		Fields:  fields,
	}
}

// parts extracts the top-level message and the per-field messages.
func parts(env *Envelope) (string, map[string]string) {
	if env == nil {
		return DefaultMessage, nil
	}

	message := DefaultMessage
	if env.Message != nil {
		message = *env.Message
	}

	if len(env.Data) == 0 {
		return message, nil
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &data); err != nil {
		// data is null, a string, an array, ...
		return message, nil
	}

	fields := make(map[string]string, len(data))
	for name, raw := range data {
		var detail struct {
			Message *string `json:"message"`
		}
		if err := json.Unmarshal(raw, &detail); err != nil || detail.Message == nil {
			continue
		}
		fields[name] = *detail.Message
	}

	if len(fields) == 0 {
		return message, nil
	}
	return message, fields
}

// render joins the message and field details. Fields are ordered by name.
func render(message string, fields map[string]string) string {
	if len(fields) == 0 {
		return message
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]string, 0, len(names))
	for _, name := range names {
		details = append(details, name+": "+fields[name])
	}

	return message + " (" + strings.Join(details, ", ") + ")"
}
