// Package display renders command results for the terminal.
//
// It supports two output formats: colored text for people and JSON for
// scripts. All results go to the output writer and failures go to the
// error writer.
package display

import (
	"io"
	"time"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/publish"
	"github.com/0xmhha/snipet/pkg/session"
)

// Format represents an output format.
type Format string

const (
	// FormatText displays results as styled text.
	FormatText Format = "text"

	// FormatJSON displays results as one JSON object per result.
	FormatJSON Format = "json"
)

// Hint is a follow-up suggestion shown with a failure.
type Hint struct {
	// Text is the suggestion itself.
	Text string

	// Command is an optional command line, rendered after Text.
	Command string
}

// Printer renders the outcome of a command.
type Printer interface {
	// Step announces a request that is about to be made. The next
	// result or failure completes it.
	Step(action string) error

	// Failed renders a failed command with optional hints.
	Failed(err error, hints ...Hint) error

	// Registered renders a newly created account.
	Registered(account *api.AccountSummary) error

	// LoggedIn renders a saved session.
	LoggedIn(sess *session.Session, sessionPath string) error

	// SessionInfo renders the persisted session.
	SessionInfo(sess *session.Session, sessionPath string) error

	// LoggedOut renders a cleared session.
	LoggedOut() error

	// Published renders a created snippet.
	Published(res *publish.Result) error
}

// Config contains printer configuration.
type Config struct {
	// Format specifies the output format.
	// Default: FormatText.
	Format Format

	// NoColor disables styling in text output.
	// Default: false.
	NoColor bool

	// Out receives results.
	Out io.Writer

	// Err receives failures.
	Err io.Writer

	// Now returns the current time, used to mark expired tokens.
	// Default: time.Now.
	Now func() time.Time
}
