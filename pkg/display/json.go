package display

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/publish"
	"github.com/0xmhha/snipet/pkg/session"
)

// jsonPrinter renders results as JSON objects.
type jsonPrinter struct {
	config Config
}

type failureOutput struct {
	Error string   `json:"error"`
	Hints []string `json:"hints,omitempty"`
}

type sessionOutput struct {
	Status       string     `json:"status,omitempty"`
	Email        string     `json:"email"`
	Server       string     `json:"server"`
	UserID       string     `json:"user_id"`
	TokenPreview string     `json:"token_preview,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Expired      bool       `json:"expired,omitempty"`
	SessionFile  string     `json:"session_file"`
}

type registeredOutput struct {
	Status string              `json:"status"`
	User   *api.AccountSummary `json:"user"`
}

type publishedOutput struct {
	Status string `json:"status"`
	*publish.Result
}

type statusOutput struct {
	Status string `json:"status"`
}

func (p *jsonPrinter) encode(failure bool, v interface{}) error {
	w := p.config.Out
	if failure {
		w = p.config.Err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Step implements Printer.Step. JSON output has no progress lines.
func (p *jsonPrinter) Step(string) error {
	return nil
}

// Failed implements Printer.Failed.
func (p *jsonPrinter) Failed(err error, hints ...Hint) error {
	out := failureOutput{Error: err.Error()}
	for _, h := range hints {
		out.Hints = append(out.Hints, strings.TrimSpace(h.Text+" "+h.Command))
	}
	return p.encode(true, out)
}

// Registered implements Printer.Registered.
func (p *jsonPrinter) Registered(account *api.AccountSummary) error {
	return p.encode(false, registeredOutput{Status: "registered", User: account})
}

// LoggedIn implements Printer.LoggedIn.
func (p *jsonPrinter) LoggedIn(sess *session.Session, sessionPath string) error {
	return p.encode(false, sessionOutput{
		Status:      "logged_in",
		Email:       sess.Identity,
		Server:      sess.ServerURL,
		UserID:      sess.SubjectID,
		SessionFile: sessionPath,
	})
}

// SessionInfo implements Printer.SessionInfo.
func (p *jsonPrinter) SessionInfo(sess *session.Session, sessionPath string) error {
	out := sessionOutput{
		Email:        sess.Identity,
		Server:       sess.ServerURL,
		UserID:       sess.SubjectID,
		TokenPreview: sess.Preview(),
		SessionFile:  sessionPath,
	}

	if exp, err := sess.ExpiresAt(); err == nil {
		utc := exp.UTC()
		out.ExpiresAt = &utc
		out.Expired = p.config.Now().After(exp)
	}

	return p.encode(false, out)
}

// LoggedOut implements Printer.LoggedOut.
func (p *jsonPrinter) LoggedOut() error {
	return p.encode(false, statusOutput{Status: "logged_out"})
}

// Published implements Printer.Published.
func (p *jsonPrinter) Published(res *publish.Result) error {
	return p.encode(false, publishedOutput{Status: "published", Result: res})
}
