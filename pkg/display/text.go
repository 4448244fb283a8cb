package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/publish"
	"github.com/0xmhha/snipet/pkg/session"
)

// timeLayout is used for token expiry times.
const timeLayout = "2006-01-02 15:04:05"

// styles holds the text styles used by textPrinter.
type styles struct {
	action  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	passed  lipgloss.Style
	failed  lipgloss.Style
	accent  lipgloss.Style
	field   lipgloss.Style
	dim     lipgloss.Style
	hint    lipgloss.Style
	title   lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer, noColor bool) styles {
	if noColor {
		plain := renderer.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain, plain, plain}
	}

	return styles{
		action:  renderer.NewStyle().Foreground(lipgloss.Color("6")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		passed:  renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failed:  renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		accent:  renderer.NewStyle().Foreground(lipgloss.Color("6")),
		field:   renderer.NewStyle().Foreground(lipgloss.Color("4")),
		dim:     renderer.NewStyle().Faint(true),
		hint:    renderer.NewStyle().Foreground(lipgloss.Color("3")),
		title:   renderer.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

// textPrinter renders results as styled text.
type textPrinter struct {
	config Config
	styles styles

	// pending is set between Step and the result that completes it.
	pending bool
}

func newTextPrinter(cfg Config) *textPrinter {
	return &textPrinter{
		config: cfg,
		styles: newStyles(lipgloss.NewRenderer(cfg.Out), cfg.NoColor),
	}
}

// Step implements Printer.Step.
func (p *textPrinter) Step(action string) error {
	p.pending = true
	return write(p.config.Out, p.styles.action.Render(action+" "))
}

// done completes a pending step.
func (p *textPrinter) done(b *strings.Builder) {
	if p.pending {
		b.WriteString(p.styles.passed.Render("Success!") + "\n")
		p.pending = false
	}
}

func (p *textPrinter) check(b *strings.Builder, format string, args ...interface{}) {
	fmt.Fprintf(b, "  %s %s\n", p.styles.success.Render("✓"), fmt.Sprintf(format, args...))
}

// Failed implements Printer.Failed.
func (p *textPrinter) Failed(err error, hints ...Hint) error {
	indent := ""
	if p.pending {
		p.pending = false
		indent = "  "
		if werr := write(p.config.Out, p.styles.failed.Render("Failed!")+"\n"); werr != nil {
			return werr
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s\n", indent, p.styles.failure.Render("✗"), capitalize(err.Error()))

	if len(hints) > 0 && indent != "" {
		b.WriteString("\n")
	}
	for _, h := range hints {
		fmt.Fprintf(&b, "  %s %s\n", p.styles.hint.Render("💡"), p.hintLine(h))
	}

	return write(p.config.Err, b.String())
}

func (p *textPrinter) hintLine(h Hint) string {
	switch {
	case h.Command == "":
		return h.Text
	case h.Text == "":
		return p.styles.accent.Render(h.Command)
	default:
		return h.Text + " " + p.styles.accent.Render(h.Command)
	}
}

// Registered implements Printer.Registered.
func (p *textPrinter) Registered(account *api.AccountSummary) error {
	var b strings.Builder
	p.done(&b)

	p.check(&b, "Created user: %s", p.styles.accent.Render(account.Email))
	b.WriteString("\n  Now login with:\n")
	fmt.Fprintf(&b, "  %s %s\n",
		p.styles.accent.Render("snipet login"),
		p.styles.dim.Render(fmt.Sprintf("--email %s --password <password>", account.Email)))

	return write(p.config.Out, b.String())
}

// LoggedIn implements Printer.LoggedIn.
func (p *textPrinter) LoggedIn(sess *session.Session, sessionPath string) error {
	var b strings.Builder
	p.done(&b)

	p.check(&b, "Logged in as: %s", p.styles.accent.Render(sess.Identity))
	p.check(&b, "Server: %s", sess.ServerURL)
	p.check(&b, "Session saved to: %s", sessionPath)

	return write(p.config.Out, b.String())
}

// SessionInfo implements Printer.SessionInfo.
func (p *textPrinter) SessionInfo(sess *session.Session, sessionPath string) error {
	var b strings.Builder
	b.WriteString(p.styles.title.Render("📋 Current Configuration:") + "\n")

	arrow := p.styles.field.Render("→")
	fmt.Fprintf(&b, "  %s Email: %s\n", arrow, sess.Identity)
	fmt.Fprintf(&b, "  %s Server: %s\n", arrow, sess.ServerURL)
	fmt.Fprintf(&b, "  %s User ID: %s\n", arrow, sess.SubjectID)
	fmt.Fprintf(&b, "  %s Token: %s\n", arrow, sess.Preview())

	exp, err := sess.ExpiresAt()
	switch {
	case err == nil:
		expires := exp.Local().Format(timeLayout)
		if p.config.Now().After(exp) {
			expires += " " + p.styles.failure.Render("(expired)")
		}
		fmt.Fprintf(&b, "  %s Expires: %s\n", arrow, expires)
	case errors.Is(err, session.ErrNoExpiry):
		fmt.Fprintf(&b, "  %s Expires: never\n", arrow)
	}

	fmt.Fprintf(&b, "  %s Session file: %s\n", arrow, p.styles.dim.Render(sessionPath))

	return write(p.config.Out, b.String())
}

// LoggedOut implements Printer.LoggedOut.
func (p *textPrinter) LoggedOut() error {
	line := p.styles.success.Render("✓") + " " + p.styles.success.Render("Logged out successfully") + "\n"
	return write(p.config.Out, line)
}

// Published implements Printer.Published.
func (p *textPrinter) Published(res *publish.Result) error {
	var b strings.Builder
	p.done(&b)

	b.WriteString("\n")
	p.check(&b, "Title: %s", p.styles.accent.Render(res.Snippet.Title))
	p.check(&b, "Language: %s", res.Language)
	p.check(&b, "Visibility: %s", res.Visibility)
	p.check(&b, "ID: %s", res.Snippet.ID)

	fmt.Fprintf(&b, "\n  %s %s\n", p.styles.accent.Render("🔗"), res.URL)

	return write(p.config.Out, b.String())
}
