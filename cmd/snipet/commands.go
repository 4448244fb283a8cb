package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/display"
	"github.com/0xmhha/snipet/pkg/publish"
)

// Command-line validation errors.
var (
	errEmailRequired    = errors.New("--email is required")
	errNameRequired     = errors.New("--name is required")
	errPasswordRequired = errors.New("--password is required when stdin is not a terminal")
	errNoInput          = errors.New("no input provided, pipe content to snipet")
)

// Hints shown with common failures.
var (
	loginHint = display.Hint{
		Text:    "First run:",
		Command: "snipet login --email <EMAIL> --password <PASSWORD>",
	}

	loginFailedHints = []display.Hint{
		{Text: "Make sure you're using a user account, not the admin account."},
		{Text: "To create a new user:", Command: "snipet register --email EMAIL --password PASSWORD --name NAME"},
	}

	titleHints = []display.Hint{
		{Text: "Use:", Command: `cat <file> | snipet --title "Your Title"`},
		{Text: "Or run", Command: "snipet --help"},
	}

	inputHints = []display.Hint{
		{Command: `cat file.rs | snipet --title "My Snippet"`},
		{Command: `echo 'console.log(1)' | snipet --title "Quick Test"`},
	}
)

// publishOptions are the flags of the publish mode.
type publishOptions struct {
	title       string
	description string
	language    string
	visibility  string
	file        string
}

// bindPublishFlags binds publish flags, keeping values already parsed.
func bindPublishFlags(fs *pflag.FlagSet, o *publishOptions) {
	fs.StringVarP(&o.title, "title", "t", o.title, "snippet title")
	fs.StringVarP(&o.description, "desc", "d", o.description, "snippet description")
	fs.StringVarP(&o.language, "lang", "l", o.language, "language tag (detected when omitted)")
	fs.StringVarP(&o.visibility, "visibility", "v", o.visibility, "public or private")
	fs.StringVarP(&o.file, "file", "f", o.file, "read the snippet from a file instead of stdin")
}

// publishCommand publishes a snippet read from stdin or a file.
type publishCommand struct {
	opts publishOptions
}

func (c *publishCommand) bind(fs *pflag.FlagSet) {
	bindPublishFlags(fs, &c.opts)
}

// Execute runs the publish command.
func (c *publishCommand) Execute(a *app) error {
	if strings.TrimSpace(c.opts.title) == "" {
		return withHints(api.ErrTitleRequired, titleHints...)
	}

	if c.opts.file == "" {
		if _, ok := a.stdinTerminal(); ok {
			return withHints(errNoInput, inputHints...)
		}
	}

	sess, ok := a.store.Load()
	if !ok || !sess.Valid() {
		return withHints(publish.ErrNotLoggedIn, loginHint)
	}

	code, err := c.readCode(a)
	if err != nil {
		return err
	}

	req := publish.Request{
		Title:       c.opts.title,
		Language:    c.opts.language,
		Description: c.opts.description,
		Visibility:  c.opts.visibility,
		Code:        code,
		Filename:    c.opts.file,
	}

	// Local validation failures are reported without a progress line.
	if _, err := publish.Submission(sess, req); err != nil {
		return err
	}

	publisher := publish.New(publish.Config{WebURL: a.config.WebURL}, a.client, a.logger)

	_ = a.printer.Step("📤 Posting snippet...")
	res, err := publisher.Publish(context.Background(), sess, req)
	if err != nil {
		return err
	}

	return a.printer.Published(res)
}

// readCode reads the whole snippet body.
func (c *publishCommand) readCode(a *app) (string, error) {
	if c.opts.file != "" {
		data, err := os.ReadFile(c.opts.file) // nolint:gosec
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", c.opts.file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(a.streams.in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// serverOption resolves the --server flag against configuration.
func serverOption(a *app, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.config.Server
}

// registerCommand creates a user account.
type registerCommand struct {
	email    string
	password string
	name     string
	server   string
}

func (c *registerCommand) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.email, "email", "e", "", "account email")
	fs.StringVarP(&c.password, "password", "p", "", "account password (prompted when omitted)")
	fs.StringVarP(&c.name, "name", "n", "", "display name")
	fs.StringVarP(&c.server, "server", "s", "", "server URL")
}

// Execute runs the register command.
func (c *registerCommand) Execute(a *app) error {
	if c.email == "" {
		return errEmailRequired
	}
	if c.name == "" {
		return errNameRequired
	}

	password, err := a.password(c.password)
	if err != nil {
		return err
	}

	_ = a.printer.Step("📝 Registering new user...")
	account, err := a.client.Register(context.Background(), c.email, password, c.name, serverOption(a, c.server))
	if err != nil {
		return err
	}

	return a.printer.Registered(account)
}

// loginCommand authenticates and saves the session.
type loginCommand struct {
	email    string
	password string
	server   string
}

func (c *loginCommand) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.email, "email", "e", "", "account email")
	fs.StringVarP(&c.password, "password", "p", "", "account password (prompted when omitted)")
	fs.StringVarP(&c.server, "server", "s", "", "server URL")
}

// Execute runs the login command.
func (c *loginCommand) Execute(a *app) error {
	if c.email == "" {
		return errEmailRequired
	}

	password, err := a.password(c.password)
	if err != nil {
		return err
	}

	_ = a.printer.Step("🔐 Logging in...")
	sess, err := a.client.Authenticate(context.Background(), c.email, password, serverOption(a, c.server))
	if err != nil {
		return withHints(err, loginFailedHints...)
	}

	if err := a.store.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return a.printer.LoggedIn(sess, a.store.Path())
}

// configCommand shows the saved session.
type configCommand struct{}

func (c *configCommand) bind(*pflag.FlagSet) {}

// Execute runs the config command.
func (c *configCommand) Execute(a *app) error {
	sess, ok := a.store.Load()
	if !ok || !sess.Valid() {
		return withHints(publish.ErrNotLoggedIn, loginHint)
	}

	return a.printer.SessionInfo(sess, a.store.Path())
}

// logoutCommand removes the saved session.
type logoutCommand struct{}

func (c *logoutCommand) bind(*pflag.FlagSet) {}

// Execute runs the logout command.
func (c *logoutCommand) Execute(a *app) error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	return a.printer.LoggedOut()
}
