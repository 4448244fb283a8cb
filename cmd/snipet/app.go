package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/config"
	"github.com/0xmhha/snipet/pkg/display"
	"github.com/0xmhha/snipet/pkg/logger"
	"github.com/0xmhha/snipet/pkg/session"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// globalOptions are accepted by every command.
type globalOptions struct {
	configPath string
	format     string
	noColor    bool
	verbose    bool
}

// bindGlobalFlags binds global flags, keeping values already parsed.
func bindGlobalFlags(fs *pflag.FlagSet, g *globalOptions) {
	fs.StringVar(&g.configPath, "config", g.configPath, "path to configuration file")
	fs.StringVar(&g.format, "format", g.format, "output format (text, json)")
	fs.BoolVar(&g.noColor, "no-color", g.noColor, "disable colored output")
	fs.BoolVar(&g.verbose, "verbose", g.verbose, "enable debug logging")
}

// runner is a parsed subcommand.
type runner interface {
	// bind registers the command's flags.
	bind(fs *pflag.FlagSet)

	// Execute runs the command.
	Execute(a *app) error
}

// app holds the components shared by all commands.
type app struct {
	streams stdio
	config  *config.Config
	logger  logger.Logger
	store   session.Store
	client  *api.Client
	printer display.Printer
}

// newApp loads configuration and initializes components.
func newApp(g globalOptions, streams stdio) (*app, error) {
	cfg, err := config.NewLoader(g.configPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if g.format != "" {
		cfg.Display.Format = g.format
	}
	if g.noColor {
		cfg.Display.NoColor = true
	}
	if g.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Output: cfg.Logging.Output,
		Format: cfg.Logging.Format,
	}
	switch strings.ToLower(cfg.Logging.Output) {
	case "", "stderr":
		logCfg.Writer = streams.err
	case "stdout":
		logCfg.Writer = streams.out
	}
	log := logger.New(logCfg)

	return &app{
		streams: streams,
		config:  cfg,
		logger:  log,
		store:   session.NewStore(session.Config{Path: cfg.SessionFile}, log),
		client:  api.NewClient(api.Config{APIPath: cfg.APIPath}, log),
		printer: display.New(display.Config{
			Format:  display.Format(cfg.Display.Format),
			NoColor: cfg.Display.NoColor,
			Out:     streams.out,
			Err:     streams.err,
		}),
	}, nil
}

// hintedError carries follow-up suggestions for a failure.
type hintedError struct {
	err   error
	hints []display.Hint
}

func (e *hintedError) Error() string {
	return e.err.Error()
}

func (e *hintedError) Unwrap() error {
	return e.err
}

// withHints attaches hints to err.
func withHints(err error, hints ...display.Hint) error {
	return &hintedError{err: err, hints: hints}
}

// fail renders a command failure.
func (a *app) fail(err error) {
	var hinted *hintedError
	var hints []display.Hint
	if errors.As(err, &hinted) {
		hints = hinted.hints
	}

	if perr := a.printer.Failed(err, hints...); perr != nil {
		a.logger.Error("failed to write output", "error", perr)
	}
}

// stdinTerminal reports whether the input stream is an interactive terminal.
func (a *app) stdinTerminal() (int, bool) {
	f, ok := a.streams.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// password returns value, or prompts for it on an interactive terminal.
func (a *app) password(value string) (string, error) {
	if value != "" {
		return value, nil
	}

	fd, ok := a.stdinTerminal()
	if !ok {
		return "", errPasswordRequired
	}

	fmt.Fprint(a.streams.err, "Password: ")
	password, err := readPassword(fd)
	fmt.Fprintln(a.streams.err)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}
