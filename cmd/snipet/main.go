// Package main provides the snipet CLI application.
//
// Snipet publishes code snippets to a snippet backend. Pipe code into it
// with a title, or log in, register, and manage the local session with
// its subcommands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/0xmhha/snipet/pkg/api"
)

// version is set during build time.
var version = "dev"

// stdio holds the process streams a command reads and writes.
type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	streams := stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr}
	if err := run(os.Args[1:], streams); err != nil {
		os.Exit(1)
	}
}

// run executes the main application logic.
//
// Every error is rendered on the error stream before it is returned.
func run(args []string, streams stdio) error {
	var global globalOptions
	publishOpts := publishOptions{visibility: string(api.VisibilityPublic)}
	showVersion := false

	fs := newFlagSet("snipet", streams)
	fs.SetInterspersed(false)
	bindGlobalFlags(fs, &global)
	bindPublishFlags(fs, &publishOpts)
	fs.BoolVar(&showVersion, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return showUsage(streams.out)
		}
		return usageError(streams, err)
	}

	if showVersion {
		fmt.Fprintf(streams.out, "snipet %s\n", version)
		return nil
	}

	rest := fs.Args()
	command := "publish"
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	var cmd runner
	switch command {
	case "publish":
		cmd = &publishCommand{opts: publishOpts}
	case "register":
		cmd = &registerCommand{}
	case "login":
		cmd = &loginCommand{}
	case "config":
		cmd = &configCommand{}
	case "logout":
		cmd = &logoutCommand{}
	case "help":
		return showUsage(streams.out)
	default:
		return usageError(streams, fmt.Errorf("unknown command: %s", command))
	}

	sub := newFlagSet("snipet "+command, streams)
	bindGlobalFlags(sub, &global)
	cmd.bind(sub)
	if err := sub.Parse(rest); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return showUsage(streams.out)
		}
		return usageError(streams, err)
	}
	if sub.NArg() > 0 {
		return usageError(streams, fmt.Errorf("unexpected argument: %s", sub.Arg(0)))
	}

	a, err := newApp(global, streams)
	if err != nil {
		return usageError(streams, err)
	}

	if err := cmd.Execute(a); err != nil {
		a.fail(err)
		return err
	}

	return nil
}

// newFlagSet creates a flag set that reports errors instead of exiting.
func newFlagSet(name string, streams stdio) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(streams.err)
	fs.Usage = func() {}
	return fs
}

// usageError reports an error that happened before a command could run.
func usageError(streams stdio, err error) error {
	fmt.Fprintf(streams.err, "Error: %v\n", err)
	fmt.Fprintln(streams.err, "Run 'snipet help' for usage.")
	return err
}

// showUsage displays usage information.
func showUsage(w io.Writer) error {
	usage := `Snipet - publish code snippets from the command line

Usage:
  <command> | snipet --title <title> [flags]
  snipet [flags] <command> [command flags]

Commands:
  publish     Publish a snippet (default when no command is given)
  register    Create a new user account
  login       Log in and save the session
  config      Show the current session
  logout      Remove the saved session
  help        Show this help message

Publish Flags:
  -t, --title         Snippet title (required)
  -d, --desc          Snippet description
  -l, --lang          Language tag (detected when omitted)
  -v, --visibility    public or private (default: public)
  -f, --file          Read the snippet from a file instead of stdin

Register Flags:
  -e, --email         Account email (required)
  -p, --password      Account password (prompted when omitted)
  -n, --name          Display name (required)
  -s, --server        Server URL (default: from config, http://127.0.0.1:8090)

Login Flags:
  -e, --email         Account email (required)
  -p, --password      Account password (prompted when omitted)
  -s, --server        Server URL (default: from config, http://127.0.0.1:8090)

Global Flags:
  --config            Path to configuration file
  --format            Output format (text, json)
  --no-color          Disable colored output
  --verbose           Enable debug logging
  --version           Show version information

Examples:
  # Create an account and log in
  snipet register --email me@example.com --password secret123 --name Me
  snipet login --email me@example.com

  # Publish a file from stdin
  cat main.go | snipet --title "Hello world"

  # Publish a file with an explicit language and visibility
  snipet publish -f query.sql -t "Monthly report" -v private

  # Show the saved session
  snipet config

Version: %s
`

	fmt.Fprintf(w, usage, version)
	return nil
}
