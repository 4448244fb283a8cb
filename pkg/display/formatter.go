package display

import (
	"io"
	"os"
	"time"
	"unicode"
	"unicode/utf8"
)

// New creates a printer based on configuration.
func New(cfg Config) Printer {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	switch cfg.Format {
	case FormatJSON:
		return &jsonPrinter{config: cfg}
	case FormatText:
		fallthrough
	default:
		return newTextPrinter(cfg)
	}
}

// capitalize upper-cases the first letter of an error message.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// write writes s to w in one call.
func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
