package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		wantLogs []string
		skipLogs []string
	}{
		{
			level:    "debug",
			wantLogs: []string{"debug msg", "info msg", "warn msg", "error msg"},
		},
		{
			level:    "info",
			wantLogs: []string{"info msg", "warn msg", "error msg"},
			skipLogs: []string{"debug msg"},
		},
		{
			level:    "",
			wantLogs: []string{"warn msg", "error msg"},
			skipLogs: []string{"debug msg", "info msg"},
		},
		{
			level:    "error",
			wantLogs: []string{"error msg"},
			skipLogs: []string{"debug msg", "info msg", "warn msg"},
		},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: tt.level, Format: "text", Writer: &buf})

			log.Debug("debug msg")
			log.Info("info msg")
			log.Warn("warn msg")
			log.Error("error msg")

			out := buf.String()
			for _, want := range tt.wantLogs {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, skip := range tt.skipLogs {
				if strings.Contains(out, skip) {
					t.Errorf("output contains filtered %q:\n%s", skip, out)
				}
			}
		})
	}
}

func TestLogWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "text", Writer: &buf})

	log.With("command", "login").Info("session saved", "server", "http://127.0.0.1:8090")

	out := buf.String()
	for _, want := range []string{"command=login", "msg=\"session saved\"", "server=http://127.0.0.1:8090"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Writer: &buf})

	log.Info("snippet created", "id", "s1")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if entry["msg"] != "snippet created" {
		t.Errorf("msg = %v, want %q", entry["msg"], "snippet created")
	}
	if entry["id"] != "s1" {
		t.Errorf("id = %v, want %q", entry["id"], "s1")
	}
}

func TestAutoFormatNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := resolveFormat("auto", &buf); got != "json" {
		t.Errorf("resolveFormat(auto, buffer) = %q, want json", got)
	}
	if got := resolveFormat("text", &buf); got != "text" {
		t.Errorf("resolveFormat(text) = %q, want text", got)
	}
	if got := resolveFormat("", &buf); got != "text" {
		t.Errorf("resolveFormat(\"\") = %q, want text", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGetWriter(t *testing.T) {
	if w, err := getWriter("stdout"); err != nil || w != os.Stdout {
		t.Errorf("getWriter(stdout) = %v, %v", w, err)
	}
	if w, err := getWriter(""); err != nil || w != os.Stderr {
		t.Errorf("getWriter(\"\") = %v, %v", w, err)
	}

	path := filepath.Join(t.TempDir(), "snipet.log")
	w, err := getWriter(path)
	if err != nil {
		t.Fatalf("getWriter(file) error = %v", err)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Close()
	}

	if _, err := getWriter(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("getWriter() error = nil for unwritable path")
	}
}

func TestNoop(t *testing.T) {
	log := Noop()
	log.Error("discarded", "k", "v")
	log.With("a", 1).Info("discarded")
}
