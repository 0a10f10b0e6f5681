package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readDebugDir concatenates every .jsonl file under dir.
func readDebugDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".jsonl" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return "", err
		}
		sb.Write(data)
	}
	return sb.String(), nil
}

func TestInit_StderrLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	slog.Info("quiet message")
	slog.Warn("loud message")

	out := buf.String()
	if strings.Contains(out, "quiet message") {
		t.Error("info logged to stderr without --verbose")
	}
	if !strings.Contains(out, "loud message") {
		t.Error("warning not logged to stderr")
	}
}

func TestInit_Verbose(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Verbose: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	slog.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug not logged with Verbose")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{JSONFormat: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	slog.Warn("structured", "key", "val")
	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) || !strings.Contains(out, `"key":"val"`) {
		t.Errorf("stderr output not JSON: %q", out)
	}
}

func TestInit_FileHandlerGetsDebug(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf, DebugDir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	slog.Debug("file only")

	entries, err := readDebugDir(dir)
	if err != nil {
		t.Fatalf("reading debug dir: %v", err)
	}
	if !strings.Contains(entries, "file only") {
		t.Error("debug record missing from file handler")
	}
	if strings.Contains(buf.String(), "file only") {
		t.Error("debug record leaked to stderr")
	}
}
