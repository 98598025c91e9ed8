package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

func openScores(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openScores(t)
	var out bytes.Buffer
	if err := printScores(&out, store, "memory"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet") {
		t.Errorf("empty board:\n%s", out.String())
	}

	store.SaveScore("memory", 70, 3, "run")
	out.Reset()
	if err := printScores(&out, store, "memory"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"High Scores - Memory", "70", "Furthest level: 3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintRun(t *testing.T) {
	store := openScores(t)
	store.SaveScore("memory", 30, 1, "abc")
	store.SaveScore("memory", 60, 2, "abc")

	var out bytes.Buffer
	if err := printRun(&out, store, "abc"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cleared 2 levels, best score 60") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	printRun(&out, store, "nope") //nolint:errcheck
	if !strings.Contains(out.String(), "No levels recorded") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store := openScores(t)
	store.SaveScore("memory_custom", 10, 1, "")

	var out bytes.Buffer
	if err := clearScores(&out, store, "memory_custom"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Removed 1 scores") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
