package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, line := range []string{"1 + 2", "x = 5 m", "  ", "1 + 2", "1 + 2"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q): %v", line, err)
		}
	}

	want := []string{"x = 5 m", "1 + 2"}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(data); got != "x = 5 m\n1 + 2\n" {
		t.Errorf("history file = %q", got)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %q, want %q", got, want)
	}
}

func TestHistoryGetLine(t *testing.T) {
	h := NewHistory("")

	if _, err := h.Write("a"); err != nil {
		t.Fatal(err)
	}

	if _, err := h.Write("b"); err != nil {
		t.Fatal(err)
	}

	if line, err := h.GetLine(0); err != nil || line != "a" {
		t.Errorf("GetLine(0) = %q, %v", line, err)
	}

	for _, i := range []int{-1, 2} {
		if _, err := h.GetLine(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetLine(%d) error = %v, want %v", i, err, ErrOutOfBounds)
		}
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}
