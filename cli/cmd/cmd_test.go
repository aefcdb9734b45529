package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/unitcalc/config"
)

func TestBuildSourceFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		return path
	}

	a := write("a.calc", "x = 1\n")
	b := write("b.calc", "y = 2\n")

	link := filepath.Join(dir, "link.calc")
	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(mustGetwd(t), a)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    string
		isNil   bool
	}{
		{name: "empty", sources: nil, isNil: true},
		{name: "single", sources: []string{a}, want: "x = 1\n"},
		{name: "ordered", sources: []string{b, a}, want: "y = 2\nx = 1\n"},
		{name: "duplicate path", sources: []string{a, a, b}, want: "x = 1\ny = 2\n"},
		{name: "relative duplicate", sources: []string{a, rel}, want: "x = 1\n"},
		{name: "symlink duplicate", sources: []string{a, link}, want: "x = 1\n"},
		{name: "missing skipped", sources: []string{filepath.Join(dir, "nope"), b}, want: "y = 2\n"},
		{name: "all missing", sources: []string{filepath.Join(dir, "nope")}, isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := buildSourceFiles(tt.sources)
			if tt.isNil {
				if src != nil {
					t.Fatalf("buildSourceFiles(%q) = %v, want nil", tt.sources, src)
				}

				return
			}

			if src == nil || src.IsZero() {
				t.Fatalf("buildSourceFiles(%q) is empty", tt.sources)
			}

			if src.Stdin() != nil {
				t.Error("Stdin() != nil without \"-\"")
			}

			data, err := io.ReadAll(src)
			if err != nil {
				t.Fatal(err)
			}

			if got := string(data); got != tt.want {
				t.Errorf("read %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSourceFilesStdin(t *testing.T) {
	src := buildSourceFiles([]string{"-", "-", "-"})
	if src == nil {
		t.Fatal("buildSourceFiles(stdin) = nil")
	}

	if src.Stdin() != os.Stdin {
		t.Error("Stdin() is not os.Stdin")
	}

	if !src.IsZero() {
		t.Error("stdin alone should have no regular files")
	}
}

func TestConfigContext(t *testing.T) {
	if got := configFrom(t.Context()); got.Units != nil || got.Constants != nil {
		t.Errorf("configFrom(empty) = %+v, want zero", got)
	}

	ctx := WithConfig(t.Context(), config.Default())

	session, err := newSession(ctx)
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}

	if _, ok := session.Lookup("g"); !ok {
		t.Error("constant g is not bound")
	}

	if _, ok := session.Registry().Lookup("ft"); !ok {
		t.Error("unit ft is not defined")
	}

	if kongContextFrom(ctx) != nil {
		t.Error("kongContextFrom() != nil without WithContext")
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	file := config.Default()
	file.Units = append(file.Units, config.Unit{Symbol: "zz", Factor: "0"})

	_, err := newSession(WithConfig(t.Context(), file))
	if err == nil {
		t.Fatal("newSession() error = nil, want error")
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	return wd
}
