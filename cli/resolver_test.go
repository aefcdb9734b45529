package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve(t *testing.T) {
	const doc = `
log-level: debug
log_format: json
log-pretty: false
count: 3
ratio: 0.5
units:
  - symbol: ft
    factor: 0.3048
    unit: m
constants:
  g: 9.80665 m/s^2
`

	res, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"},
		{"log-pretty", false},
		{"count", "3"},
		{"ratio", "0.5"},
		{"units", nil},
		{"constants", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := res.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.flag, err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	res, err := resolve(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if got, _ := res.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "log-level"}}); got != nil {
		t.Errorf("Resolve() = %v, want nil", got)
	}
}

func TestResolveInvalid(t *testing.T) {
	if _, err := resolve(strings.NewReader("log-level: [unterminated")); err == nil {
		t.Error("resolve() error = nil, want error")
	}
}

// TestResolveKong checks that config values reach the parsed flags and that
// command-line flags take precedence.
func TestResolveKong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(path, []byte("name: fromfile\nsize: 7\nverbose: true\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	type app struct {
		Name    string
		Size    int
		Verbose bool
	}

	tests := []struct {
		name string
		args []string
		want app
	}{
		{"file", nil, app{"fromfile", 7, true}},
		{"override", []string{"--name=flag", "--size=1"}, app{"flag", 1, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app

			parser, err := kong.New(&got, kong.Configuration(resolve, path))
			if err != nil {
				t.Fatal(err)
			}

			if _, err := parser.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("parsed = %+v, want %+v", got, tt.want)
			}
		})
	}
}
