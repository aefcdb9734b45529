package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", line, err)
	}

	return m
}

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn))

	logger.Info("info message")

	if buf.Len() > 0 {
		t.Errorf("info message logged at warn level: %s", buf.String())
	}

	logger.Warn("warn message")

	if !strings.Contains(buf.String(), "warn message") {
		t.Error("warn message not logged at warn level")
	}
}

func TestLogger_Trace_WritesNamedLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace))
	logger.TraceContext(t.Context(), "step", slog.Int("depth", 2))

	m := decode(t, buf.Bytes())
	if m["level"] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", m["level"])
	}

	if m["depth"] != float64(2) {
		t.Errorf("expected depth 2, got %v", m["depth"])
	}
}

func TestLogger_WithTimeLayout(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		hasTime bool
	}{
		{"rfc3339", "RFC3339", true},
		{"kitchen", "Kitchen", true},
		{"custom", "15:04", true},
		{"none", "none", false},
		{"blank", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			Make(&buf, WithTimeLayout(tt.layout)).Info("test")

			_, ok := decode(t, buf.Bytes())["time"]
			if ok != tt.hasTime {
				t.Errorf("time present = %v, want %v: %s", ok, tt.hasTime, buf.String())
			}
		})
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true)).Info("test message")

	src, ok := decode(t, buf.Bytes())["source"].(map[string]any)
	if !ok {
		t.Fatalf("expected source object, got %s", buf.String())
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("expected caller in log_test.go, got %v", src["file"])
	}
}

func TestLogger_WithFormat(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithFormat(FormatText)).Info("hello", slog.String("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "k=v") {
		t.Errorf("unexpected text output: %s", out)
	}

	if strings.HasPrefix(out, "{") {
		t.Errorf("text format produced JSON: %s", out)
	}
}

func TestLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
		WithLevel(LevelDebug),
	).With(slog.String("component", "calc"))

	logger.Debug("evaluate", slog.Int("operands", 3), slog.Bool("group", false))

	out := buf.String()
	for _, want := range []string{"DEBUG", "evaluate", "component=", "calc", "operands=", "3", "group="} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q: %s", want, out)
		}
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf).With(slog.String("session", "a1")).Info("bound")

	if m := decode(t, buf.Bytes()); m["session"] != "a1" {
		t.Errorf("expected session attribute, got %v", m)
	}
}

func TestLogger_Wrap_OverridesOptions(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("Wrap mutated the original logger")
	}

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not keep the original output")
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var logger Logger

	logger.Info("discarded")
	logger.TraceContext(t.Context(), "discarded")

	if logger.Enabled(t.Context(), LevelError) {
		t.Error("zero logger should not be enabled")
	}

	if got := logger.With(slog.String("k", "v")); got.Logger != nil {
		t.Error("With on zero logger should stay zero")
	}

	var buf bytes.Buffer

	logger.Wrap(WithOutput(&buf)).Info("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Error("Wrap on zero logger should produce a working logger")
	}
}

func TestLogger_ConcurrentCalls(t *testing.T) {
	var buf syncBuffer

	logger := Make(&buf)

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.Info("concurrent", slog.Int("i", i))
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 50 {
		t.Errorf("expected 50 lines, got %d", got)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestPackage_DefaultLogger(t *testing.T) {
	prev := Default()

	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = prev
		defaultMu.Unlock()
	})

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelDebug), WithFormat(FormatJSON))

	DebugContext(t.Context(), "package debug")
	Warn("package warn")

	out := buf.String()
	if !strings.Contains(out, "package debug") || !strings.Contains(out, "package warn") {
		t.Errorf("default logger output incomplete: %s", out)
	}

	if Default().Level() != LevelDebug {
		t.Errorf("Config did not update the default level")
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Make(bytes.NewBuffer(nil))

	for b.Loop() {
		logger.Info("benchmark", slog.Int("n", 1))
	}
}
