package profile

import (
	"slices"
	"testing"
)

func TestProfiler_Start_EmptyMode(t *testing.T) {
	s := Profiler{Path: t.TempDir()}.Start()

	if _, ok := s.(ignore); !ok {
		t.Errorf("expected no-op stopper, got %T", s)
	}

	s.Stop()
}

func TestProfiler_Start_UnknownMode(t *testing.T) {
	s := Profiler{Mode: "bogus", Path: t.TempDir(), Quiet: true}.Start()

	if _, ok := s.(ignore); !ok {
		t.Errorf("expected no-op stopper, got %T", s)
	}

	s.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if !Enabled {
		if len(modes) != 0 {
			t.Errorf("expected no modes without %s tag, got %v", Tag, modes)
		}

		return
	}

	if !slices.IsSorted(modes) || !slices.Contains(modes, "cpu") {
		t.Errorf("unexpected modes: %v", modes)
	}
}
