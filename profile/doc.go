// Package profile provides optional runtime profiling for unitcalc.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	./unitcalc --pprof-mode cpu eval "2 ^ 10"
//	go tool pprof ./unitcalc ~/.cache/unitcalc/pprof/cpu.pprof
//
// Without the tag [Enabled] is false, [Modes] is empty and
// [Profiler.Start] returns a no-op.
//
// The pprof build also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile
