package profile

// Tag is the build tag that enables profiling. It is also the name of the
// profile output directory and the prefix of the profiling flags.
const Tag = "pprof"

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string // One of [Modes]
	Path  string // Output directory; empty selects the working directory
	Quiet bool   // Suppress the profiler's own log output
}

// Start begins profiling and returns a [Stopper] that ends it. If profiling
// is not compiled in or Mode is empty, Start returns a no-op.
func (p Profiler) Start() Stopper {
	if !Enabled || p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
