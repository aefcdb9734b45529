// Package cli contains the command line interface for unitcalc.
//
// # Usage
//
//	unitcalc [flags] [repl]          # interactive calculator (default)
//	unitcalc eval '2 km + 500 m'     # evaluate lines and exit
//	unitcalc units --format yaml     # list known units
//	unitcalc init                    # write a default configuration file
//
// # Configuration
//
// Flags may also be set in the YAML configuration file (by default
// config.yaml in the user configuration directory, or the file named by
// --config). Top-level scalar keys are matched to flag names with either
// hyphens or underscores; the same file defines units and constants:
//
//	log-level: debug
//	units:
//	  - symbol: ft
//	    factor: 0.3048
//	    unit: m
//	constants:
//	  g: 9.80665 m/s^2
//
// A JSON file of flag values next to it (config.yaml.json) is also read.
// Command-line flags override both.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o unitcalc .
//
// Such a build accepts two more flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/unitcalc/pprof)
package cli
