// Package cmd implements the unitcalc subcommands: repl, eval, units and
// init.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "configFile"

	// HistoryIdentifier is the kong variable identifier containing the path
	// to the REPL history file.
	HistoryIdentifier = "history"
)
