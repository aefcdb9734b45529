// Package log provides a concurrency-safe structured logger built on
// [log/slog].
//
// A [Logger] is configured at creation time with functional options and can
// be derived from another logger with [Logger.Wrap] or [Logger.With]:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Debug("evaluate", slog.String("expr", "2 + 3"))
//
// The zero Logger discards everything, which lets packages accept a Logger
// option without requiring one.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Trace is below slog's Debug and is used for
// step-by-step evaluation output.
//
// # Formats
//
// [FormatJSON] and [FormatText] select the slog JSON and text handlers. With
// [WithPretty], text output is colorized with lipgloss styles.
//
// # Default logger
//
// Package-level functions such as [Debug] and [ErrorContext] log through a
// default logger writing to standard error, reconfigured with [Config].
package log
