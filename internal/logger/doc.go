// Package logger provides logging facilities for the devboot application.
//
// It defines the Logger interface used throughout the application and the
// DefaultLogger implementation, which separates internal diagnostics from
// messages meant for the person running the tool.
//
// # Log Levels
//
// The logger supports the following distinct message types:
//
//   - Info: debug-only information, written to the log file
//   - Warning: potential issues, shown on stdout in verbose mode
//   - Error: failures, always shown on stderr
//   - InfoToUser: progress information, hidden by --quiet
//   - WarningToUser: important warnings, always shown
//   - Success: completed operations, always shown
//   - StatusMessage: plain lines such as dry-run command listings
//
// # File Logging
//
// When debug logging is enabled every message is also written to the log
// file as a JSON line produced by zerolog, carrying a timestamp, the level
// and the message. Console output is styled with lipgloss; styling is
// dropped automatically when the output is not a terminal.
//
// # Usage
//
//	log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
//	defer log.Close()
//
//	log.Info("resolved profile %s", path)
//	log.Success("Wrote %s", settingsPath)
//
// # Thread Safety
//
// DefaultLogger is safe for concurrent use by multiple goroutines.
package logger
