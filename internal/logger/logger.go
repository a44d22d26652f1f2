package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Logger defines the common logging interface used throughout the application.
// It provides a standardized way to emit log messages at different levels of importance,
// with a clear separation between internal (debug) logs and user-facing messages.
//
// The interface is designed to handle both internal logging needs (Info, Warning, Error)
// and user communication (InfoToUser, WarningToUser, Success, StatusMessage).
type Logger interface {
	// Private logging methods (typically written only to log file)

	// Info logs an informational message for debugging purposes.
	// These messages are only written to the log file.
	//
	// The format string follows fmt.Printf style formatting.
	Info(format string, args ...interface{})

	// Warning logs a warning message for debugging purposes.
	// These messages indicate potential issues that are not critical failures.
	// They are shown to users only when verbose mode is enabled.
	//
	// The format string follows fmt.Printf style formatting.
	Warning(format string, args ...interface{})

	// Error logs an error message. Errors are always shown on stderr.
	//
	// The format string follows fmt.Printf style formatting.
	Error(format string, args ...interface{})

	// User-facing logging methods (typically written to both file and stdout)

	// InfoToUser logs an informational message intended for users.
	// These messages are shown unless verbose output is disabled.
	//
	// The format string follows fmt.Printf style formatting.
	InfoToUser(format string, args ...interface{})

	// WarningToUser logs a warning message intended for users.
	// These messages are always shown regardless of verbose settings.
	//
	// The format string follows fmt.Printf style formatting.
	WarningToUser(format string, args ...interface{})

	// Success logs a success message to the user.
	// These messages indicate successful completion of operations and are
	// styled green on capable terminals.
	//
	// The format string follows fmt.Printf style formatting.
	Success(format string, args ...interface{})

	// StatusMessage prints a plain status line to the user without logging it.
	//
	// The format string follows fmt.Printf style formatting.
	StatusMessage(format string, args ...interface{})

	// Close flushes and closes the log file, if one is open.
	Close() error
}

// styles holds the terminal styles for user-facing lines. Each style is bound
// to a renderer for the writer it prints to, so redirected output stays plain.
type styles struct {
	info    lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
}

func newStyles(stdout, stderr io.Writer) styles {
	out := lipgloss.NewRenderer(stdout)
	errOut := lipgloss.NewRenderer(stderr)
	return styles{
		info:    out.NewStyle().Foreground(lipgloss.Color("12")),
		warning: out.NewStyle().Foreground(lipgloss.Color("11")),
		success: out.NewStyle().Foreground(lipgloss.Color("10")),
		err:     errOut.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// DefaultLogger writes structured file logs with zerolog and styled
// user-facing lines to stdout/stderr. It implements the Logger interface.
type DefaultLogger struct {
	mu      sync.Mutex
	logger  zerolog.Logger
	enabled bool
	logFile string
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	styles  styles
	file    *os.File // Store file handle for closing
}

// New creates a new Logger instance
func New(enabled bool, logFile string, verbose bool) Logger {
	return NewWithOutput(enabled, logFile, verbose, os.Stdout, os.Stderr)
}

// NewWithOutput creates a DefaultLogger with custom output writers
func NewWithOutput(enabled bool, logFile string, verbose bool, stdout, stderr io.Writer) *DefaultLogger {
	logger := zerolog.Nop()

	var file *os.File

	if enabled {
		logDir := filepath.Dir(logFile)
		if logDir != "." {
			err := os.MkdirAll(logDir, 0755)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "⚠️ Failed to create log directory: %v\n", err)
			}
		}

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			file = f
			logger = newFileLogger(f)
			_, _ = fmt.Fprintf(stdout, "🔍 Debug logging enabled. Logs will be written to: %s\n", logFile)

			logger.Info().Msg("devboot debug logging started")
		} else {
			// Fallback to stderr
			logger = newFileLogger(stderr)
			_, _ = fmt.Fprintf(stderr, "⚠️ Failed to open log file: %v, using stderr instead\n", err)
		}
	}

	return &DefaultLogger{
		logger:  logger,
		enabled: enabled,
		logFile: logFile,
		verbose: verbose,
		stdout:  stdout,
		stderr:  stderr,
		styles:  newStyles(stdout, stderr),
		file:    file,
	}
}

func newFileLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("app", "devboot").
		Int("pid", os.Getpid()).
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// Info logs an informational message (file only)
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	l.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// InfoToUser logs an informational message to both file and stdout
func (l *DefaultLogger) InfoToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info().Bool("user", true).Msg(msg)
	}

	if l.verbose {
		_, _ = fmt.Fprintln(l.stdout, l.styles.info.Render("ℹ️  "+msg))
	}
}

// Success logs a success message to both file and stdout
func (l *DefaultLogger) Success(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info().Bool("user", true).Msg(msg)
	}

	_, _ = fmt.Fprintln(l.stdout, l.styles.success.Render("✅ "+msg))
}

// Warning logs a warning message
func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn().Msg(msg)
	}

	// Always show the message to the user when verbose is on,
	// regardless of whether file logging is enabled
	if l.verbose {
		_, _ = fmt.Fprintln(l.stdout, l.styles.warning.Render("⚠️  "+msg))
	}
}

// WarningToUser logs a warning message to both file and stdout
func (l *DefaultLogger) WarningToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn().Bool("user", true).Msg(msg)
	}

	_, _ = fmt.Fprintln(l.stdout, l.styles.warning.Render("⚠️  "+msg))
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Error().Msg(msg)
	}

	// Always show errors to the user regardless of debug status
	_, _ = fmt.Fprintln(l.stderr, l.styles.err.Render("❌ "+msg))
}

// StatusMessage prints a status message to stdout only (no logging)
func (l *DefaultLogger) StatusMessage(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(l.stdout, msg)
}

// Close ensures any buffered data is written and closes open log file handles
func (l *DefaultLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		// Sync ensures any buffered data is flushed to disk before closing
		if err := l.file.Sync(); err != nil {
			return err
		}
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// SetStdout sets a custom writer for user-facing stdout messages only.
// NOTE: This does not affect where structured log messages are directed.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStdout(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
	l.styles = newStyles(l.stdout, l.stderr)
}

// SetStderr sets a custom writer for user-facing stderr messages only.
// NOTE: This does not affect where structured log messages are directed.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
	l.styles = newStyles(l.stdout, l.stderr)
}
