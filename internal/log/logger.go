// Package log provides the application-wide logging facade. The terminal is
// owned by the TUI session, so log output goes to a file, never to stdout.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Setup points the logger at the log file. Called once at startup, before
// the terminal session begins. Failure to open the file leaves output
// discarded rather than written into the TUI's stream.
func Setup(debug bool) {
	path := filepath.Join(os.TempDir(), "burrow.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logger.SetOutput(f)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// SetOutput redirects log output; used by tests
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// F is a convenience constructor for a single logging field
func F(key string, value interface{}) logrus.Fields {
	return logrus.Fields{key: value}
}

// WithFields returns an entry carrying structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Debug logs a formatted debug message
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info logs a formatted info message
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
