package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Base returns the internal logrus instance
func Base() *logrus.Logger {
	return logger
}

// AddHook adds a hook to the internal logrus instance
func AddHook(hook logrus.Hook) {
	logger.Hooks.Add(hook)
}

// SetLevel sets the minimum level that gets logged
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput redirects log output
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

// SetFormatter sets the log formatter
func SetFormatter(formatter logrus.Formatter) {
	logger.SetFormatter(formatter)
}

// WithField creates an entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields creates an entry with multiple fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Info logs
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Debug logs
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Error logs
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Fatal logs and exits
func Fatal(args ...interface{}) {
	logger.Fatal(args...)
}
