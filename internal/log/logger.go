// Package log is the leveled, structured logger shared by every wofiles
// package. Package-level helpers log through a process-wide logger that can
// be reconfigured with Configure; Logger values carry structured fields.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"wofiles/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out  io.Writer
	json bool
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// Logger wraps a logrus entry so fields accumulate through With.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger writing text lines to stderr unless options
// say otherwise.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetOutput(o.out)
	// Debug filtering happens in Debug/Debugf so SetDebug applies to
	// loggers that already exist.
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			DisableQuote:    true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &Logger{entry: logrus.NewEntry(base)}
}

// Configure replaces the process-wide logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug turns debug output on or off for every logger.
func SetDebug(debug bool) {
	isDebug = debug
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return isDebug
}

// With returns a child logger carrying the extra fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Info(msg string) { l.entry.Info(msg) }

func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *Logger) Warn(msg string) { l.entry.Warn(msg) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *Logger) Error(msg string) { l.entry.Error(msg) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug logs only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// LogWithFields returns the global logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and, for application errors, its kind and
// subject (path, theme file or config parameter).
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", nil))
	}

	fields := []Field{F("error", err.Error())}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		fields = append(fields, F("error_kind", kind.String()))
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var themeErr *errors.ThemeError
	if errors.As(err, &themeErr) && themeErr.File() != "" {
		fields = append(fields, F("theme_file", themeErr.File()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}

	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a formatted message when debug output is enabled.
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Debugf is an alias of Debug kept for call sites that prefer the f suffix.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a formatted error.
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Errorf logs a formatted error.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
