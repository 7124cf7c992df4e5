// Package errors provides standardized error handling for wofiles.
// It defines the error kinds reported by the explorer core, typed errors
// that carry the offending path, and helpers for creating and inspecting them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// NotFound: a directory or file could not be opened.
	NotFound
	// NoContent: a theme file carried no style payload.
	NoContent
	// PersistFailed: copying a theme into the managed directory failed.
	PersistFailed
	// StatFailed: per-entry metadata could not be read.
	StatFailed
	InvalidPath
	FileOperationFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind, used in log fields.
func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case NoContent:
		return "no_content"
	case PersistFailed:
		return "persist_failed"
	case StatFailed:
		return "stat_failed"
	case InvalidPath:
		return "invalid_path"
	case FileOperationFailed:
		return "file_operation_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file and directory operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ThemeError represents errors raised while parsing or storing theme files
type ThemeError struct {
	ApplicationError
	file string
}

// NewThemeError creates a new theme error
func NewThemeError(msg string, file string, kind ErrorKind, err error) *ThemeError {
	return &ThemeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		file: file,
	}
}

// Error returns the theme error message
func (e *ThemeError) Error() string {
	if e.file != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.file, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.file)
	}
	return e.ApplicationError.Error()
}

// File returns the theme file associated with the error
func (e *ThemeError) File() string {
	return e.file
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first known kind found walking err's chain, or Unknown.
// Plain Wrap/Wrapf layers are Unknown and are skipped over.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == NotFound
}

// IsNoContent checks if the error reports a theme file without payload
func IsNoContent(err error) bool {
	return err != nil && KindOf(err) == NoContent
}

// IsPersistFailed checks if the error reports a failed theme copy
func IsPersistFailed(err error) bool {
	return err != nil && KindOf(err) == PersistFailed
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
