// Package errors provides standardized error handling for the burrow
// application. It defines common error types, constants, and helper functions
// for consistent error creation, wrapping, and handling across the
// application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrNotATerminal = NewTerminalError("not connected to a terminal", NotATerminal, nil)
	ErrFileNotFound = NewFileError("file not found", "", FileNotFound, nil)
	ErrFileAccess   = NewFileError("file access denied", "", FileAccessDenied, nil)
	ErrPathTooLong  = NewFileError("path exceeds maximum length", "", PathTooLong, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Terminal error kinds
	NotATerminal
	TerminalQueryFailed
	TerminalSetupFailed
	// File error kinds
	FileNotFound
	FileAccessDenied
	PathTooLong
	DeleteFailed
	NotADirectory
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// New creates a plain application error
func New(msg string) *ApplicationError {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a formatted application error
func Newf(format string, args ...interface{}) *ApplicationError {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// Wrap wraps an error with a message. Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: Unknown}
}

// Wrapf wraps an error with a formatted message. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: Unknown}
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

// TerminalError represents errors from terminal session setup and teardown.
// These are fatal at startup: the process must exit before any terminal
// state has been mutated.
type TerminalError struct {
	ApplicationError
}

// NewTerminalError creates a new terminal error
func NewTerminalError(msg string, kind ErrorKind, err error) *TerminalError {
	return &TerminalError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
	}
}

// IsTerminalError checks if the error is a terminal error
func IsTerminalError(err error) bool {
	var termErr *TerminalError
	return errors.As(err, &termErr)
}

// FileError represents errors related to file operations
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

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsDeleteFailed checks if the error is a delete failure
func IsDeleteFailed(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == DeleteFailed
	}
	return false
}

// IsPathTooLong checks if the error is a path length overflow
func IsPathTooLong(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == PathTooLong
	}
	return false
}
