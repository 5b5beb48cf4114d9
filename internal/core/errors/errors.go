// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Ingest errors. These never cross the Parse boundary as raised errors; the
// dispatcher folds them into a ParseReport carrying the parse_failed tag.
var (
	// ErrNoMessages indicates a decode ran to completion but yielded nothing.
	ErrNoMessages = errors.New("no messages extracted")

	// ErrUnknownFormat indicates content sniffing matched no known dialect.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrUnreadableArchive indicates a container could not be opened or walked.
	ErrUnreadableArchive = errors.New("unreadable archive")

	// ErrNoHeader indicates a CSV export had no recognizable header row.
	ErrNoHeader = errors.New("no recognizable header row")
)

// Validation errors.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
