// Package parsererror defines the typed errors surfaced by statement parsing.
package parsererror

import "fmt"

// ParseError represents a failure to parse a specific field value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a missing input file. This is the parser's only
// hard failure mode: malformed content degrades, unreadable input errors.
type NotFoundError struct {
	FilePath string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read file: %s", e.FilePath)
}

// FileNotFoundError builds a NotFoundError for the given path.
func FileNotFoundError(filePath string) error {
	return &NotFoundError{FilePath: filePath}
}

// InvalidFormatError represents input that does not look like a bank
// statement export at all.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents required data that could not be extracted
// even though the file format itself is valid.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}
