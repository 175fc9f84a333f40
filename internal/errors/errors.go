// Package errors provides custom error types for seodraft.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyDraft        = errors.New("draft is empty")
	ErrInvalidSnapshot   = errors.New("invalid wizard snapshot")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrDownloadFailed    = errors.New("download failed")
	ErrExportFailed      = errors.New("export failed")
)

// SnapshotError represents a wizard snapshot that could not be read
type SnapshotError struct {
	Message string
	Field   string
}

func (e *SnapshotError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid wizard snapshot: %s", e.Message)
	}
	return fmt.Sprintf("invalid wizard snapshot: %s (field %q)", e.Message, e.Field)
}

// Is allows comparison with sentinel errors
func (e *SnapshotError) Is(target error) bool {
	if target == ErrInvalidSnapshot {
		return true
	}
	_, ok := target.(*SnapshotError)
	return ok
}

// NewSnapshotError creates a new SnapshotError
func NewSnapshotError(message, field string) *SnapshotError {
	return &SnapshotError{Message: message, Field: field}
}

// DownloadError represents a failed header image download
type DownloadError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *DownloadError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("download failed [%d] for %s", e.StatusCode, e.URL)
	case e.Cause != nil:
		return fmt.Sprintf("download failed for %s: %v", e.URL, e.Cause)
	default:
		return fmt.Sprintf("download failed for %s: %s", e.URL, e.Message)
	}
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}

// Is allows comparison with sentinel errors
func (e *DownloadError) Is(target error) bool {
	if target == ErrDownloadFailed {
		return true
	}
	_, ok := target.(*DownloadError)
	return ok
}

// NewDownloadError creates a new DownloadError
func NewDownloadError(message, url string) *DownloadError {
	return &DownloadError{Message: message, URL: url}
}

// NewDownloadErrorWithStatus creates a DownloadError for a non-200 response
func NewDownloadErrorWithStatus(url string, status int) *DownloadError {
	return &DownloadError{URL: url, StatusCode: status}
}

// NewDownloadNetworkError creates a DownloadError wrapping a transport failure
func NewDownloadNetworkError(url string, cause error) *DownloadError {
	return &DownloadError{URL: url, Cause: cause}
}

// ExportError represents a failure while writing an exported document
type ExportError struct {
	Format string
	Path   string
	Cause  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export %s failed: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("export %s to %s failed: %v", e.Format, e.Path, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Is allows comparison with sentinel errors
func (e *ExportError) Is(target error) bool {
	if target == ErrExportFailed {
		return true
	}
	_, ok := target.(*ExportError)
	return ok
}

// NewExportError creates a new ExportError
func NewExportError(format, path string, cause error) *ExportError {
	return &ExportError{Format: format, Path: path, Cause: cause}
}

// FormatError represents an unknown export format name
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (want html or doc)", e.Format)
}

// Is allows comparison with sentinel errors
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(format string) *FormatError {
	return &FormatError{Format: format}
}
