package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrymomot/envkit/pkg/primitive"
)

var (
	// ErrAlreadyIngested is returned by Ingest once a previous call succeeded.
	ErrAlreadyIngested = errors.New("configuration has already been ingested")

	// ErrNotIngested is returned by Instance before a successful Ingest.
	ErrNotIngested = errors.New("cannot obtain configuration instance before ingestion")

	// ErrMissingConfigurationFile is returned when the source file does not exist.
	ErrMissingConfigurationFile = errors.New("configuration file not found")

	// ErrConfigurationFilePermission is returned when the source exists but cannot be read.
	ErrConfigurationFilePermission = errors.New("insufficient permissions to read configuration file")

	// ErrUnknownConfigurationFile covers every other ingestion failure.
	ErrUnknownConfigurationFile = errors.New("unknown error loading configuration file")

	// ErrMissingConfiguration is returned when a schema key is absent from the store.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// Coercion failures, re-exported so callers only need this package.
	ErrInvalidNumber        = primitive.ErrInvalidNumber
	ErrUnsupportedPrimitive = primitive.ErrUnsupportedPrimitive
)

// Diagnostic codes recognized when classifying loader failures.
const (
	CodeNotExist         = "ENOENT"
	CodePermissionDenied = "EACCES"
)

// AlreadyIngestedError carries the path of the rejected duplicate call.
type AlreadyIngestedError struct {
	Path string
}

func (e *AlreadyIngestedError) Error() string {
	return fmt.Sprintf("configuration has already been ingested, duplicate call attempted with path: %s", e.Path)
}

func (e *AlreadyIngestedError) Unwrap() error { return ErrAlreadyIngested }

// MissingConfigurationFileError reports an absent source file.
type MissingConfigurationFileError struct {
	Path string
	Err  error
}

func (e *MissingConfigurationFileError) Error() string {
	return fmt.Sprintf("configuration file was not found at path: %s", e.Path)
}

func (e *MissingConfigurationFileError) Unwrap() []error { return unwrapWith(ErrMissingConfigurationFile, e.Err) }

// ConfigurationFilePermissionError reports a source file that exists but is unreadable.
type ConfigurationFilePermissionError struct {
	Path string
	Err  error
}

func (e *ConfigurationFilePermissionError) Error() string {
	return fmt.Sprintf("insufficient permissions to read configuration file at path: %s, message: %s", e.Path, message(e.Err))
}

func (e *ConfigurationFilePermissionError) Unwrap() []error {
	return unwrapWith(ErrConfigurationFilePermission, e.Err)
}

// UnknownConfigurationFileError reports any other loader or store failure.
type UnknownConfigurationFileError struct {
	Path string
	Err  error
}

func (e *UnknownConfigurationFileError) Error() string {
	return fmt.Sprintf("an unknown error occurred while loading the configuration file at path: %s, message: %s", e.Path, message(e.Err))
}

func (e *UnknownConfigurationFileError) Unwrap() []error {
	return unwrapWith(ErrUnknownConfigurationFile, e.Err)
}

// MissingConfigurationError names the schema key absent from the store.
type MissingConfigurationError struct {
	Key string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: '%s'", e.Key)
}

func (e *MissingConfigurationError) Unwrap() error { return ErrMissingConfiguration }

// Diagnostic is implemented by loader errors that carry a machine-readable
// code such as ENOENT or EACCES.
type Diagnostic interface {
	error
	Code() string
}

// diagnosticCode extracts the classification code from a loader error.
// An explicit Diagnostic wins; otherwise fs sentinels are mapped to their
// POSIX names. The second result is false when no code could be found.
func diagnosticCode(err error) (string, bool) {
	var d Diagnostic
	if errors.As(err, &d) {
		return d.Code(), true
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotExist, true
	case errors.Is(err, fs.ErrPermission):
		return CodePermissionDenied, true
	}
	return "", false
}

// classify maps a loader failure for path onto the ingestion error taxonomy.
func classify(path string, err error) error {
	code, ok := diagnosticCode(err)
	if !ok {
		return &UnknownConfigurationFileError{Path: path, Err: err}
	}

	switch code {
	case CodeNotExist:
		return &MissingConfigurationFileError{Path: path, Err: err}
	case CodePermissionDenied:
		return &ConfigurationFilePermissionError{Path: path, Err: err}
	default:
		return &UnknownConfigurationFileError{Path: path, Err: err}
	}
}

func unwrapWith(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

func message(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}

func IsAlreadyIngestedError(err error) bool {
	var e *AlreadyIngestedError
	return errors.As(err, &e)
}

func IsMissingConfigurationError(err error) bool {
	var e *MissingConfigurationError
	return errors.As(err, &e)
}
