package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoReportsDir is returned when the reports directory is empty.
	ErrNoReportsDir = errors.New("no reports directory specified")

	// ErrNoFallbackDir is returned when the fallback directory is empty.
	// Without it an unwritable reports directory would abort every export.
	ErrNoFallbackDir = errors.New("no fallback directory specified")

	// ErrInvalidFormat is returned for an unsupported output format.
	ErrInvalidFormat = errors.New("invalid format: must be pdf, markdown, text or json")

	// ErrInvalidPageSize is returned for an unsupported page size.
	ErrInvalidPageSize = errors.New("invalid page size: must be Letter, Legal, A3, A4 or A5")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")
)
