package exporter

import (
	"errors"
	"fmt"

	"github.com/nao1215/seoreport/internal/document"
)

// Kind classifies export failures for consistent handling and logging.
type Kind string

const (
	// KindMissingData means there were no analysis results to export.
	KindMissingData Kind = "missing_data"
	// KindSectionBuild means a document section could not be built.
	KindSectionBuild Kind = "section_build"
	// KindLayoutBuild means the layout engine failed to render the document.
	KindLayoutBuild Kind = "layout_build"
	// KindOutputVerification means the output file is missing after rendering.
	KindOutputVerification Kind = "output_verification"
	// KindOutput means no writable output location could be prepared.
	KindOutput Kind = "output"
)

// Sentinel errors, one per Kind, for errors.Is checks.
var (
	// ErrMissingData is returned when the results are absent or empty.
	ErrMissingData = errors.New("no analysis data available")

	// ErrSectionBuild is the same sentinel the document assembler wraps, so
	// it matches both an *Error and a bare *document.SectionError.
	ErrSectionBuild = document.ErrSectionBuild

	// ErrLayoutBuild is returned when rendering the document fails.
	ErrLayoutBuild = errors.New("layout build failed")

	// ErrOutputVerification is returned when the written file cannot be found.
	ErrOutputVerification = errors.New("output file verification failed")

	// ErrOutput is returned when neither the reports directory nor the
	// fallback directory is writable.
	ErrOutput = errors.New("output location unavailable")
)

var kindSentinels = map[Kind]error{
	KindMissingData:        ErrMissingData,
	KindSectionBuild:       ErrSectionBuild,
	KindLayoutBuild:        ErrLayoutBuild,
	KindOutputVerification: ErrOutputVerification,
	KindOutput:             ErrOutput,
}

// Error is the single user-facing error returned by Export.
// It carries the failure category and whatever context is known.
type Error struct {
	// Kind is the failure category.
	Kind Kind

	// Message describes what went wrong.
	Message string

	// Section is the failing section for KindSectionBuild.
	Section string

	// Path is the output path, when one was resolved.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "failed to generate report: " + e.Message
	if e.Section != "" {
		msg += fmt.Sprintf(" (section %s)", e.Section)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %s)", e.Path)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the Kind of the first *Error in err's chain.
// ok is false when err carries no *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
