package report

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/nao1215/seoreport/internal/document"
)

// Format is an output format.
type Format string

const (
	// FormatPDF is a paginated PDF document.
	FormatPDF Format = "pdf"
	// FormatMarkdown is a Markdown document.
	FormatMarkdown Format = "markdown"
	// FormatText is plain text for terminals.
	FormatText Format = "text"
	// FormatJSON is the assembled document as JSON.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrNilDocument is returned when a writer receives no document.
var ErrNilDocument = errors.New("document is nil")

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatText, FormatJSON}
}

// ParseFormat parses a format name. Common aliases ("md", "txt") are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", "":
		return FormatPDF, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "simple":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", ErrUnknownFormat
	}
}

// FormatFromPath infers the format from a file extension.
// The second return value is false when the extension is not recognized.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".txt":
		return FormatText, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Extension returns the file extension, including the dot, of the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	default:
		return ".pdf"
	}
}

// Writer defines the interface for report output.
// Implementations lay out an assembled document in one format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers
// with the same API.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *document.Document) (int, error)
}

// NewWriter returns the writer for a format.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatPDF:
		return NewPDFWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatText:
		return NewSimpleWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, ErrUnknownFormat
	}
}

// MultiWriter writes to multiple Writers in order.
// This is useful for writing a file while echoing a summary to the terminal.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because each format lays out the document
// differently, so the bytes cannot simply be duplicated.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the document to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(doc *document.Document) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countingWriter counts the bytes passed to an io.Writer.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
