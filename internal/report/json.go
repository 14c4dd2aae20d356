package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/seoreport/internal/document"
	"github.com/nao1215/seoreport/internal/model"
)

// JSONWriter outputs documents in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version wraps the document in a JSONReport when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion wraps the output in a JSONReport carrying the tool version.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in JSON format.
func (w *JSONWriter) Write(doc *document.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}
	if w.version != "" {
		return w.writeJSON(NewJSONReport(doc, w.version))
	}
	return w.writeJSON(doc)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport wraps a document with metadata about the producing tool.
//
// Design decision: We wrap the document rather than adding fields to
// document.Document because the version describes the writer, not the
// report contents.
type JSONReport struct {
	// Version is the seoreport version that generated this report.
	Version string `json:"version"`

	// Summary is the classification for quick access.
	Summary *model.Summary `json:"summary,omitempty"`

	// Document is the assembled report.
	Document *document.Document `json:"document"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(doc *document.Document, version string) *JSONReport {
	return &JSONReport{
		Version:  version,
		Summary:  doc.Summary,
		Document: doc,
	}
}
