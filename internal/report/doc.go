// Package report lays out assembled documents in different output formats.
//
// This package contains writers for the following formats:
//   - PDFWriter: Paginated PDF for distribution to site owners
//   - MarkdownWriter: Markdown for documentation and sharing
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: We separate layout from assembly (which is in the
// document package) so the section builders never deal with pagination,
// fonts or page sizes. This allows adding new output formats without
// modifying the report contents.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
