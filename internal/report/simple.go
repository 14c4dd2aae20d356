package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nao1215/seoreport/internal/document"
)

// ruleWidth is the width of the section separators.
const ruleWidth = 70

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Tables are drawn by tablewriter, which handles column widths
type SimpleWriter struct {
	baseWriter

	// sections restricts the output to the named sections when non-empty.
	sections map[string]bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSections limits the output to the named sections.
func WithSections(names ...string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if len(names) == 0 {
			return
		}
		w.sections = make(map[string]bool, len(names))
		for _, n := range names {
			w.sections[n] = true
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in human-readable format.
func (w *SimpleWriter) Write(doc *document.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}

	var sb strings.Builder

	for _, section := range doc.Sections {
		if w.sections != nil && !w.sections[section.Name] {
			continue
		}
		if err := w.writeBlocks(&sb, section.Blocks); err != nil {
			return 0, err
		}
	}

	w.writeFooter(&sb, doc)

	return io.WriteString(w.output, sb.String())
}

// writeBlocks writes the blocks of one section.
func (w *SimpleWriter) writeBlocks(sb *strings.Builder, blocks []document.Block) error {
	for _, b := range blocks {
		switch b.Kind {
		case document.KindHeading:
			w.writeHeading(sb, b)
		case document.KindParagraph:
			sb.WriteString(strings.Repeat("  ", b.Indent+1))
			sb.WriteString(b.Text)
			sb.WriteString("\n")
		case document.KindBullet:
			sb.WriteString(fmt.Sprintf("  * %s\n", b.Text))
		case document.KindSpacer:
			// Collapse spacers to at most one blank line.
			if !strings.HasSuffix(sb.String(), "\n\n") {
				sb.WriteString("\n")
			}
		case document.KindTable:
			if err := w.writeTable(sb, b.Table); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeHeading writes a heading with separators matching its level.
func (w *SimpleWriter) writeHeading(sb *strings.Builder, b document.Block) {
	text := b.Text
	switch b.Level {
	case document.LevelTitle:
		sb.WriteString(strings.Repeat("=", ruleWidth))
		sb.WriteString("\n")
		sb.WriteString(center(strings.ToUpper(text), ruleWidth))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", ruleWidth))
		sb.WriteString("\n")
	case document.LevelSubtitle:
		sb.WriteString(center(text, ruleWidth))
		sb.WriteString("\n")
	case document.LevelSection:
		sb.WriteString(strings.Repeat("-", ruleWidth))
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(text))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", ruleWidth))
		sb.WriteString("\n\n")
	default:
		sb.WriteString(fmt.Sprintf("[%s]\n", text))
	}
}

// writeTable renders a table with tablewriter.
func (w *SimpleWriter) writeTable(sb *strings.Builder, t *document.Table) error {
	if t == nil {
		return nil
	}

	table := tablewriter.NewWriter(sb)

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	table.Header(header...)

	if err := table.Bulk(t.Rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, doc *document.Document) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Report generated by seoreport on %s\n",
		doc.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	if doc.ID != "" {
		sb.WriteString(fmt.Sprintf("Report ID: %s\n", doc.ID))
	}
	if doc.Fingerprint != "" {
		sb.WriteString(fmt.Sprintf("Results fingerprint: %s\n", doc.Fingerprint))
	}
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// center pads s with leading spaces to center it within width.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
