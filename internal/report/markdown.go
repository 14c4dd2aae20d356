package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/seoreport/internal/document"
	"github.com/nao1215/seoreport/internal/model"
)

// MarkdownWriter outputs documents in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *document.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}

	md := markdown.NewMarkdown(w.output)

	for _, section := range doc.Sections {
		w.writeBlocks(md, section.Blocks)

		// The status chart follows the executive summary table.
		if section.Name == document.SectionExecutiveSummary {
			w.writeStatus(md, doc.Summary)
		}
	}

	w.writeFooter(md, doc)

	return len(md.String()), md.Build()
}

// writeBlocks writes blocks in order. Consecutive bullets form one list.
func (w *MarkdownWriter) writeBlocks(md *markdown.Markdown, blocks []document.Block) {
	var bullets []string
	flush := func() {
		if len(bullets) == 0 {
			return
		}
		md.BulletList(bullets...)
		md.PlainText("")
		bullets = nil
	}

	for _, b := range blocks {
		if b.Kind != document.KindBullet {
			flush()
		}

		switch b.Kind {
		case document.KindHeading:
			w.writeHeading(md, b)
			md.PlainText("")
		case document.KindParagraph:
			if b.Indent > 0 {
				md.PlainText(strings.Repeat("  ", b.Indent) + b.Text)
			} else {
				md.PlainText(b.Text)
			}
			md.PlainText("")
		case document.KindBullet:
			bullets = append(bullets, b.Text)
		case document.KindTable:
			if b.Table == nil {
				continue
			}
			md.Table(markdown.TableSet{
				Header: escapeCells(b.Table.Header),
				Rows:   escapeRows(b.Table.Rows),
			})
			md.PlainText("")
		case document.KindSpacer:
			// Markdown has no vertical spacing beyond blank lines.
		}
	}
	flush()
}

// cellReplacer keeps analyzed content such as "Shop | Brand" titles from
// breaking the table layout.
var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeCells escapes pipes and line breaks in table cells.
func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellReplacer.Replace(c)
	}
	return out
}

// escapeRows applies escapeCells to every row.
func escapeRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = escapeCells(r)
	}
	return out
}

// writeHeading maps document heading levels to Markdown headings.
func (w *MarkdownWriter) writeHeading(md *markdown.Markdown, b document.Block) {
	switch b.Level {
	case document.LevelTitle:
		md.H1(b.Text)
	case document.LevelSubtitle:
		md.H2(b.Text)
	case document.LevelSection:
		md.H2(b.Text)
	default:
		md.H3(b.Text)
	}
}

// writeStatus writes a severity pie chart and an alert for the overall status.
func (w *MarkdownWriter) writeStatus(md *markdown.Markdown, summary *model.Summary) {
	if summary == nil {
		return
	}

	if summary.TotalIssues > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Issue Severity Distribution"),
			piechart.WithShowData(true),
		)
		if summary.CriticalIssues > 0 {
			chart.LabelAndIntValue("Critical", uint64(summary.CriticalIssues))
		}
		if summary.ModerateIssues > 0 {
			chart.LabelAndIntValue("Moderate", uint64(summary.ModerateIssues))
		}
		if summary.MinorIssues > 0 {
			chart.LabelAndIntValue("Minor", uint64(summary.MinorIssues))
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	switch summary.OverallStatus {
	case model.StatusCritical:
		md.Cautionf("%d critical issue(s) require immediate attention.", summary.CriticalIssues)
	case model.StatusNeedsImprovement:
		md.Warningf("%d moderate issue(s) should be addressed.", summary.ModerateIssues)
	default:
		if summary.MinorIssues > 0 {
			md.Note("Only minor issues were detected.")
		} else {
			md.Tip("No significant SEO issues detected.")
		}
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, doc *document.Document) {
	md.HorizontalRule()
	md.PlainText("")
	if doc.Fingerprint != "" {
		md.PlainTextf("*Report generated by seoreport, results fingerprint `%s`*", doc.Fingerprint)
		return
	}
	md.PlainText("*Report generated by seoreport*")
}
