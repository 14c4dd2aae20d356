package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/nao1215/seoreport/internal/document"
)

// ErrUnknownPageSize is returned for a page size the layout engine does not support.
var ErrUnknownPageSize = errors.New("unknown page size")

// Page sizes supported by the PDF writer.
var pageSizes = map[string]string{
	"letter": "Letter",
	"legal":  "Legal",
	"a3":     "A3",
	"a4":     "A4",
	"a5":     "A5",
}

// ParsePageSize returns the canonical name of a page size.
// An empty size yields document.DefaultPageSize.
func ParsePageSize(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return document.DefaultPageSize, nil
	}
	if size, ok := pageSizes[s]; ok {
		return size, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPageSize, s)
}

// Layout constants in points.
const (
	pageMargin   = 72
	bulletIndent = 12
	indentStep   = 18
	cellPadding  = 4
	bodyFontSize = 12
	tableHeadPt  = 12
	tableBodyPt  = 10
	footerOffset = -40
	lineFactor   = 1.25
	fontFamily   = "Helvetica"
)

// headingSizes maps heading levels to font sizes.
var headingSizes = map[int]float64{
	document.LevelTitle:      24,
	document.LevelSubtitle:   18,
	document.LevelSection:    16,
	document.LevelSubsection: 14,
}

// rgb is a color in 0-255 components.
type rgb [3]int

var (
	colorHeaderFill = rgb{128, 128, 128}
	colorHeaderText = rgb{245, 245, 245}
	colorBodyFill   = rgb{245, 245, 220}
	colorText       = rgb{0, 0, 0}
	colorMuted      = rgb{100, 100, 100}
)

// PDFWriter lays out documents as paginated PDF.
//
// Design decision: We use go-pdf/fpdf because it is pure Go, needs no
// external fonts for the core Helvetica family, and exposes line splitting
// so table rows can wrap long cells without a separate layout engine.
type PDFWriter struct {
	baseWriter

	logger *slog.Logger
}

// PDFWriterOption configures a PDFWriter.
type PDFWriterOption func(*PDFWriter)

// WithPDFLogger sets the logger used to report text the core fonts cannot
// display.
func WithPDFLogger(logger *slog.Logger) PDFWriterOption {
	return func(w *PDFWriter) {
		w.logger = logger
	}
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer, opts ...PDFWriterOption) *PDFWriter {
	w := &PDFWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.Default()
	}

	return w
}

// Write lays out the document and writes the PDF.
// Any layout failure is returned before a single byte is written.
func (w *PDFWriter) Write(doc *document.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}

	size, err := ParsePageSize(doc.PageSize)
	if err != nil {
		return 0, err
	}

	// The core fonts are cp1252; anything else is rendered as dots.
	if n, sample := unsupportedText(doc); n > 0 {
		w.logger.Warn("text outside the PDF font character set will be replaced",
			"characters", n,
			"sample", sample,
		)
	}

	pdf := fpdf.New("P", "pt", size, "")
	l := &pdfLayout{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
	l.setup(doc)

	for _, b := range doc.Blocks() {
		l.block(b)
		if !pdf.Ok() {
			break
		}
	}

	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("failed to lay out PDF: %w", err)
	}

	cw := &countingWriter{w: w.output}
	if err := pdf.Output(cw); err != nil {
		return cw.n, fmt.Errorf("failed to write PDF: %w", err)
	}
	return cw.n, nil
}

// maxUnsupportedSample bounds the distinct characters quoted in the warning.
const maxUnsupportedSample = 10

// unsupportedText counts the characters of doc that have no cp1252 encoding
// and returns up to maxUnsupportedSample distinct ones.
func unsupportedText(doc *document.Document) (int, string) {
	var (
		count  int
		sample []rune
		seen   = make(map[rune]bool)
	)
	check := func(s string) {
		for _, r := range s {
			if _, ok := charmap.Windows1252.EncodeRune(r); ok {
				continue
			}
			count++
			if !seen[r] && len(sample) < maxUnsupportedSample {
				seen[r] = true
				sample = append(sample, r)
			}
		}
	}

	check(doc.Title)
	check(doc.Subject)
	for _, b := range doc.Blocks() {
		check(b.Text)
		if b.Table == nil {
			continue
		}
		for _, h := range b.Table.Header {
			check(h)
		}
		for _, row := range b.Table.Rows {
			for _, cell := range row {
				check(cell)
			}
		}
	}
	return count, string(sample)
}

// pdfLayout holds the state of one PDF rendering pass.
type pdfLayout struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// setup configures metadata, margins and the page footer.
func (l *pdfLayout) setup(doc *document.Document) {
	pdf := l.pdf

	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetCreator(doc.Creator, true)
	pdf.SetAuthor(doc.Creator, true)
	if doc.ID != "" {
		pdf.SetKeywords("seo report "+doc.ID, true)
	}
	pdf.SetCreationDate(doc.GeneratedAt)

	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("")

	fingerprint := doc.Fingerprint
	pdf.SetFooterFunc(func() {
		pdf.SetY(footerOffset)
		pdf.SetFont(fontFamily, "I", 8)
		l.textColor(colorMuted)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		if fingerprint != "" {
			pdf.SetX(pageMargin)
			pdf.CellFormat(0, 10, fingerprint, "", 0, "R", false, 0, "")
		}
	})

	pdf.AddPage()
}

// block renders one content block.
func (l *pdfLayout) block(b document.Block) {
	switch b.Kind {
	case document.KindHeading:
		l.heading(b)
	case document.KindParagraph:
		l.paragraph(b)
	case document.KindBullet:
		l.bullet(b)
	case document.KindSpacer:
		l.pdf.Ln(b.Height)
	case document.KindTable:
		l.table(b.Table)
	}
}

func (l *pdfLayout) heading(b document.Block) {
	size, ok := headingSizes[b.Level]
	if !ok {
		size = headingSizes[document.LevelSubsection]
	}

	l.pdf.SetFont(fontFamily, "B", size)
	l.textColor(colorText)
	l.pdf.MultiCell(0, size*lineFactor, l.tr(b.Text), "", alignOf(b.Align), false)
	l.pdf.Ln(size / 3)
}

func (l *pdfLayout) paragraph(b document.Block) {
	l.pdf.SetFont(fontFamily, "", bodyFontSize)
	l.textColor(colorText)

	indent := float64(b.Indent) * indentStep
	l.pdf.SetX(pageMargin + indent)
	width := l.contentWidth() - indent
	l.pdf.MultiCell(width, bodyFontSize*lineFactor, l.tr(b.Text), "", alignOf(b.Align), false)
}

func (l *pdfLayout) bullet(b document.Block) {
	l.pdf.SetFont(fontFamily, "", bodyFontSize)
	l.textColor(colorText)

	l.pdf.SetX(pageMargin + bulletIndent)
	width := l.contentWidth() - bulletIndent
	l.pdf.MultiCell(width, bodyFontSize*lineFactor, l.tr("• "+b.Text), "", "L", false)
}

// table renders a table with a grey header row and beige body rows.
// Long cells wrap; a row that does not fit starts a new page and the
// header is repeated.
func (l *pdfLayout) table(t *document.Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}

	widths := l.columnWidths(t)
	if l.needsBreak(2 * l.rowHeight(t.Header, widths, true)) {
		l.pdf.AddPage()
	}
	l.row(t.Header, widths, true)
	for _, cells := range t.Rows {
		if l.needsBreak(l.rowHeight(cells, widths, false)) {
			l.pdf.AddPage()
			l.row(t.Header, widths, true)
		}
		l.row(cells, widths, false)
	}
}

// columnWidths returns the preferred widths scaled to the content width.
// Tables without preferred widths get equal columns.
func (l *pdfLayout) columnWidths(t *document.Table) []float64 {
	n := len(t.Header)
	available := l.contentWidth()

	widths := make([]float64, n)
	var total float64
	for i := range widths {
		if i < len(t.ColumnWidths) && t.ColumnWidths[i] > 0 {
			widths[i] = t.ColumnWidths[i]
		} else {
			widths[i] = available / float64(n)
		}
		total += widths[i]
	}

	if total > available {
		scale := available / total
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

func (l *pdfLayout) rowFont(header bool) float64 {
	if header {
		l.pdf.SetFont(fontFamily, "B", tableHeadPt)
		return tableHeadPt
	}
	l.pdf.SetFont(fontFamily, "", tableBodyPt)
	return tableBodyPt
}

// cellLines splits the cells of a row into wrapped lines.
func (l *pdfLayout) cellLines(cells []string, widths []float64) [][]string {
	lines := make([][]string, len(widths))
	for i, w := range widths {
		var text string
		if i < len(cells) {
			text = l.tr(cells[i])
		}
		for _, line := range l.pdf.SplitLines([]byte(text), w-2*cellPadding) {
			lines[i] = append(lines[i], string(line))
		}
		if len(lines[i]) == 0 {
			lines[i] = []string{""}
		}
	}
	return lines
}

func (l *pdfLayout) rowHeight(cells []string, widths []float64, header bool) float64 {
	size := l.rowFont(header)
	maxLines := 1
	for _, cl := range l.cellLines(cells, widths) {
		maxLines = max(maxLines, len(cl))
	}
	return float64(maxLines)*size*lineFactor + 2*cellPadding
}

func (l *pdfLayout) needsBreak(height float64) bool {
	_, pageHeight := l.pdf.GetPageSize()
	return l.pdf.GetY()+height > pageHeight-pageMargin
}

// row draws one table row at the current position.
func (l *pdfLayout) row(cells []string, widths []float64, header bool) {
	pdf := l.pdf
	height := l.rowHeight(cells, widths, header)
	size := l.rowFont(header)
	lines := l.cellLines(cells, widths)

	fill, text := colorBodyFill, colorText
	if header {
		fill, text = colorHeaderFill, colorHeaderText
	}
	pdf.SetFillColor(fill[0], fill[1], fill[2])
	pdf.SetDrawColor(0, 0, 0)
	l.textColor(text)

	x, y := float64(pageMargin), pdf.GetY()
	for i, w := range widths {
		pdf.Rect(x, y, w, height, "FD")
		for j, line := range lines[i] {
			pdf.SetXY(x, y+cellPadding+float64(j)*size*lineFactor)
			pdf.CellFormat(w, size*lineFactor, line, "", 0, "C", false, 0, "")
		}
		x += w
	}
	pdf.SetXY(pageMargin, y+height)
}

func (l *pdfLayout) contentWidth() float64 {
	pageWidth, _ := l.pdf.GetPageSize()
	return pageWidth - 2*pageMargin
}

func (l *pdfLayout) textColor(c rgb) {
	l.pdf.SetTextColor(c[0], c[1], c[2])
}

func alignOf(a document.Align) string {
	if a == document.AlignCenter {
		return "C"
	}
	return "L"
}
