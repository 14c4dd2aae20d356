package document

// Kind identifies the type of a content block.
type Kind string

const (
	// KindHeading is a heading at Block.Level.
	KindHeading Kind = "heading"
	// KindParagraph is a paragraph of body text, optionally indented.
	KindParagraph Kind = "paragraph"
	// KindBullet is a bulleted list item.
	KindBullet Kind = "bullet"
	// KindSpacer is vertical whitespace of Block.Height points.
	KindSpacer Kind = "spacer"
	// KindTable is a table with a header row.
	KindTable Kind = "table"
)

// Heading levels.
const (
	LevelTitle      = 1
	LevelSubtitle   = 2
	LevelSection    = 3
	LevelSubsection = 4
)

// Align is the horizontal alignment of a text block.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Block is one renderable unit of a document.
//
// Design decision: We use a single struct with a Kind discriminator rather
// than an interface per block type so that documents serialize to JSON
// without custom marshalers and writers can switch on Kind.
type Block struct {
	// Kind is the block type.
	Kind Kind `json:"kind"`

	// Level is the heading level (1-4). Only set for headings.
	Level int `json:"level,omitempty"`

	// Indent is the indentation depth of paragraphs.
	Indent int `json:"indent,omitempty"`

	// Text is the block content. Empty for spacers and tables.
	Text string `json:"text,omitempty"`

	// Align is the horizontal alignment of headings and paragraphs.
	Align Align `json:"align,omitempty"`

	// Height is the spacer height in points.
	Height float64 `json:"height,omitempty"`

	// Table holds table data. Only set for tables.
	Table *Table `json:"table,omitempty"`
}

// Table is a table with a header row.
type Table struct {
	// Header contains the column titles.
	Header []string `json:"header"`

	// Rows contains the body rows; each row has len(Header) cells.
	Rows [][]string `json:"rows"`

	// ColumnWidths are the preferred column widths in points.
	ColumnWidths []float64 `json:"column_widths,omitempty"`
}

// Heading creates a left-aligned heading.
func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text, Align: AlignLeft}
}

// CenteredHeading creates a centered heading.
func CenteredHeading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text, Align: AlignCenter}
}

// Paragraph creates a body text paragraph.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text, Align: AlignLeft}
}

// Indented creates a body text paragraph indented one level.
func Indented(text string) Block {
	return Block{Kind: KindParagraph, Text: text, Align: AlignLeft, Indent: 1}
}

// Bullet creates a bulleted list item.
func Bullet(text string) Block {
	return Block{Kind: KindBullet, Text: text, Align: AlignLeft}
}

// Spacer creates vertical whitespace.
func Spacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}

// NewTable creates a table block. Rows shorter than the header are padded
// with empty cells and longer rows are truncated.
func NewTable(widths []float64, header []string, rows ...[]string) Block {
	normalized := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(header))
		copy(cells, row)
		normalized[i] = cells
	}
	return Block{
		Kind: KindTable,
		Table: &Table{
			Header:       header,
			Rows:         normalized,
			ColumnWidths: widths,
		},
	}
}
