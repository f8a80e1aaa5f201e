package export

import (
	"strings"

	"scriptstudio/models"
)

// PageSize is the physical page extent in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Margins is the printable-area inset in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// A4 is the default export page size.
var A4 = PageSize{Width: 595.28, Height: 841.89}

// DefaultMargins is the default printable-area inset.
var DefaultMargins = Margins{Top: 56, Bottom: 56, Left: 56, Right: 56}

// Style selects the font treatment of a laid-out line.
type Style struct {
	Size   float64 // font size in points
	Bold   bool
	Indent float64 // left inset from the margin in points
}

var (
	styleTitle    = Style{Size: 18, Bold: true}
	styleHeading  = Style{Size: 13, Bold: true}
	styleQuestion = Style{Size: 11, Indent: 8}
	styleOption   = Style{Size: 9, Indent: 22}
)

// Vertical spacing constants, in points.
const (
	lineSpacing     = 1.45 // line height as a multiple of font size
	titleGap        = 14   // below the title block
	headingGap      = 6    // below a heading
	questionGap     = 3    // between questions
	optionListGap   = 6    // after a question's option list
	groupGap        = 14   // after a group's questions, before the next heading
	questionBullet  = "- "
	optionBullet    = "• "
)

func (s Style) lineHeight() float64 {
	return s.Size * lineSpacing
}

// FontMetrics measures rendered text width so the layout can wrap at word
// boundaries. The PDF writer supplies real font metrics; tests supply a
// fixed-width stand-in.
type FontMetrics interface {
	Width(text string, style Style) float64
}

// Line is one wrapped text line placed on a page. X and Y locate the top
// left of the line box.
type Line struct {
	Text     string
	X        float64
	Y        float64
	Style    Style
	Centered bool
}

// Page is a fixed-size canvas of laid-out lines.
type Page struct {
	Lines []Line
}

// layouter tracks the single vertical cursor and the page-break bookkeeping.
type layouter struct {
	size    PageSize
	margins Margins
	metrics FontMetrics
	pages   []Page
	current Page
	y       float64
}

func (l *layouter) printableWidth() float64 {
	return l.size.Width - l.margins.Left - l.margins.Right
}

func (l *layouter) usableHeight() float64 {
	return l.size.Height - l.margins.Top - l.margins.Bottom
}

// breakPage closes the current page and resets the cursor to the top margin.
// Breaking an untouched page is a no-op so an oversized first block cannot
// leave an empty page in front of itself.
func (l *layouter) breakPage() {
	if len(l.current.Lines) > 0 {
		l.pages = append(l.pages, l.current)
		l.current = Page{}
	}
	l.y = l.margins.Top
}

// ensure starts a new page when a block of the given vertical extent would
// run past the bottom margin.
func (l *layouter) ensure(extent float64) {
	if l.y+extent > l.size.Height-l.margins.Bottom {
		l.breakPage()
	}
}

// wrap breaks text into lines that fit the given width, at word boundaries
// only. A single word wider than the width gets a line of its own.
func (l *layouter) wrap(text string, width float64, style Style) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if l.metrics.Width(line+" "+word, style) > width {
			lines = append(lines, line)
			line = word
		} else {
			line += " " + word
		}
	}
	return append(lines, line)
}

// writeLines emits pre-wrapped lines at the cursor without a break check.
func (l *layouter) writeLines(lines []string, style Style, centered bool) {
	for _, text := range lines {
		x := l.margins.Left + style.Indent
		if centered {
			x = l.margins.Left + (l.printableWidth()-l.metrics.Width(text, style))/2
		}
		l.current.Lines = append(l.current.Lines, Line{
			Text:     text,
			X:        x,
			Y:        l.y,
			Style:    style,
			Centered: centered,
		})
		l.y += style.lineHeight()
	}
}

// writeBlock wraps text and emits it with a single break check covering the
// whole wrapped extent.
func (l *layouter) writeBlock(text string, style Style, centered bool) {
	lines := l.wrap(text, l.printableWidth()-style.Indent, style)
	l.ensure(float64(len(lines)) * style.lineHeight())
	l.writeLines(lines, style, centered)
}

func (l *layouter) writeTitle(title string) {
	l.writeBlock(title, styleTitle, true)
	l.y += titleGap
}

func (l *layouter) writeHeading(label string) {
	l.writeBlock(label, styleHeading, false)
	l.y += headingGap
}

func (l *layouter) writeQuestion(q models.Question) {
	l.writeBlock(questionBullet+q.Text, styleQuestion, false)

	if len(q.Options) > 0 {
		width := l.printableWidth() - styleOption.Indent
		var optionLines []string
		for _, opt := range q.Options {
			optionLines = append(optionLines, l.wrap(optionBullet+opt, width, styleOption)...)
		}
		// Keep the option list together when it can fit on one page;
		// otherwise let it break line by line.
		extent := float64(len(optionLines)) * styleOption.lineHeight()
		if extent <= l.usableHeight() {
			l.ensure(extent)
			l.writeLines(optionLines, styleOption, false)
		} else {
			for _, line := range optionLines {
				l.ensure(styleOption.lineHeight())
				l.writeLines([]string{line}, styleOption, false)
			}
		}
		l.y += optionListGap
	}
	l.y += questionGap
}

func (l *layouter) writeGroup(label string, questions []models.Question) {
	if len(questions) == 0 {
		return
	}
	l.writeHeading(label)
	for _, q := range questions {
		l.writeQuestion(q)
	}
	l.y += groupGap
}

// Layout lays a script out across fixed-size pages: a centered title block,
// then each non-empty group as a heading followed by its questions and
// option sub-lists, with automatic page breaks checked per title, heading
// and question. The result is ready for the PDF writer.
func Layout(script *models.Script, title string, size PageSize, margins Margins, metrics FontMetrics) []Page {
	l := &layouter{
		size:    size,
		margins: margins,
		metrics: metrics,
		y:       margins.Top,
	}

	l.writeTitle(title)
	l.writeGroup(labelOpening, script.Opening)
	for _, section := range script.Core {
		l.writeGroup(labelCorePrefix+section.Topic, section.Questions)
	}
	l.writeGroup(labelFollowUps, script.FollowUps)
	l.writeGroup(labelClosing, script.Closing)

	l.pages = append(l.pages, l.current)
	return l.pages
}
