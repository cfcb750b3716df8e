package tui

import (
	"image"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Alignment positions a line horizontally inside its area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Span is a run of text in one style.
type Span struct {
	Content string
	Style   uv.Style
}

// Line is one row of spans. Style applies to the whole row and is patched
// by each span's own style.
type Line struct {
	Spans []Span
	Style uv.Style
}

// Raw returns an unstyled line.
func Raw(s string) Line {
	return Line{Spans: []Span{{Content: s}}}
}

// Styled returns a line whose row carries style.
func Styled(s string, style uv.Style) Line {
	return Line{Spans: []Span{{Content: s}}, Style: style}
}

// Text splits s into lines on newlines. Carriage returns are dropped.
func Text(s string) []Line {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Raw(p)
	}
	return lines
}

// Width returns the line width in cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += stringWidth(s.Content)
	}
	return w
}

// Block is a bordered box with an optional title on its top edge.
type Block struct {
	Title       string
	TitleStyle  uv.Style
	BorderStyle uv.Style
	Style       uv.Style
}

// Draw implements uv.Drawable.
func (b *Block) Draw(scr uv.Screen, area uv.Rectangle) {
	restyle(scr, area, b.Style)
	border := uv.NormalBorder().Style(patch(b.Style, b.BorderStyle))
	border.Draw(scr, area)
	if b.Title != "" && area.Dx() > 2 {
		drawString(scr, area.Min.X+1, area.Min.Y, area.Max.X-1, b.Title, patch(b.Style, b.TitleStyle))
	}
}

// Inner returns the area inside the border.
func (b *Block) Inner(area uv.Rectangle) uv.Rectangle {
	if area.Dx() < 2 || area.Dy() < 2 {
		return uv.Rectangle{Min: area.Min, Max: area.Min}
	}
	return image.Rect(area.Min.X+1, area.Min.Y+1, area.Max.X-1, area.Max.Y-1)
}

// Paragraph draws lines of text without wrapping. Lines wider than the area
// are cut at its right edge and lines below it are dropped.
type Paragraph struct {
	Lines []Line
	Style uv.Style
	Align Alignment
	Block *Block
}

// Draw implements uv.Drawable.
func (p *Paragraph) Draw(scr uv.Screen, area uv.Rectangle) {
	restyle(scr, area, p.Style)
	if p.Block != nil {
		p.Block.Draw(scr, area)
		area = p.Block.Inner(area)
	}
	for i, line := range p.Lines {
		y := area.Min.Y + i
		if y >= area.Max.Y {
			break
		}
		restyle(scr, uv.Rect(area.Min.X, y, area.Dx(), 1), line.Style)
		x := area.Min.X + offset(p.Align, area.Dx(), line.Width())
		for _, span := range line.Spans {
			x = drawString(scr, x, y, area.Max.X, span.Content, patch(patch(p.Style, line.Style), span.Style))
		}
	}
}

// List draws selectable items. Selected is the highlighted index, or -1.
// When an item is selected every row is indented by the highlight symbol.
type List struct {
	Items           []string
	Selected        int
	Style           uv.Style
	HighlightStyle  uv.Style
	HighlightSymbol string
	Block           *Block

	offset int
}

// NewList returns a list with no selection.
func NewList(items ...string) *List {
	return &List{Items: items, Selected: -1}
}

// SelectFirst selects the first item.
func (l *List) SelectFirst() {
	if len(l.Items) == 0 {
		l.Selected = -1
		return
	}
	l.Selected = 0
}

// SelectNext moves the selection down, stopping at the last item.
func (l *List) SelectNext() {
	if len(l.Items) == 0 {
		return
	}
	if l.Selected < 0 {
		l.Selected = 0
		return
	}
	l.Selected = min(l.Selected+1, len(l.Items)-1)
}

// SelectPrevious moves the selection up, stopping at the first item. With
// nothing selected the last item is chosen.
func (l *List) SelectPrevious() {
	if len(l.Items) == 0 {
		return
	}
	if l.Selected < 0 {
		l.Selected = len(l.Items) - 1
		return
	}
	l.Selected = max(l.Selected-1, 0)
}

// Draw implements uv.Drawable.
func (l *List) Draw(scr uv.Screen, area uv.Rectangle) {
	restyle(scr, area, l.Style)
	if l.Block != nil {
		l.Block.Draw(scr, area)
		area = l.Block.Inner(area)
	}
	height := area.Dy()
	if height <= 0 || area.Dx() <= 0 {
		return
	}

	selected := l.Selected
	if selected >= len(l.Items) {
		selected = len(l.Items) - 1
	}
	if selected >= 0 {
		if selected < l.offset {
			l.offset = selected
		}
		if selected >= l.offset+height {
			l.offset = selected - height + 1
		}
	}
	l.offset = min(l.offset, max(len(l.Items)-height, 0))

	indent := 0
	if selected >= 0 {
		indent = stringWidth(l.HighlightSymbol)
	}
	for row := 0; row < height; row++ {
		i := l.offset + row
		if i >= len(l.Items) {
			break
		}
		y := area.Min.Y + row
		x := area.Min.X
		if i == selected {
			drawString(scr, x, y, area.Max.X, l.HighlightSymbol, l.Style)
		}
		drawString(scr, x+indent, y, area.Max.X, l.Items[i], l.Style)
		if i == selected {
			restyle(scr, uv.Rect(area.Min.X, y, area.Dx(), 1), l.HighlightStyle)
		}
	}
}

func offset(align Alignment, avail, width int) int {
	switch align {
	case AlignCenter:
		return max(avail-width, 0) / 2
	case AlignRight:
		return max(avail-width, 0)
	default:
		return 0
	}
}

// drawString writes s grapheme by grapheme from column x on row y and stops
// before a cluster would cross maxX. It returns the next free column.
func drawString(scr uv.Screen, x, y, maxX int, s string, style uv.Style) int {
	state := -1
	var gr string
	for len(s) > 0 {
		gr, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := runewidth.StringWidth(gr)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		scr.SetCell(x, y, &uv.Cell{Content: gr, Width: w, Style: style})
		x += w
	}
	return x
}

func stringWidth(s string) int {
	w := 0
	state := -1
	var gr string
	for len(s) > 0 {
		gr, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += runewidth.StringWidth(gr)
	}
	return w
}

// restyle patches the style of every cell in area, keeping its content.
func restyle(scr uv.Screen, area uv.Rectangle, style uv.Style) {
	if style.IsZero() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := scr.CellAt(x, y)
			if c == nil || c.Width == 0 {
				continue
			}
			n := *c
			n.Style = patch(n.Style, style)
			scr.SetCell(x, y, &n)
		}
	}
}

// patch overlays the set fields of over onto base. Attributes accumulate.
func patch(base, over uv.Style) uv.Style {
	if over.Fg != nil {
		base.Fg = over.Fg
	}
	if over.Bg != nil {
		base.Bg = over.Bg
	}
	if over.UnderlineColor != nil {
		base.UnderlineColor = over.UnderlineColor
	}
	if over.Underline != 0 {
		base.Underline = over.Underline
	}
	base.Attrs |= over.Attrs
	return base
}
