package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"drafter/diagram"
	"drafter/geometry"
)

func (ed *editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	for _, c := range ed.graph.Connections {
		ed.drawConnection(c)
	}
	for _, s := range ed.graph.Shapes {
		ed.drawShape(s)
	}
	ed.drawStatusBar(w, h)
}

// toCell maps a diagram point to a terminal cell.
func toCell(p geometry.Point) (int, int) {
	return int(math.Round(p.X / cellW)), int(math.Round(p.Y / cellH))
}

func (ed *editor) drawShape(s *diagram.Shape) {
	x1, y1 := toCell(geometry.Point{X: s.Bounds.X1, Y: s.Bounds.Y1})
	x2, y2 := toCell(geometry.Point{X: s.Bounds.X2, Y: s.Bounds.Y2})

	if s.Kind.IsPseudo() {
		ed.drawPseudo(s, x1, y1, x2, y2)
		return
	}

	style := styleShape
	fill, hasFill := geometry.ParseFill(s.Fill)
	if s.Selected && hasFill {
		fill = geometry.HighlightFill(s.Fill)
	}
	if hasFill {
		r, g, b := fill.RGB255()
		style = styleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	} else if s.Selected {
		style = styleShapeSel
	}

	ed.drawBox(x1, y1, x2, y2, style)
	if s.Name != "" {
		ed.drawText(x1+1, y1+1, truncate(s.Name, x2-x1-1), style)
	}
}

func (ed *editor) drawPseudo(s *diagram.Shape, x1, y1, x2, y2 int) {
	style := stylePseudo
	if s.Selected {
		style = styleShapeSel
	}

	var mark rune
	switch s.Kind {
	case diagram.KindInitial:
		mark = '●'
	case diagram.KindFinal:
		mark = '◉'
	case diagram.KindChoice:
		mark = '◇'
	case diagram.KindFork, diagram.KindJoin:
		mark = '▬'
	default: // Junction
		mark = '○'
	}

	cx, cy := (x1+x2)/2, (y1+y2)/2
	if s.Kind == diagram.KindFork || s.Kind == diagram.KindJoin {
		for x := x1; x <= x2; x++ {
			ed.screen.SetContent(x, cy, mark, nil, style)
		}
		return
	}
	ed.screen.SetContent(cx, cy, mark, nil, style)
}

func (ed *editor) drawBox(x1, y1, x2, y2 int, style tcell.Style) {
	if x2 <= x1 || y2 <= y1 {
		ed.screen.SetContent(x1, y1, '▪', nil, style)
		return
	}
	for x := x1 + 1; x < x2; x++ {
		ed.screen.SetContent(x, y1, '─', nil, style)
		ed.screen.SetContent(x, y2, '─', nil, style)
	}
	for y := y1 + 1; y < y2; y++ {
		ed.screen.SetContent(x1, y, '│', nil, style)
		ed.screen.SetContent(x2, y, '│', nil, style)
	}
	ed.screen.SetContent(x1, y1, '┌', nil, style)
	ed.screen.SetContent(x2, y1, '┐', nil, style)
	ed.screen.SetContent(x1, y2, '└', nil, style)
	ed.screen.SetContent(x2, y2, '┘', nil, style)
}

func (ed *editor) drawConnection(c *diagram.Connection) {
	style := styleConn
	if c.Selected {
		style = styleConnSel
	}

	for _, seg := range c.Path.Flattened() {
		ed.drawSegment(seg.From, seg.To, style)
	}

	// Arrowhead at the target end.
	if segs := c.Path.Flattened(); len(segs) > 0 {
		x, y := toCell(segs[len(segs)-1].To)
		ed.screen.SetContent(x, y, '▶', nil, style)
	}

	if label := c.Label(); label != "" {
		x, y := toCell(c.LabelPosition())
		ed.drawText(x-len(label)/2, y, label, styleLabel)
	}
}

// drawSegment walks a straight diagram-space segment across the cell grid.
func (ed *editor) drawSegment(from, to geometry.Point, style tcell.Style) {
	x1, y1 := toCell(from)
	x2, y2 := toCell(to)

	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		ed.screen.SetContent(x1, y1, '·', nil, style)
		return
	}

	ch := '·'
	if dy == 0 {
		ch = '─'
	} else if dx == 0 {
		ch = '│'
	}

	for i := 0; i <= steps; i++ {
		x := x1 + dx*i/steps
		y := y1 + dy*i/steps
		ed.screen.SetContent(x, y, ch, nil, style)
	}
}

func (ed *editor) drawStatusBar(w, h int) {
	undo, redo := ed.hist.Depths()
	mode := ""
	if ed.mode == modeConnect {
		mode = "[connect] "
	}
	dirty := ""
	if ed.dirty {
		dirty = "*"
	}
	left := fmt.Sprintf(" %s%s%s  undo:%d redo:%d  %s",
		mode, ed.filename, dirty, undo, redo, ed.status)

	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	ed.drawText(0, h-1, truncate(left, w), styleStatus)
}

func (ed *editor) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		ed.screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
