package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"drafter/diagram"
	"drafter/history"
	"drafter/routing"
)

// Diagram coordinates are pixels; the terminal shows a scaled-down view.
const (
	cellW = 8.0
	cellH = 16.0

	moveStep = 16.0 // one arrow-key nudge, in diagram units
)

var (
	styleDefault  = tcell.StyleDefault
	styleShape    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleShapeSel = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	stylePseudo   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleConn     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleConnSel  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

type editorMode int

const (
	modeNormal editorMode = iota
	modeConnect
)

// editor is the thin UI collaborator around the engine: it mutates the graph
// through its public operations and triggers recalculation after moves. All
// graph access happens on the event loop; background goroutines only post
// events.
type editor struct {
	screen   tcell.Screen
	graph    *diagram.Graph
	hist     *history.History
	filename string

	mode        editorMode
	selected    int // index into graph.Shapes, -1 for none
	connectFrom string
	status      string
	dirty       bool
	reload      chan struct{}
}

func runEditor(filename string) error {
	g := diagram.NewGraph()
	if filename != "" {
		if loaded, err := loadGraph(filename); err == nil {
			g = loaded
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ed := &editor{
		screen:   screen,
		graph:    g,
		hist:     history.New(g, history.DefaultCapacity),
		filename: filename,
		selected: -1,
		reload:   make(chan struct{}, 1),
		status:   "n:state  i:initial  f:final  c:connect  u/r:undo/redo  s:save  q:quit",
	}

	if filename != "" {
		watcher, werr := fsnotify.NewWatcher()
		if werr == nil {
			defer watcher.Close()
			if watcher.Add(filename) == nil {
				go ed.watchFile(watcher)
			}
		}
	}

	return ed.run()
}

// watchFile signals the event loop when the open file changes on disk. The
// reload itself happens on the loop; this goroutine never touches the graph.
func (ed *editor) watchFile(w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) {
				select {
				case ed.reload <- struct{}{}:
				default:
				}
				ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}

func (ed *editor) run() error {
	for {
		ed.draw()
		ed.screen.Show()

		switch ev := ed.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventInterrupt:
			ed.handleReload()
		case *tcell.EventKey:
			if quit := ed.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (ed *editor) handleReload() {
	select {
	case <-ed.reload:
	default:
		return
	}
	if ed.dirty {
		ed.status = "file changed on disk (unsaved edits kept; save to overwrite)"
		return
	}
	loaded, err := loadGraph(ed.filename)
	if err != nil {
		ed.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	ed.graph = loaded
	ed.hist = history.New(ed.graph, history.DefaultCapacity)
	ed.selected = -1
	ed.status = "reloaded from disk"
}

func (ed *editor) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		// Escape discards in-progress interaction without touching the graph.
		ed.mode = modeNormal
		ed.connectFrom = ""
		ed.status = "cancelled"
		return false
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		ed.cycleSelection()
		return false
	case tcell.KeyEnter:
		if ed.mode == modeConnect {
			ed.finishConnect()
		}
		return false
	case tcell.KeyUp:
		ed.moveSelected(0, -moveStep)
		return false
	case tcell.KeyDown:
		ed.moveSelected(0, moveStep)
		return false
	case tcell.KeyLeft:
		ed.moveSelected(-moveStep, 0)
		return false
	case tcell.KeyRight:
		ed.moveSelected(moveStep, 0)
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'n':
		ed.addShape(diagram.KindState)
	case 'i':
		ed.addShape(diagram.KindInitial)
	case 'f':
		ed.addShape(diagram.KindFinal)
	case 'j':
		ed.addShape(diagram.KindJunction)
	case 'c':
		ed.startConnect()
	case 'd':
		ed.deleteSelected()
	case 'y':
		ed.cycleStyle()
	case 'u':
		if ed.hist.Undo() {
			ed.selected = -1
			ed.dirty = true
			ed.status = "undone"
		} else {
			ed.status = "nothing to undo"
		}
	case 'r':
		if ed.hist.Redo() {
			ed.selected = -1
			ed.dirty = true
			ed.status = "redone"
		} else {
			ed.status = "nothing to redo"
		}
	case 's':
		ed.save()
	}
	return false
}

func (ed *editor) cycleSelection() {
	n := len(ed.graph.Shapes)
	if n == 0 {
		return
	}
	ed.selected = (ed.selected + 1) % n
	ed.graph.SelectShape(ed.graph.Shapes[ed.selected].ID)
}

func (ed *editor) selectedShape() *diagram.Shape {
	if ed.selected < 0 || ed.selected >= len(ed.graph.Shapes) {
		return nil
	}
	return ed.graph.Shapes[ed.selected]
}

func (ed *editor) addShape(kind diagram.Kind) {
	ed.hist.Push()
	w, h := ed.screen.Size()
	s := ed.graph.AddShape(kind, float64(w)/2*cellW, float64(h)/2*cellH)
	ed.selected = len(ed.graph.Shapes) - 1
	ed.graph.SelectShape(s.ID)
	ed.dirty = true
	ed.status = fmt.Sprintf("added %s", kind)
}

func (ed *editor) deleteSelected() {
	s := ed.selectedShape()
	if s == nil {
		ed.status = "nothing selected"
		return
	}
	ed.hist.Push()
	ed.graph.RemoveShape(s.ID)
	ed.graph.RecalculateConnections()
	ed.selected = -1
	ed.dirty = true
	ed.status = "deleted"
}

func (ed *editor) startConnect() {
	s := ed.selectedShape()
	if s == nil {
		ed.status = "select a source shape first (Tab)"
		return
	}
	ed.mode = modeConnect
	ed.connectFrom = s.ID
	ed.status = "connect: Tab to pick the target, Enter to link, Esc to cancel"
}

func (ed *editor) finishConnect() {
	target := ed.selectedShape()
	ed.mode = modeNormal
	from := ed.connectFrom
	ed.connectFrom = ""
	if target == nil || target.ID == from {
		ed.status = "connect cancelled"
		return
	}
	ed.hist.Push()
	if c := ed.graph.AddConnection(from, target.ID); c == nil {
		ed.status = "those shapes cannot be connected"
		return
	}
	ed.dirty = true
	ed.status = "connected"
}

func (ed *editor) moveSelected(dx, dy float64) {
	s := ed.selectedShape()
	if s == nil {
		return
	}
	ed.graph.MoveShape(s.ID, dx, dy)
	ed.graph.RecalculateConnections()
	ed.dirty = true
}

func (ed *editor) cycleStyle() {
	s := ed.selectedShape()
	if s == nil {
		return
	}
	// Cycle every outgoing connection of the selected shape.
	styles := []routing.Style{
		routing.OrthogonalAuto, routing.Direct, routing.LShape,
		routing.SShape, routing.UShape, routing.Arc,
	}
	ed.hist.Push()
	changed := 0
	for _, c := range ed.graph.Connections {
		if c.From != s.ID {
			continue
		}
		for i, st := range styles {
			if c.Style == st {
				c.Style = styles[(i+1)%len(styles)]
				break
			}
		}
		changed++
	}
	ed.graph.RecalculateConnections()
	ed.dirty = changed > 0
	ed.status = fmt.Sprintf("restyled %d connections", changed)
}

func (ed *editor) save() {
	if ed.filename == "" {
		ed.status = "no filename (start with: drafter -i file.json)"
		return
	}
	if err := saveGraph(ed.filename, ed.graph); err != nil {
		ed.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	ed.dirty = false
	ed.status = "saved " + ed.filename
}
