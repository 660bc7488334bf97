// Package term is a terminal front-end for a Session: one character per cell,
// mouse clicks toggle cells and arrow keys pan.
package term

import (
	"bytes"
	"fmt"
	"time"

	"infinite-life/internal/app"
	"infinite-life/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	sideWidth   = 28
	pollEvery   = 5 * time.Millisecond
	speedStep   = 10
	panStepRows = 1
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func() error
	viewName string
}

// Terminal renders a Session with gocui.
type Terminal struct {
	s  *app.Session
	g  *gocui.Gui
	au aurora.Aurora
	k  []keyBinding

	liveFiller string
	deadFiller string

	cols, rows int
}

// New returns a terminal front-end for s. Colors can be disabled for dumb
// terminals.
func New(s *app.Session, colors bool) *Terminal {
	au := aurora.NewAurora(colors)
	t := &Terminal{
		s:          s,
		au:         au,
		liveFiller: au.Green("█").String(),
		deadFiller: "·",
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Start/Pause", t.cmdToggle, ""},
		{'n', "N", "Step", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'r', "R", "Randomize", t.cmdRandomize, ""},
		{'e', "E", "Export", t.cmdExport, ""},
		{'i', "I", "Import", t.cmdImport, ""},
		{'+', "+", "Slower", t.cmdSlower, ""},
		{'-', "-", "Faster", t.cmdFaster, ""},
		{gocui.KeyArrowLeft, "←", "Pan", func() error { return t.pan(1, 0) }, ""},
		{gocui.KeyArrowRight, "→", "Pan", func() error { return t.pan(-1, 0) }, ""},
		{gocui.KeyArrowUp, "↑", "Pan", func() error { return t.pan(0, panStepRows) }, ""},
		{gocui.KeyArrowDown, "↓", "Pan", func() error { return t.pan(0, -panStepRows) }, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, fieldView},
	}
	return t
}

// Run takes over the terminal until the user quits.
func (t *Terminal) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer g.Close()
	t.g = g
	g.Mouse = true
	g.SetManagerFunc(t.layout)

	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			return fmt.Errorf("terminal: bind %s: %w", kb.name, err)
		}
	}

	done := make(chan struct{})
	defer close(done)
	go t.poll(done)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// poll queues clock checks onto the gocui loop so ticks run on the same
// goroutine as key and mouse handlers.
func (t *Terminal) poll(done <-chan struct{}) {
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				if t.s.Tick() {
					t.refresh()
				}
				return nil
			})
		}
	}
}

// resize maps the field view size onto the session's pixel surface.
func (t *Terminal) resize(cols, rows int) {
	t.cols, t.rows = cols, rows
	cs := t.s.View().CellSize
	t.s.Resize(float64(cols)*cs, float64(rows)*cs)
}

// frame renders the visible part of the board, one character per cell.
func (t *Terminal) frame() string {
	raster := core.NewByteGrid(t.s.VisibleRange())
	raster.Fill(t.s.Cells())
	return renderRows(raster, t.cols, t.rows, t.liveFiller, t.deadFiller)
}

func renderRows(raster *core.ByteGrid, cols, rows int, live, dead string) string {
	var b bytes.Buffer
	for y := 0; y < rows; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			if raster.At(x, y) != 0 {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func (t *Terminal) statusLines() []string {
	st := t.s.Status()
	mode := t.au.Blue("paused").String()
	if st.Running {
		mode = t.au.Cyan("running").String()
	}
	lines := []string{
		t.renderProp("Generation", "%v", st.Iteration),
		t.renderProp("Population", "%v", st.Population),
		t.renderProp("Interval", "%v ms", t.s.Speed()),
		t.renderProp("Mode", "%v", mode),
	}
	r := t.s.VisibleRange()
	lines = append(lines, t.renderProp("Origin", "%d,%d", r.MinX, r.MinY))
	if n := t.s.Notice(); n != "" {
		lines = append(lines, " "+t.au.Red(n).String())
	}
	return lines
}

func (t *Terminal) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Green(name).String()+": "+valueFormat, values...)
}

func (t *Terminal) refresh() {
	if t.g == nil {
		return
	}
	if v, err := t.g.View(fieldView); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, t.frame())
	}
	if v, err := t.g.View(statusView); err == nil {
		v.Clear()
		for _, line := range t.statusLines() {
			_, _ = fmt.Fprintln(v, line)
		}
	}
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, sideWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	v, err := g.SetView(fieldView, sideWidth+1, 0, maxX-1, maxY-4)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Game of Life"
	}
	cols, rows := v.Size()
	t.resize(cols, rows)

	if v, err := g.SetView(helpView, -1, maxY-4, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(" ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	t.refresh()
	return nil
}

// click toggles the cell under the character at (cx, cy) of the field view.
func (t *Terminal) click(cx, cy int) {
	cs := t.s.View().CellSize
	px, py := (float64(cx)+0.5)*cs, (float64(cy)+0.5)*cs
	ctrl := t.s.Controller()
	ctrl.PointerDown(px, py)
	ctrl.PointerUp(px, py)
}

func (t *Terminal) pan(dx, dy int) error {
	cs := t.s.View().CellSize
	t.s.Controller().Pan(float64(dx)*cs, float64(dy)*cs)
	t.refresh()
	return nil
}

func (t *Terminal) cmdQuit() error { return gocui.ErrQuit }

func (t *Terminal) cmdToggle() error {
	t.s.TogglePause()
	t.refresh()
	return nil
}

func (t *Terminal) cmdStep() error {
	t.s.Step()
	t.refresh()
	return nil
}

func (t *Terminal) cmdClear() error {
	t.s.Clear()
	t.refresh()
	return nil
}

func (t *Terminal) cmdRandomize() error {
	t.s.Randomize()
	t.refresh()
	return nil
}

func (t *Terminal) cmdExport() error {
	// Failures surface through the session notice; logging would garble the screen.
	_ = t.s.SaveFile("")
	t.refresh()
	return nil
}

func (t *Terminal) cmdImport() error {
	_ = t.s.LoadFile("")
	t.refresh()
	return nil
}

func (t *Terminal) cmdSlower() error {
	t.s.SetSpeed(t.s.Speed() + speedStep)
	t.refresh()
	return nil
}

func (t *Terminal) cmdFaster() error {
	t.s.SetSpeed(t.s.Speed() - speedStep)
	t.refresh()
	return nil
}

func (t *Terminal) cmdMouseClick() error {
	v, err := t.g.View(fieldView)
	if err != nil {
		return err
	}
	cx, cy := v.Cursor()
	t.click(cx, cy)
	t.refresh()
	return nil
}
