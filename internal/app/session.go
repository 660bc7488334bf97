package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"infinite-life/internal/core"
	rng "infinite-life/pkg/core"
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

const (
	// KeyInterval is the HUD parameter key for the generation interval.
	KeyInterval = "interval_ms"

	noticeLoadFailed = "failed to load layout"

	scatterThreshold = 0.05
	scatterDensity   = 0.6
)

// ErrUnknownPattern is returned by Place for unregistered pattern names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Session owns the whole simulation and view state and exposes the operations
// front-ends invoke. All methods must be called from one event loop.
type Session struct {
	life  *life.Life
	ctrl  *viewport.Controller
	clock *core.Clock

	file          string
	seed          int64
	width, height float64
	notice        string
}

// NewSession builds a paused session from cfg. A nil now uses time.Now.
func NewSession(cfg *Config, now func() time.Time) *Session {
	s := &Session{
		life:   life.New(),
		file:   cfg.File,
		seed:   cfg.Seed,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
	}
	if s.file == "" {
		s.file = DefaultLayoutFile
	}
	s.ctrl = viewport.NewController(viewport.New(cfg.CellSize), s)
	s.clock = core.NewClock(intervalOf(clampInterval(cfg.IntervalMS)), now)
	return s
}

func clampInterval(ms int) int {
	return intervalControl.Clamp(ms)
}

func intervalOf(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }

var intervalControl = core.ParameterControl{
	Key:   KeyInterval,
	Label: "Interval (ms)",
	Step:  10,
	Min:   MinIntervalMS,
	Max:   MaxIntervalMS,
}

// Name identifies the simulation.
func (s *Session) Name() string { return s.life.Name() }

// Cells exposes the current generation.
func (s *Session) Cells() *life.CellSet { return s.life.Cells() }

// Status returns the simulation counters.
func (s *Session) Status() life.Status { return s.life.Status() }

// Controller exposes the viewport controller for input forwarding.
func (s *Session) Controller() *viewport.Controller { return s.ctrl }

// View returns the current viewport.
func (s *Session) View() viewport.Viewport { return s.ctrl.View() }

// Resize records the drawing surface size in pixels.
func (s *Session) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Surface returns the drawing surface size in pixels.
func (s *Session) Surface() (float64, float64) { return s.width, s.height }

// VisibleRange returns the cells intersecting the drawing surface.
func (s *Session) VisibleRange() viewport.Range {
	return s.ctrl.View().VisibleRange(s.width, s.height)
}

// Notice returns the latest user-facing message, if any.
func (s *Session) Notice() string { return s.notice }

// Toggle flips the cell at (x, y).
func (s *Session) Toggle(x, y int) bool { return s.life.Toggle(x, y) }

// Tick polls the clock and advances one generation when a tick is due and
// the simulation runs. It reports whether a generation was computed.
func (s *Session) Tick() bool {
	if !s.clock.Due() {
		return false
	}
	_, advanced := s.life.Step()
	return advanced
}

// TogglePause starts or pauses the simulation and returns the new state.
func (s *Session) TogglePause() bool {
	s.life.SetRunning(!s.life.Running())
	return s.life.Running()
}

// Step computes a single generation, even while paused.
func (s *Session) Step() int { return s.life.Advance() }

// Clear kills every cell, pauses and resets the iteration counter.
func (s *Session) Clear() {
	s.life.Clear()
	s.notice = ""
}

// Speed returns the generation interval in milliseconds.
func (s *Session) Speed() int { return int(s.clock.Interval() / time.Millisecond) }

// SetSpeed re-arms the clock with a new interval, clamped to
// [MinIntervalMS, MaxIntervalMS], and returns the interval applied.
func (s *Session) SetSpeed(ms int) int {
	ms = clampInterval(ms)
	s.clock.SetInterval(intervalOf(ms))
	return ms
}

// Export encodes the live cells.
func (s *Session) Export() string { return life.Encode(s.life.Cells()) }

// Import clears the session and loads text. On failure the board stays empty
// and a notice is set.
func (s *Session) Import(text string) error {
	s.Clear()
	cells, err := life.Decode(text)
	if err != nil {
		s.notice = noticeLoadFailed
		return fmt.Errorf("import: %w", err)
	}
	s.life.Replace(cells)
	return nil
}

// File returns the default export/import path.
func (s *Session) File() string { return s.file }

// SaveFile writes the export to path, or to the session file when path is empty.
func (s *Session) SaveFile(path string) error {
	if path == "" {
		path = s.file
	}
	if err := os.WriteFile(path, []byte(s.Export()), 0o644); err != nil {
		s.notice = "failed to save layout"
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.notice = "saved " + path
	return nil
}

// LoadFile imports the layout stored at path, or at the session file when
// path is empty.
func (s *Session) LoadFile(path string) error {
	if path == "" {
		path = s.file
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.notice = noticeLoadFailed
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.Import(string(data)); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.notice = "loaded " + path
	return nil
}

// Place stamps the named pattern with its top-left corner at (x, y).
func (s *Session) Place(name string, x, y int) error {
	p, ok := core.LookupPattern(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	cells := s.life.Cells()
	for _, c := range p.Cells {
		cells.Add(life.Cell{X: x + c[0], Y: y + c[1]})
	}
	return nil
}

// Randomize sprinkles noise-shaped clusters of cells over the visible area and
// returns how many cells were added. Each call uses the next seed.
func (s *Session) Randomize() int {
	r := s.VisibleRange()
	cells := s.life.Cells()
	added := 0
	rng.Scatter(s.seed, r.MinX, r.MinY, r.Width(), r.Height(), scatterThreshold, scatterDensity, func(x, y int) {
		c := life.Cell{X: x, Y: y}
		if !cells.Contains(c) {
			cells.Add(c)
			added++
		}
	})
	s.seed++
	return added
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	st := s.life.Status()
	v := s.ctrl.View()
	state := "paused"
	if st.Running {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
			{Key: "iteration", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Iteration)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Population)},
			{Key: KeyInterval, Label: intervalControl.Label, Type: core.ParamTypeInt, Value: strconv.Itoa(s.Speed())},
		}},
		{Name: "View", Params: []core.Parameter{
			{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeText, Value: strconv.FormatFloat(v.CellSize, 'f', 1, 64)},
			{Key: "gesture", Label: "Gesture", Type: core.ParamTypeText, Value: s.ctrl.Phase().String()},
		}},
	}}
}

// ParameterControls lists the HUD-adjustable controls.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{intervalControl}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != KeyInterval {
		return false
	}
	s.SetSpeed(value)
	return true
}
