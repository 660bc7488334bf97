package viewport

import "math"

// DeadZone is the pointer travel, in pixels along either axis, below which a
// press-and-release counts as a click rather than a drag.
const DeadZone = 3.0

// Toggler flips the state of a grid cell.
type Toggler interface {
	Toggle(x, y int) bool
}

// Point is a pointer or touch position in screen pixels.
type Point struct {
	X, Y float64
}

// Phase enumerates the interaction states of a Controller.
type Phase int

const (
	// Idle means no pointer is held.
	Idle Phase = iota
	// Pressed means a pointer is held but has not left the dead zone.
	Pressed
	// Dragging means a held pointer is panning the view.
	Dragging
	// Pinching means a two-point zoom gesture is active.
	Pinching
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	case Pinching:
		return "pinching"
	default:
		return "idle"
	}
}

// pinchFrame is the reference captured on the first two-point frame.
type pinchFrame struct {
	distance float64
	mid      Point
	view     Viewport
}

// Controller owns a Viewport and interprets raw input against it. Clicks are
// forwarded to the Toggler as cell coordinates.
type Controller struct {
	view   Viewport
	target Toggler

	phase  Phase
	anchor Point
	pinch  *pinchFrame
}

// NewController returns an idle controller for view that toggles cells on target.
func NewController(view Viewport, target Toggler) *Controller {
	view.CellSize = ClampCellSize(view.CellSize)
	return &Controller{view: view, target: target}
}

// View returns the current viewport.
func (c *Controller) View() Viewport { return c.view }

// Phase reports the interaction state.
func (c *Controller) Phase() Phase { return c.phase }

// Pan shifts the view by (dx, dy) pixels.
func (c *Controller) Pan(dx, dy float64) { c.view.Pan(dx, dy) }

// CenterOn moves cell (x, y) to the middle of a width x height surface.
func (c *Controller) CenterOn(x, y int, width, height float64) {
	c.view.CenterOn(x, y, width, height)
}

// PointerDown starts a press at (x, y). A press during a pinch is ignored.
func (c *Controller) PointerDown(x, y float64) {
	if c.phase == Pinching {
		return
	}
	c.phase = Pressed
	c.anchor = Point{X: x, Y: y}
}

// PointerMove tracks a held pointer. Once travel exceeds DeadZone the press
// becomes a drag and the view follows the pointer.
func (c *Controller) PointerMove(x, y float64) {
	if c.phase != Pressed && c.phase != Dragging {
		return
	}
	dx := x - c.anchor.X
	dy := y - c.anchor.Y
	if c.phase == Pressed {
		if math.Abs(dx) <= DeadZone && math.Abs(dy) <= DeadZone {
			return
		}
		c.phase = Dragging
	}
	c.view.Pan(dx, dy)
	c.anchor = Point{X: x, Y: y}
}

// PointerUp ends a press at (x, y). A press that never became a drag toggles
// the cell under (x, y).
func (c *Controller) PointerUp(x, y float64) {
	click := c.phase == Pressed
	c.reset()
	if click && c.target != nil {
		cx, cy := c.view.ScreenToWorld(x, y)
		c.target.Toggle(cx, cy)
	}
}

// PointerLeave aborts any gesture without toggling.
func (c *Controller) PointerLeave() { c.reset() }

// Wheel zooms one step anchored at (x, y). Positive dy zooms in, negative dy
// zooms out and zero is ignored.
func (c *Controller) Wheel(x, y, dy float64) {
	switch {
	case dy > 0:
		c.view.ZoomAt(x, y, c.view.CellSize*(1+ZoomStep))
	case dy < 0:
		c.view.ZoomAt(x, y, c.view.CellSize/(1+ZoomStep))
	}
}

// TouchStart handles new contact points. A single contact starts a press.
func (c *Controller) TouchStart(points []Point) {
	if len(points) == 1 {
		c.PointerDown(points[0].X, points[0].Y)
	}
}

// TouchMove handles moved contact points: one contact drags, two pinch.
func (c *Controller) TouchMove(points []Point) {
	switch len(points) {
	case 1:
		c.PointerMove(points[0].X, points[0].Y)
	case 2:
		c.pinchTo(points[0], points[1])
	}
}

// TouchEnd handles a lifted contact at p with remaining contacts still down.
// Lifting the last contact of an undragged press toggles the cell under p.
// Any lift ends the gesture.
func (c *Controller) TouchEnd(remaining int, p Point) {
	if remaining == 0 {
		c.PointerUp(p.X, p.Y)
		return
	}
	c.reset()
}

func (c *Controller) pinchTo(a, b Point) {
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

	if c.pinch == nil {
		c.phase = Pinching
		c.pinch = &pinchFrame{distance: dist, mid: mid, view: c.view}
		return
	}
	if c.pinch.distance == 0 {
		return
	}

	ref := c.pinch.view
	wx, wy := ref.WorldAt(c.pinch.mid.X, c.pinch.mid.Y)
	size := ClampCellSize(ref.CellSize * dist / c.pinch.distance)
	c.view = Viewport{
		OffsetX:  mid.X - wx*size,
		OffsetY:  mid.Y - wy*size,
		CellSize: size,
	}
}

func (c *Controller) reset() {
	c.phase = Idle
	c.pinch = nil
}
