//go:build ebiten

package app

import (
	"log"
	"slices"

	"infinite-life/internal/render"
	"infinite-life/internal/ui"
	"infinite-life/pkg/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const speedStep = 10

// Game adapts a Session to the ebiten.Game interface. ebiten calls Update on a
// single goroutine, which serialises input, clock ticks and control actions.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	width, height int

	pressed      bool
	lastX, lastY int

	touchIDs []ebiten.TouchID
	touches  []viewport.Point
}

// New constructs a Game for the provided session.
func New(s *Session, hudWidth int) *Game {
	w, h := s.Surface()
	return &Game{
		session: s,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(s),
		width:   int(w),
		height:  int(h),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	g.hud.Update(g.width)
	g.overlay.Update(g.width, g.height)
	g.handleMouse()
	g.handleTouch()

	g.session.Tick()
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := s.SaveFile(""); err != nil {
			log.Printf("export: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		if err := s.LoadFile(""); err != nil {
			log.Printf("import: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		s.SetSpeed(s.Speed() + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		s.SetSpeed(s.Speed() - speedStep)
	}
}

func (g *Game) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Game) handleMouse() {
	ctrl := g.session.Controller()
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	inside := g.inside(mx, my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside:
		ctrl.PointerDown(fx, fy)
		g.pressed = true
	case g.pressed && !inside:
		ctrl.PointerLeave()
		g.pressed = false
	case g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ctrl.PointerUp(fx, fy)
		g.pressed = false
	case g.pressed && (mx != g.lastX || my != g.lastY):
		ctrl.PointerMove(fx, fy)
	}
	g.lastX, g.lastY = mx, my

	if inside {
		if _, wy := ebiten.Wheel(); wy != 0 {
			ctrl.Wheel(fx, fy, wy)
		}
	}
}

func (g *Game) handleTouch() {
	ctrl := g.session.Controller()

	prev := g.touchIDs
	ids := ebiten.AppendTouchIDs(nil)
	slices.Sort(ids)
	points := make([]viewport.Point, len(ids))
	for i, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points[i] = viewport.Point{X: float64(x), Y: float64(y)}
	}

	for i, id := range prev {
		if !inpututil.IsTouchJustReleased(id) || i >= len(g.touches) {
			continue
		}
		ctrl.TouchEnd(len(points), g.touches[i])
	}
	g.touchIDs = ids

	switch {
	case len(inpututil.AppendJustPressedTouchIDs(nil)) > 0:
		ctrl.TouchStart(points)
	case len(points) > 0 && !slices.Equal(points, g.touches):
		ctrl.TouchMove(points)
	}
	g.touches = points
}

// Draw renders the grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	plan := render.Layout(g.session.View(), float64(g.width), float64(g.height), g.session.Cells())
	g.painter.Draw(screen, plan)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout gives the grid everything left of the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth - g.hud.Width()
	if g.width < 1 {
		g.width = 1
	}
	g.height = outsideHeight
	g.session.Resize(float64(g.width), float64(g.height))
	return outsideWidth, outsideHeight
}
