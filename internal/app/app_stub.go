//go:build !ebiten

package app

import "errors"

var errNoGUI = errors.New("the GUI needs the 'ebiten' build tag")

// Game stands in for the ebiten front-end in headless builds. Session and
// Config remain fully usable.
type Game struct{}

// New panics; build with the ebiten tag for the GUI.
func New(*Session, int) *Game {
	panic(errNoGUI)
}

// Update reports that the GUI is unavailable.
func (g *Game) Update() error { return errNoGUI }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
