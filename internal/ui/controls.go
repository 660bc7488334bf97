package ui

import (
	"image"
	"strconv"

	"infinite-life/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 18
	controlHeight  = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)

// controlState tracks one -/+ control and its last known value.
type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel owns the adjustable controls of a HUD panel in panel-local
// coordinates.
type controlPanel struct {
	width    int
	controls []controlState
	setter   core.IntParameterSetter
}

func newControlPanel(src any, width int) *controlPanel {
	p := &controlPanel{width: width}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		p.setter = setter
	}
	return p
}

// layout positions the controls starting at top and returns the y below them.
func (p *controlPanel) layout(top int) int {
	for i := range p.controls {
		rowTop := top + i*controlHeight
		buttonY := rowTop + (controlHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
	return top + len(p.controls)*controlHeight
}

func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

// click applies the control under the panel-local point (x, y), if any.
func (p *controlPanel) click(x, y int) bool {
	pt := image.Pt(x, y)
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			return p.adjust(state, -1)
		}
		if pt.In(state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *controlPanel) target(state *controlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.value + direction*step)
}

func (p *controlPanel) canAdjust(state *controlState, direction int) bool {
	if p.setter == nil || !state.hasValue || direction == 0 {
		return false
	}
	return p.target(state, direction) != state.value
}

func (p *controlPanel) adjust(state *controlState, direction int) bool {
	if !p.canAdjust(state, direction) {
		return false
	}
	target := p.target(state, direction)
	if !p.setter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.value = target
	return true
}
