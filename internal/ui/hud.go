//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"epi-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders run statistics and spread controls to the right of the grid.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls []controlState
	setter   core.FloatParameterSetter
	offsetX  int
}

type controlState struct {
	control core.ParameterControl
	value   float64
	known   bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type == core.ParamTypeFloat {
				h.controls = append(h.controls, controlState{control: ctrl})
			}
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks on the controls.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		p, ok := h.snapshot.Lookup(st.control.Key)
		st.known = false
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			st.value = v
			st.known = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		st := &h.controls[i]
		if !st.known {
			continue
		}
		switch {
		case pointInRect(px, my, st.minus):
			h.adjust(st, -1)
			return
		case pointInRect(px, my, st.plus):
			h.adjust(st, 1)
			return
		}
	}
}

func (h *HUD) adjust(st *controlState, direction float64) {
	target := st.control.Clamp(st.value + direction*st.control.Step)
	if math.Abs(target-st.value) < 1e-9 {
		return
	}
	if h.setter.SetFloatParameter(st.control.Key, target) {
		st.value = target
	}
}

// Draw paints the panel at offsetX. The panel is as tall as the scaled grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.layoutControls(height)
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13

	y := panelPadding + headerBaseline
	text.Draw(h.panel, strings.ToUpper(h.sim.Name()), face, panelPadding, y, titleColor)
	for _, group := range h.snapshot.Groups {
		if group.Name == "Spread" {
			continue
		}
		y += lineGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, dimColor)
		for _, p := range group.Params {
			y += textLine
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, labelColor)
		}
	}

	for i := range h.controls {
		st := &h.controls[i]
		h.drawControl(st, y)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(st *controlState, contentBottom int) {
	if st.top <= contentBottom {
		// Overlaps the statistics on short windows.
		return
	}
	face := basicfont.Face7x13
	text.Draw(h.panel, st.control.Label, face, panelPadding, st.top+labelBaseline, labelColor)
	value := "--"
	if st.known {
		value = strconv.FormatFloat(st.value, 'f', 2, 64)
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, st.minus.Min.X-buttonGap-w, st.top+labelBaseline, labelColor)
	h.drawButton(st.minus, "-", st.known)
	h.drawButton(st.plus, "+", st.known)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutControls stacks the controls at the bottom of a panel of the given
// height.
func (h *HUD) layoutControls(height int) {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := height - (len(h.controls)-i)*lineHeight - panelPadding
		by := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.controls[i].top = top
		h.controls[i].minus = minus
		h.controls[i].plus = plus
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	lineGap        = 22
	textLine       = 15
)
