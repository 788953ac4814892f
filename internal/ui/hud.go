//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"advent-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the animation.
type HUD struct {
	anim       core.Animation
	params     core.ParametersProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	status     Status
	rows       []row
}

type row struct {
	label string
	value string
}

// NewHUD constructs a HUD for the animation. params may be nil.
func NewHUD(anim core.Animation, params core.ParametersProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{anim: anim, params: params, width: width, title: buildTitle(anim)}
	h.rows = snapshotRows(params)
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update stores the latest playback status.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.anim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)

	y += infoSpacing
	text.Draw(h.panel, fmt.Sprintf("step %d  %s", h.status.Steps, h.status.State()), face, panelPadding, y, textColor)

	y += infoSpacing
	for _, line := range keyHelp {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	y += infoSpacing
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No tunables", face, panelPadding, y, dimColor)
		return
	}
	for _, r := range h.rows {
		y += lineHeight
		text.Draw(h.panel, r.label, face, panelPadding, y, textColor)
		w := text.BoundString(face, r.value).Dx()
		text.Draw(h.panel, r.value, face, h.width-panelPadding-w, y, textColor)
	}
}

func buildTitle(anim core.Animation) string {
	if anim == nil || anim.Name() == "" {
		return "Viewer"
	}
	return strings.ToUpper(anim.Name())
}

func snapshotRows(params core.ParametersProvider) []row {
	if params == nil {
		return nil
	}
	var rows []row
	for _, g := range params.Parameters().Groups {
		for _, p := range g.Params {
			rows = append(rows, row{label: p.Label, value: p.Value})
		}
	}
	return rows
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)
