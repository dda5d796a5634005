package hud

import (
	"fmt"

	"scene-viewer/internal/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// fpsInterval: the FPS text is only rebuilt every N frames.
	fpsInterval = 30
)

// Overlay draws the status block in the top-left corner and the FPS counter top-right.
type Overlay struct {
	frameCount uint32
	fpsText    string
}

// New returns an overlay.
func New() *Overlay {
	return &Overlay{}
}

// Lines formats the status block, one line per entry.
func Lines(st session.Status) []string {
	sel := "none"
	if st.Selection >= 0 {
		sel = fmt.Sprintf("#%d %s", st.Selection, st.Current)
	}
	anim := "paused"
	if st.Animating {
		anim = "running"
	}
	return []string{
		fmt.Sprintf("objects: %d  selected: %s", st.Objects, sel),
		fmt.Sprintf("mode: %s", st.Mode),
		fmt.Sprintf("animation: %s", anim),
		"` console  tab cycle  del remove",
	}
}

// Draw renders the overlay for st. Call after the scene, before the console.
func (o *Overlay) Draw(st session.Status) {
	o.frameCount++
	if o.fpsText == "" || o.frameCount%fpsInterval == 0 {
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	w := rl.MeasureText(o.fpsText, fontSize)
	rl.DrawText(o.fpsText, screenW-w-padding, padding, fontSize, rl.Green)

	for i, line := range Lines(st) {
		rl.DrawText(line, padding, padding+int32(i*lineHeight), fontSize, rl.LightGray)
	}
}
