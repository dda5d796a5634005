package graphics

import (
	"scene-viewer/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is the set of callbacks Run drives once the window and GL context exist.
type Frame struct {
	// Update handles input for one frame and reports whether to quit.
	Update func() (quit bool)
	// Draw renders one frame between BeginDrawing and EndDrawing.
	Draw func()
	// Resize is called with the new framebuffer size after the window is resized. Optional.
	Resize func(width, height int32)
	// Close releases GPU resources before the context goes away. Optional.
	Close func()
}

// Run opens the window, calls setup to build everything that needs a GL context, then
// runs the frame loop until the window closes or Update asks to quit. An error from
// setup is returned after the window is closed.
//
// Escape is not raylib's exit key here: the console uses it and the scene maps it to quit.
func Run(win viewerconfig.Window, setup func() (Frame, error)) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	f, err := setup()
	if err != nil {
		return err
	}
	if f.Close != nil {
		defer f.Close()
	}

	for !rl.WindowShouldClose() {
		if f.Resize != nil && rl.IsWindowResized() {
			f.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		if f.Update() {
			break
		}

		rl.BeginDrawing()
		f.Draw()
		rl.EndDrawing()
	}
	return nil
}
