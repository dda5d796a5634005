package main

import (
	"flag"
	"fmt"
	"os"

	"scene-viewer/internal/animation"
	"scene-viewer/internal/commands"
	"scene-viewer/internal/graphics"
	"scene-viewer/internal/hud"
	"scene-viewer/internal/input"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/session"
	"scene-viewer/internal/terminal"
	"scene-viewer/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", viewerconfig.DefaultPath, "preferences file (YAML)")
	flag.Parse()

	prefs, cfgErr := viewerconfig.Load(*configPath)
	log := logger.New(prefs.LogPath, prefs.LogKeep)
	if cfgErr != nil {
		log.Log(cfgErr.Error() + "; using defaults")
	}

	err := graphics.Run(prefs.Window, func() (graphics.Frame, error) {
		bg := prefs.Window.Background
		backend, err := graphics.NewBackend(rl.NewColor(bg[0], bg[1], bg[2], 255))
		if err != nil {
			return graphics.Frame{}, fmt.Errorf("graphics backend: %w", err)
		}
		sess, err := session.New(prefs, backend, backend, animation.SystemClock, log)
		if err != nil {
			backend.Close()
			return graphics.Frame{}, err
		}

		reg := commands.NewRegistry()
		sess.RegisterCommands(reg)
		term := terminal.New(log, reg)
		overlay := hud.New()
		var sampler input.Sampler = graphics.NewSampler()
		log.Logf("scene ready: %d objects; press ` for the console", sess.Store.Len())

		return graphics.Frame{
			Update: func() bool {
				in := sampler.Sample()
				if term.Update(in) {
					in = in.PointerOnly()
				}
				return sess.Update(in)
			},
			Draw: func() {
				sess.Draw()
				if sess.ShowHUD {
					overlay.Draw(sess.Status())
				}
				term.Draw()
			},
			Resize: sess.Resize,
			Close: func() {
				sess.Close()
				backend.Close()
			},
		}, nil
	})
	if err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
