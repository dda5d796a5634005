package viewerconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"scene-viewer/internal/logger"
	"scene-viewer/internal/primitives"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Window holds window and frame-loop settings.
type Window struct {
	Width      int32    `yaml:"width"`
	Height     int32    `yaml:"height"`
	Title      string   `yaml:"title"`
	Fullscreen bool     `yaml:"fullscreen"`
	TargetFPS  int32    `yaml:"target_fps"`
	Background [3]uint8 `yaml:"background"`
}

// Camera holds the starting orbit and the projection.
type Camera struct {
	Theta  float32 `yaml:"theta"`
	Phi    float32 `yaml:"phi"`
	Radius float32 `yaml:"radius"`
	FovY   float32 `yaml:"fov_y_degrees"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// Prefs are the viewer preferences. Scene contents are never saved; InitialScene only
// lists what to spawn at startup.
type Prefs struct {
	Window            Window             `yaml:"window"`
	Camera            Camera             `yaml:"camera"`
	TransposeUniforms bool               `yaml:"transpose_uniforms"`
	ShowHUD           bool               `yaml:"show_hud"`
	LogPath           string             `yaml:"log_path"`
	LogKeep           int                `yaml:"log_keep"`
	InitialScene      []primitives.Shape `yaml:"initial_scene"`
	Primitives        []primitives.Def   `yaml:"primitives,omitempty"`
}

// Default returns the built-in preferences: a 1024×720 window, the camera at θ=π/4, φ=1.3,
// r=5 with a 45° lens, HUD on, and a grid, a box and a sphere in the scene.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:      1024,
			Height:     720,
			Title:      "Multi",
			TargetFPS:  60,
			Background: [3]uint8{25, 25, 25},
		},
		Camera: Camera{
			Theta:  math32.Pi / 4,
			Phi:    1.3,
			Radius: 5,
			FovY:   45,
			Near:   1,
			Far:    100,
		},
		ShowHUD:      true,
		LogPath:      logger.DefaultPath,
		LogKeep:      logger.DefaultKeep,
		InitialScene: []primitives.Shape{primitives.Grid, primitives.Box, primitives.Sphere},
	}
}

// Load reads preferences from a YAML file on top of Default, so the file only needs the
// keys it changes. A missing file is not an error and yields Default. A file that does not
// parse returns Default together with the error.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p, nil
}

// Catalog returns the primitive catalog with this file's overrides applied.
func (p Prefs) Catalog() (*primitives.Catalog, error) {
	c := primitives.NewCatalog()
	for _, d := range p.Primitives {
		if err := c.Override(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Aspect returns the window's width/height ratio.
func (w Window) Aspect() float32 {
	if w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}
