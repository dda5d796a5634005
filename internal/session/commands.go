package session

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"

	"scene-viewer/internal/commands"
	"scene-viewer/internal/primitives"
)

// RegisterCommands binds the console commands to this session.
func (s *Session) RegisterCommands(reg *commands.Registry) {
	reg.Register("spawn", "<box|cylinder|sphere|globe|grid>  add an object and select it", nil, s.cmdSpawn)
	reg.Register("delete", "[index]  remove the selected object, or the one at index", nil, s.cmdDelete)
	reg.Register("select", "<index|next>  change the selection", nil, s.cmdSelect)
	reg.Register("anim", "toggle idle animation (also moves the selection, like Tab)", nil, func([]string) error {
		s.ToggleAnimation()
		return nil
	})
	reg.Register("mode", "show the fill mode (hold W for wireframe, S for solid)", nil, func([]string) error {
		s.log.Logf("mode %s", s.comp.Mode())
		return nil
	})
	reg.Register("list", "list objects in draw order", nil, s.cmdList)

	camFlags := flag.NewFlagSet("camera", flag.ContinueOnError)
	theta := camFlags.Float64("theta", math.NaN(), "azimuth, radians")
	phi := camFlags.Float64("phi", math.NaN(), "polar angle, radians")
	radius := camFlags.Float64("radius", math.NaN(), "distance from the origin")
	reg.Register("camera", "[--theta r] [--phi r] [--radius d]  move the orbit camera", camFlags, func([]string) error {
		c := s.Camera
		t, p, r := c.Theta, c.Phi, c.Radius
		if !math.IsNaN(*theta) {
			t = float32(*theta)
		}
		if !math.IsNaN(*phi) {
			p = float32(*phi)
		}
		if !math.IsNaN(*radius) {
			r = float32(*radius)
		}
		c.Set(t, p, r)
		s.log.Logf("camera theta=%.3f phi=%.3f radius=%.2f", c.Theta, c.Phi, c.Radius)
		return nil
	})

	hudFlags := flag.NewFlagSet("hud", flag.ContinueOnError)
	show := hudFlags.Bool("show", false, "show the status overlay")
	hide := hudFlags.Bool("hide", false, "hide the status overlay")
	reg.Register("hud", "[--show|--hide]  toggle the status overlay", hudFlags, func([]string) error {
		switch {
		case *show && *hide:
			return errors.New("hud: --show and --hide are exclusive")
		case *show:
			s.ShowHUD = true
		case *hide:
			s.ShowHUD = false
		default:
			s.ShowHUD = !s.ShowHUD
		}
		return nil
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

func (s *Session) cmdSpawn(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: spawn <shape>")
	}
	shape, err := primitives.ParseShape(args[0])
	if err != nil {
		return err
	}
	return s.Spawn(shape)
}

func (s *Session) cmdDelete(args []string) error {
	switch len(args) {
	case 0:
		return s.Delete()
	case 1:
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("delete: bad index %q", args[0])
		}
		return s.DeleteAt(i)
	}
	return errors.New("usage: delete [index]")
}

func (s *Session) cmdSelect(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: select <index|next>")
	}
	if s.Store.Len() == 0 {
		return ErrNoSelection
	}
	if args[0] == "next" {
		s.Store.CycleSelection()
	} else {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("select: bad index %q", args[0])
		}
		if !s.Store.Select(i) {
			return fmt.Errorf("select: no object #%d", i)
		}
	}
	sel, _ := s.Store.Selection()
	s.log.Logf("selected %s #%d", s.Store.At(sel).Shape, sel)
	return nil
}

func (s *Session) cmdList(_ []string) error {
	sel, _ := s.Store.Selection()
	if s.Store.Len() == 0 {
		s.log.Log("scene is empty")
		return nil
	}
	for i, obj := range s.Store.All() {
		mark := " "
		if i == sel {
			mark = "*"
		}
		drawn := "drawn"
		if obj.Mesh == nil {
			drawn = "no mesh"
		}
		s.log.Logf("%s #%d %s (%s, %s)", mark, i, obj.Shape, obj.Behavior, drawn)
	}
	return nil
}
