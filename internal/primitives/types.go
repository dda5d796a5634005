package primitives

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownShape is returned when a shape name is not one of the known primitives.
var ErrUnknownShape = errors.New("unknown shape")

// Shape is the closed set of primitive tags the geometry factory understands.
// Add a shape by adding a constant here and a case in geometry.Build.
type Shape int

const (
	Box Shape = iota
	Cylinder
	Sphere
	Globe
	Grid
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{Box, Cylinder, Sphere, Globe, Grid}

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	case Globe:
		return "globe"
	case Grid:
		return "grid"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Round reports whether objects of this shape spin instead of pulsing when idle.
func (s Shape) Round() bool {
	return s == Cylinder || s == Sphere
}

// ParseShape maps a name such as "sphere" (case-insensitive) to its Shape.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes {
		if s.String() == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q (use box, cylinder, sphere, globe, grid)", ErrUnknownShape, name)
}

// MarshalYAML writes a shape as its name.
func (s Shape) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a shape from its name.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	v, err := ParseShape(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Def is the YAML definition of a primitive: colour and shape parameters for the geometry factory.
// Size is interpreted per shape:
//   - box: width, height, depth
//   - cylinder: bottom radius, top radius, height
//   - sphere: radius
//   - grid: width, depth
//
// Slices and Stacks control tessellation of round shapes; for a grid they are the vertex
// counts along X and Z.
type Def struct {
	Shape  Shape      `yaml:"shape"`
	Size   [3]float32 `yaml:"size,omitempty"`
	Slices int        `yaml:"slices,omitempty"`
	Stacks int        `yaml:"stacks,omitempty"`
	Color  string     `yaml:"color,omitempty"` // x/image/colornames name, e.g. "crimson"
}

// UnmarshalYAML decodes a definition and requires an explicit shape key, since the zero
// Shape is Box and a missing key would otherwise override the box silently.
func (d *Def) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		hasShape := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "shape" {
				hasShape = true
				break
			}
		}
		if !hasShape {
			return fmt.Errorf("%w: primitive entry on line %d has no shape key", ErrUnknownShape, node.Line)
		}
	}
	type plain Def
	return node.Decode((*plain)(d))
}
