package primitives

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// defaultDefs are the built-in primitive definitions. Globe has no geometry yet; it is
// listed so it can be spawned and carries a colour for when it does.
var defaultDefs = map[Shape]Def{
	Box:      {Shape: Box, Size: [3]float32{1, 1, 1}, Color: "orange"},
	Cylinder: {Shape: Cylinder, Size: [3]float32{1, 0.5, 3}, Slices: 20, Stacks: 20, Color: "yellow"},
	Sphere:   {Shape: Sphere, Size: [3]float32{1, 0, 0}, Slices: 20, Stacks: 20, Color: "crimson"},
	Globe:    {Shape: Globe, Size: [3]float32{1, 0, 0}, Slices: 20, Stacks: 20, Color: "steelblue"},
	Grid:     {Shape: Grid, Size: [3]float32{3, 3, 0}, Slices: 20, Stacks: 20, Color: "dimgray"},
}

// Catalog maps each shape to its definition. The zero value is not usable; use NewCatalog.
type Catalog struct {
	defs map[Shape]Def
}

// NewCatalog returns a catalog holding a private copy of the built-in definitions.
func NewCatalog() *Catalog {
	c := &Catalog{}
	if err := copier.CopyWithOption(&c.defs, &defaultDefs, copier.Option{DeepCopy: true}); err != nil {
		c.defs = make(map[Shape]Def, len(defaultDefs))
		for k, v := range defaultDefs {
			c.defs[k] = v
		}
	}
	return c
}

// Def returns the definition for s. Unknown shapes return false.
func (c *Catalog) Def(s Shape) (Def, bool) {
	d, ok := c.defs[s]
	return d, ok
}

// Override merges non-zero fields of d into the definition for d.Shape.
// Fields left at their zero value keep the built-in value.
func (c *Catalog) Override(d Def) error {
	cur, ok := c.defs[d.Shape]
	if !ok {
		return fmt.Errorf("override %v: %w", d.Shape, ErrUnknownShape)
	}
	if err := copier.CopyWithOption(&cur, &d, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("override %v: %w", d.Shape, err)
	}
	c.defs[d.Shape] = cur
	return nil
}
