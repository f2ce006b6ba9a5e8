package sdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Composite geometric values. Each of them may be written either with named
// sub-elements (<x>1</x><y>2</y><z>3</z>) or as a single whitespace
// delimited list (1 2 3). Named form wins when any of the names is present.

// Vector3 mirrors SDF vector3 (positions, sizes, axes, gravity).
type Vector3 struct {
	X, Y, Z float64
}

// Vector2d mirrors SDF vector2d (plane size, polyline points, distortion center).
type Vector2d struct {
	X, Y float64
}

// Orientation is rotation given as fixed axis roll, pitch, yaw in radians.
type Orientation struct {
	Roll, Pitch, Yaw float64
}

// Color is RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Pose is position plus orientation, optionally relative to named frame.
type Pose struct {
	Position    Vector3
	Orientation Orientation
	Frame       *string
}

// Time mirrors SDF time: seconds and nanoseconds.
type Time struct {
	Sec  int
	Nsec int
}

func (v Vector3) String() string {
	return joinFloats(v.X, v.Y, v.Z)
}

func (v Vector2d) String() string {
	return joinFloats(v.X, v.Y)
}

func (o Orientation) String() string {
	return joinFloats(o.Roll, o.Pitch, o.Yaw)
}

func (c Color) String() string {
	return joinFloats(c.R, c.G, c.B, c.A)
}

func (p Pose) String() string {
	s := p.Position.String() + " " + p.Orientation.String()
	if p.Frame != nil {
		s += fmt.Sprintf(" frame=%q", *p.Frame)
	}
	return s
}

func (t Time) String() string {
	return fmt.Sprintf("%d %d", t.Sec, t.Nsec)
}

// Seconds returns time as fractional seconds.
func (t Time) Seconds() float64 {
	return float64(t.Sec) + float64(t.Nsec)/1e9
}

func joinFloats(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func (v *Vector3) parse(_ *parser, el *etree.Element) error {
	c, err := components[float64](el, "x", "y", "z")
	if err != nil {
		return err
	}
	v.X, v.Y, v.Z = c[0], c[1], c[2]
	return nil
}

func (v *Vector2d) parse(_ *parser, el *etree.Element) error {
	c, err := components[float64](el, "x", "y")
	if err != nil {
		return err
	}
	v.X, v.Y = c[0], c[1]
	return nil
}

func (o *Orientation) parse(_ *parser, el *etree.Element) error {
	c, err := components[float64](el, "roll", "pitch", "yaw")
	if err != nil {
		return err
	}
	o.Roll, o.Pitch, o.Yaw = c[0], c[1], c[2]
	return nil
}

func (c *Color) parse(_ *parser, el *etree.Element) error {
	v, err := components[float64](el, "r", "g", "b", "a")
	if err != nil {
		return err
	}
	c.R, c.G, c.B, c.A = v[0], v[1], v[2], v[3]
	return nil
}

func (t *Time) parse(_ *parser, el *etree.Element) error {
	c, err := components[int](el, "sec", "nsec")
	if err != nil {
		return err
	}
	t.Sec, t.Nsec = c[0], c[1]
	return nil
}

func (ps *Pose) parse(p *parser, el *etree.Element) error {
	var err error
	if ps.Frame, err = attrOpt[string](p, el, "frame"); err != nil {
		return err
	}
	if len(el.SelectElements("position")) > 0 || len(el.SelectElements("orientation")) > 0 {
		if ps.Position, err = parseOne[Vector3](p, el, "position"); err != nil {
			return err
		}
		ps.Orientation, err = parseOne[Orientation](p, el, "orientation")
		return err
	}
	c, err := listComponents[float64](el, 6)
	if err != nil {
		return err
	}
	ps.Position = Vector3{X: c[0], Y: c[1], Z: c[2]}
	ps.Orientation = Orientation{Roll: c[3], Pitch: c[4], Yaw: c[5]}
	return nil
}

// components reads composite value trying named sub-elements first and
// falling back to delimited list of exactly len(names) numbers.
func components[T int | float64](el *etree.Element, names ...string) ([]T, error) {
	present := 0
	for _, name := range names {
		if len(el.SelectElements(name)) > 0 {
			present++
		}
	}
	if present == 0 {
		return listComponents[T](el, len(names))
	}
	vals := make([]T, len(names))
	for i, name := range names {
		v, err := childValue[T](el, name)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func listComponents[T int | float64](el *etree.Element, arity int) ([]T, error) {
	raw := strings.TrimSpace(el.Text())
	tokens := strings.Fields(raw)
	if len(tokens) != arity {
		return nil, &TypeConversionError{
			Element: el.Tag,
			Field:   el.Tag,
			Value:   raw,
			Type:    fmt.Sprintf("list of %d numbers", arity),
			Err:     fmt.Errorf("got %d values", len(tokens)),
		}
	}
	vals := make([]T, arity)
	for i, token := range tokens {
		v, err := convert[T](el.Tag, el.Tag, token)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
