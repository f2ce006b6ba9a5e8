package sdf

import (
	"github.com/beevik/etree"
)

type Light struct {
	Name        string
	Type        LightType
	CastShadows *bool
	Diffuse     *Color
	Specular    *Color
	Attenuation *Attenuation
	Direction   *Vector3
	Spot        *Spot
	Frames      []Frame
	Pose        *Pose
}

type Attenuation struct {
	Range     float64
	Linear    *float64
	Constant  *float64
	Quadratic *float64
}

// Spot narrows spot light cone.
type Spot struct {
	InnerAngle float64
	OuterAngle float64
	Falloff    float64
}

func (l *Light) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &l.Name)
	enumAttr(f, "type", LightTypeNames(), &l.Type)
	optValue(f, "cast_shadows", &l.CastShadows)
	maybe(f, "diffuse", &l.Diffuse)
	maybe(f, "specular", &l.Specular)
	maybe(f, "attenuation", &l.Attenuation)
	maybe(f, "direction", &l.Direction)
	maybe(f, "spot", &l.Spot)
	many(f, "frame", &l.Frames)
	maybe(f, "pose", &l.Pose)
	return f.done()
}

func (a *Attenuation) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "range", &a.Range)
	optValue(f, "linear", &a.Linear)
	optValue(f, "constant", &a.Constant)
	optValue(f, "quadratic", &a.Quadratic)
	return f.done()
}

func (s *Spot) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "inner_angle", &s.InnerAngle)
	value(f, "outer_angle", &s.OuterAngle)
	value(f, "falloff", &s.Falloff)
	return f.done()
}
