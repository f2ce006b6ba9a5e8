package sdf

import (
	"github.com/beevik/etree"
)

// Scene holds rendering environment of a world.
type Scene struct {
	Ambient      Color
	Background   Color
	Sky          *Sky
	Shadows      bool
	Fog          *Fog
	Grid         *bool
	OriginVisual *bool
}

type Sky struct {
	Time    *float64
	Sunrise *float64
	Sunset  *float64
	Clouds  *Clouds
}

type Clouds struct {
	Speed     *float64
	Direction *float64
	Humidity  *float64
	MeanSize  *float64
	Ambient   *Color
}

type Fog struct {
	Color   *Color
	Type    *FogType
	Start   *float64
	End     *float64
	Density *float64
}

func (s *Scene) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "ambient", &s.Ambient)
	one(f, "background", &s.Background)
	maybe(f, "sky", &s.Sky)
	value(f, "shadows", &s.Shadows)
	maybe(f, "fog", &s.Fog)
	optValue(f, "grid", &s.Grid)
	optValue(f, "origin_visual", &s.OriginVisual)
	return f.done()
}

func (s *Sky) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "time", &s.Time)
	optValue(f, "sunrise", &s.Sunrise)
	optValue(f, "sunset", &s.Sunset)
	maybe(f, "clouds", &s.Clouds)
	return f.done()
}

func (c *Clouds) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "speed", &c.Speed)
	optValue(f, "direction", &c.Direction)
	optValue(f, "humidity", &c.Humidity)
	optValue(f, "mean_size", &c.MeanSize)
	maybe(f, "ambient", &c.Ambient)
	return f.done()
}

func (fg *Fog) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "color", &fg.Color)
	optEnum(f, "type", FogTypeNames(), &fg.Type)
	optValue(f, "start", &fg.Start)
	optValue(f, "end", &fg.End)
	optValue(f, "density", &fg.Density)
	return f.done()
}
