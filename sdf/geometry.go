package sdf

import (
	"github.com/beevik/etree"
)

// Geometry holds exactly one shape, selected by which child element is
// present.
type Geometry struct {
	Shape GeometryShape
}

// GeometryShape is closed set of geometry alternatives.
type GeometryShape interface {
	// Kind returns SDF tag of the alternative.
	Kind() string
	isGeometryShape()
}

// EmptyShape is <empty/>, geometry without shape.
type EmptyShape struct{}

type BoxShape struct {
	Size Vector3
}

type CylinderShape struct {
	Radius float64
	Length float64
}

type SphereShape struct {
	Radius float64
}

type PlaneShape struct {
	Normal Vector3
	Size   Vector2d
}

// MeshShape references external mesh resource.
type MeshShape struct {
	URI     string
	Submesh *Submesh
	Scale   *Vector3
}

type Submesh struct {
	Name   string
	Center *bool
}

// ImageShape extrudes grayscale image.
type ImageShape struct {
	URI         string
	Scale       float64
	Threshold   *int
	Height      *float64
	Granularity *int
}

// HeightmapShape is terrain defined by image.
type HeightmapShape struct {
	URI              string
	Size             *Vector3
	Pos              *Vector3
	Textures         []HeightmapTexture
	Blends           []HeightmapBlend
	UseTerrainPaging *bool
}

type HeightmapTexture struct {
	Size    float64
	Diffuse string
	Normal  string
}

type HeightmapBlend struct {
	MinHeight float64
	FadeDist  float64
}

// PolylineShape extrudes 2D polyline.
type PolylineShape struct {
	Points []Vector2d
	Height *float64
}

func (*EmptyShape) Kind() string     { return "empty" }
func (*BoxShape) Kind() string       { return "box" }
func (*CylinderShape) Kind() string  { return "cylinder" }
func (*SphereShape) Kind() string    { return "sphere" }
func (*PlaneShape) Kind() string     { return "plane" }
func (*MeshShape) Kind() string      { return "mesh" }
func (*ImageShape) Kind() string     { return "image" }
func (*HeightmapShape) Kind() string { return "heightmap" }
func (*PolylineShape) Kind() string  { return "polyline" }

func (*EmptyShape) isGeometryShape()     {}
func (*BoxShape) isGeometryShape()       {}
func (*CylinderShape) isGeometryShape()  {}
func (*SphereShape) isGeometryShape()    {}
func (*PlaneShape) isGeometryShape()     {}
func (*MeshShape) isGeometryShape()      {}
func (*ImageShape) isGeometryShape()     {}
func (*HeightmapShape) isGeometryShape() {}
func (*PolylineShape) isGeometryShape()  {}

var geometryKinds = []string{"empty", "box", "cylinder", "heightmap", "image", "mesh", "plane", "polyline", "sphere"}

func (g *Geometry) parse(p *parser, el *etree.Element) error {
	kind, err := union(el, geometryKinds...)
	if err != nil {
		return err
	}
	switch kind {
	case "empty":
		g.Shape = &EmptyShape{}
		return nil
	case "box":
		g.Shape, err = parseShape[BoxShape](p, el, kind)
	case "cylinder":
		g.Shape, err = parseShape[CylinderShape](p, el, kind)
	case "sphere":
		g.Shape, err = parseShape[SphereShape](p, el, kind)
	case "plane":
		g.Shape, err = parseShape[PlaneShape](p, el, kind)
	case "mesh":
		g.Shape, err = parseShape[MeshShape](p, el, kind)
	case "image":
		g.Shape, err = parseShape[ImageShape](p, el, kind)
	case "heightmap":
		g.Shape, err = parseShape[HeightmapShape](p, el, kind)
	case "polyline":
		g.Shape, err = parseShape[PolylineShape](p, el, kind)
	default:
		return &MissingFieldError{Element: el.Tag, Field: "one of " + joinNames(geometryKinds)}
	}
	return err
}

// parseShape parses union alternative and returns it as interface value,
// keeping nil interface on failure.
func parseShape[T any, P interface {
	node[T]
	GeometryShape
}](p *parser, el *etree.Element, tag string) (GeometryShape, error) {
	v, err := parseOne[T, P](p, el, tag)
	if err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (b *BoxShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "size", &b.Size)
	return f.done()
}

func (c *CylinderShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "radius", &c.Radius)
	value(f, "length", &c.Length)
	return f.done()
}

func (s *SphereShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "radius", &s.Radius)
	return f.done()
}

func (s *PlaneShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "normal", &s.Normal)
	one(f, "size", &s.Size)
	return f.done()
}

func (m *MeshShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "uri", &m.URI)
	maybe(f, "submesh", &m.Submesh)
	maybe(f, "scale", &m.Scale)
	return f.done()
}

func (s *Submesh) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "name", &s.Name)
	optValue(f, "center", &s.Center)
	return f.done()
}

func (i *ImageShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "uri", &i.URI)
	value(f, "scale", &i.Scale)
	optValue(f, "threshold", &i.Threshold)
	optValue(f, "height", &i.Height)
	optValue(f, "granularity", &i.Granularity)
	return f.done()
}

func (h *HeightmapShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "uri", &h.URI)
	maybe(f, "size", &h.Size)
	maybe(f, "pos", &h.Pos)
	many(f, "texture", &h.Textures)
	many(f, "blend", &h.Blends)
	optValue(f, "use_terrain_paging", &h.UseTerrainPaging)
	return f.done()
}

func (t *HeightmapTexture) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "size", &t.Size)
	value(f, "diffuse", &t.Diffuse)
	value(f, "normal", &t.Normal)
	return f.done()
}

func (b *HeightmapBlend) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "min_height", &b.MinHeight)
	value(f, "fade_dist", &b.FadeDist)
	return f.done()
}

func (l *PolylineShape) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	f.check(func() (err error) {
		l.Points, err = parseMany[Vector2d](p, el, "point", true)
		return err
	})
	optValue(f, "height", &l.Height)
	return f.done()
}
