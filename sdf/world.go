package sdf

import (
	"github.com/beevik/etree"
)

// World is top level simulatable environment.
type World struct {
	Name                 string
	Audio                *Audio
	Wind                 *Wind
	Includes             []Include
	Gravity              *Vector3
	MagneticField        *Vector3
	Atmosphere           *Atmosphere
	GUI                  *GUI
	Physics              []Physics
	Scene                *Scene
	Lights               []Light
	Models               []Model
	Actors               []Actor
	Plugins              []Plugin
	Roads                []Road
	SphericalCoordinates *SphericalCoordinates
	States               []State
	Populations          []Population
	Frames               []Frame
}

type Audio struct {
	Device string
}

type Wind struct {
	LinearVelocity *Vector3
}

type Atmosphere struct {
	Type                AtmosphereType
	Temperature         *float64
	Pressure            *float64
	TemperatureGradient *float64
}

type GUI struct {
	Fullscreen *bool
	Camera     *GUICamera
	Plugins    []Plugin
}

type GUICamera struct {
	Name           string
	ViewController *string
	Projection     *ProjectionType
	TrackVisual    *TrackVisual
	Frames         []Frame
	Pose           *Pose
}

// TrackVisual makes GUI camera follow named visual.
type TrackVisual struct {
	Name          *string
	MinDist       *float64
	MaxDist       *float64
	Static        *bool
	UseModelFrame *bool
	XYZ           *Vector3
	InheritYaw    *bool
}

type Road struct {
	Name     string
	Width    float64
	Points   []Vector3
	Material *Material
}

// SphericalCoordinates georeferences world origin.
type SphericalCoordinates struct {
	SurfaceModel SurfaceModel
	LatitudeDeg  *float64
	LongitudeDeg *float64
	Elevation    *float64
	HeadingDeg   *float64
}

// Population replicates single model over a region.
type Population struct {
	Name         string
	Pose         *Pose
	ModelCount   *int
	Distribution Distribution
	Box          *BoxShape
	Cylinder     *CylinderShape
	Model        Model
}

type Distribution struct {
	Type DistributionType
	Step *Vector3
	Cols *int
	Rows *int
}

func (w *World) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &w.Name)
	maybe(f, "audio", &w.Audio)
	maybe(f, "wind", &w.Wind)
	many(f, "include", &w.Includes)
	maybe(f, "gravity", &w.Gravity)
	maybe(f, "magnetic_field", &w.MagneticField)
	maybe(f, "atmosphere", &w.Atmosphere)
	maybe(f, "gui", &w.GUI)
	many(f, "physics", &w.Physics)
	maybe(f, "scene", &w.Scene)
	many(f, "light", &w.Lights)
	many(f, "model", &w.Models)
	many(f, "actor", &w.Actors)
	many(f, "plugin", &w.Plugins)
	many(f, "road", &w.Roads)
	maybe(f, "spherical_coordinates", &w.SphericalCoordinates)
	many(f, "state", &w.States)
	many(f, "population", &w.Populations)
	many(f, "frame", &w.Frames)
	return f.done()
}

func (a *Audio) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "device", &a.Device)
	return f.done()
}

func (w *Wind) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "linear_velocity", &w.LinearVelocity)
	return f.done()
}

func (a *Atmosphere) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enumAttr(f, "type", AtmosphereTypeNames(), &a.Type)
	optValue(f, "temperature", &a.Temperature)
	optValue(f, "pressure", &a.Pressure)
	optValue(f, "temperature_gradient", &a.TemperatureGradient)
	return f.done()
}

func (g *GUI) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optAttr(f, "fullscreen", &g.Fullscreen)
	maybe(f, "camera", &g.Camera)
	many(f, "plugin", &g.Plugins)
	return f.done()
}

func (c *GUICamera) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &c.Name)
	optValue(f, "view_controller", &c.ViewController)
	optEnum(f, "projection_type", ProjectionTypeNames(), &c.Projection)
	maybe(f, "track_visual", &c.TrackVisual)
	many(f, "frame", &c.Frames)
	maybe(f, "pose", &c.Pose)
	return f.done()
}

func (t *TrackVisual) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "name", &t.Name)
	optValue(f, "min_dist", &t.MinDist)
	optValue(f, "max_dist", &t.MaxDist)
	optValue(f, "static", &t.Static)
	optValue(f, "use_model_frame", &t.UseModelFrame)
	maybe(f, "xyz", &t.XYZ)
	optValue(f, "inherit_yaw", &t.InheritYaw)
	return f.done()
}

func (r *Road) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &r.Name)
	value(f, "width", &r.Width)
	f.check(func() (err error) {
		r.Points, err = parseMany[Vector3](p, el, "point", true)
		return err
	})
	maybe(f, "material", &r.Material)
	return f.done()
}

func (s *SphericalCoordinates) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enum(f, "surface_model", SurfaceModelNames(), &s.SurfaceModel)
	optValue(f, "latitude_deg", &s.LatitudeDeg)
	optValue(f, "longitude_deg", &s.LongitudeDeg)
	optValue(f, "elevation", &s.Elevation)
	optValue(f, "heading_deg", &s.HeadingDeg)
	return f.done()
}

func (pop *Population) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &pop.Name)
	maybe(f, "pose", &pop.Pose)
	optValue(f, "model_count", &pop.ModelCount)
	one(f, "distribution", &pop.Distribution)
	f.check(func() error {
		_, err := union(el, "box", "cylinder")
		return err
	})
	maybe(f, "box", &pop.Box)
	maybe(f, "cylinder", &pop.Cylinder)
	one(f, "model", &pop.Model)
	return f.done()
}

func (d *Distribution) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enum(f, "type", DistributionTypeNames(), &d.Type)
	maybe(f, "step", &d.Step)
	optValue(f, "cols", &d.Cols)
	optValue(f, "rows", &d.Rows)
	return f.done()
}
