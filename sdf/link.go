package sdf

import (
	"strings"

	"github.com/beevik/etree"
)

// Link is rigid body of a model.
type Link struct {
	Name           string
	Gravity        *bool
	EnableWind     *bool
	SelfCollide    *bool
	Kinematic      *bool
	MustBeBaseLink *bool
	VelocityDecay  *VelocityDecay
	Frames         []Frame
	Pose           *Pose
	Inertial       *Inertial
	Collisions     []Collision
	Visuals        []Visual
	Sensors        []Sensor
	Projector      *Projector
	AudioSinks     []AudioSink
	AudioSources   []AudioSource
	Batteries      []Battery
	Lights         []Light
}

type VelocityDecay struct {
	Linear  *float64
	Angular *float64
}

// Inertial holds mass properties of a link.
type Inertial struct {
	Mass    *float64
	Inertia *Inertia
	Frames  []Frame
	Pose    *Pose
}

// Inertia is symmetric 3x3 inertia matrix given by its upper triangle.
type Inertia struct {
	IXX, IXY, IXZ float64
	IYY, IYZ      float64
	IZZ           float64
}

type Collision struct {
	Name        string
	LaserRetro  *float64
	MaxContacts *int
	Frames      []Frame
	Pose        *Pose
	Geometry    Geometry
	Surface     *Surface
}

type Visual struct {
	Name         string
	CastShadows  *bool
	LaserRetro   *float64
	Transparency *float64
	Layer        *int
	Frames       []Frame
	Pose         *Pose
	Material     *Material
	Geometry     Geometry
	Plugins      []Plugin
}

// Frame is named coordinate frame other poses may refer to.
type Frame struct {
	Name string
	Pose *Pose
}

// Plugin keeps its content verbatim since it is interpreted by simulator
// extensions only.
type Plugin struct {
	Name     string
	Filename string
	Content  string
}

type Projector struct {
	Name     string
	Texture  string
	Pose     *Pose
	FOV      *float64
	NearClip *float64
	FarClip  *float64
	Plugins  []Plugin
}

type AudioSource struct {
	URI        string
	Pitch      *float64
	Gain       *float64
	Collisions []string
	Loop       *bool
	Pose       *Pose
}

type AudioSink struct{}

type Battery struct {
	Name    string
	Voltage float64
}

func (l *Link) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &l.Name)
	optValue(f, "gravity", &l.Gravity)
	optValue(f, "enable_wind", &l.EnableWind)
	optValue(f, "self_collide", &l.SelfCollide)
	optValue(f, "kinematic", &l.Kinematic)
	optValue(f, "must_be_base_link", &l.MustBeBaseLink)
	maybe(f, "velocity_decay", &l.VelocityDecay)
	many(f, "frame", &l.Frames)
	maybe(f, "pose", &l.Pose)
	maybe(f, "inertial", &l.Inertial)
	many(f, "collision", &l.Collisions)
	many(f, "visual", &l.Visuals)
	many(f, "sensor", &l.Sensors)
	maybe(f, "projector", &l.Projector)
	many(f, "audio_sink", &l.AudioSinks)
	many(f, "audio_source", &l.AudioSources)
	many(f, "battery", &l.Batteries)
	many(f, "light", &l.Lights)
	return f.done()
}

func (v *VelocityDecay) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "linear", &v.Linear)
	optValue(f, "angular", &v.Angular)
	return f.done()
}

func (i *Inertial) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "mass", &i.Mass)
	maybe(f, "inertia", &i.Inertia)
	many(f, "frame", &i.Frames)
	maybe(f, "pose", &i.Pose)
	return f.done()
}

func (i *Inertia) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "ixx", &i.IXX)
	value(f, "ixy", &i.IXY)
	value(f, "ixz", &i.IXZ)
	value(f, "iyy", &i.IYY)
	value(f, "iyz", &i.IYZ)
	value(f, "izz", &i.IZZ)
	return f.done()
}

func (c *Collision) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &c.Name)
	optValue(f, "laser_retro", &c.LaserRetro)
	optValue(f, "max_contacts", &c.MaxContacts)
	many(f, "frame", &c.Frames)
	maybe(f, "pose", &c.Pose)
	one(f, "geometry", &c.Geometry)
	maybe(f, "surface", &c.Surface)
	return f.done()
}

func (v *Visual) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &v.Name)
	optValue(f, "cast_shadows", &v.CastShadows)
	optValue(f, "laser_retro", &v.LaserRetro)
	optValue(f, "transparency", &v.Transparency)
	f.check(func() error {
		meta, err := lookupChild(el, "meta")
		if err != nil || meta == nil {
			return err
		}
		v.Layer, err = childOpt[int](p, meta, "layer")
		return err
	})
	many(f, "frame", &v.Frames)
	maybe(f, "pose", &v.Pose)
	maybe(f, "material", &v.Material)
	one(f, "geometry", &v.Geometry)
	many(f, "plugin", &v.Plugins)
	return f.done()
}

func (fr *Frame) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &fr.Name)
	maybe(f, "pose", &fr.Pose)
	return f.done()
}

func (pl *Plugin) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &pl.Name)
	attr(f, "filename", &pl.Filename)
	f.check(func() error {
		doc := etree.NewDocument()
		for _, child := range el.ChildElements() {
			doc.AddChild(child.Copy())
		}
		doc.Indent(2)
		content, err := doc.WriteToString()
		if err != nil {
			return err
		}
		pl.Content = strings.TrimSpace(content)
		return nil
	})
	return f.done()
}

func (pr *Projector) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &pr.Name)
	value(f, "texture", &pr.Texture)
	maybe(f, "pose", &pr.Pose)
	optValue(f, "fov", &pr.FOV)
	optValue(f, "near_clip", &pr.NearClip)
	optValue(f, "far_clip", &pr.FarClip)
	many(f, "plugin", &pr.Plugins)
	return f.done()
}

func (a *AudioSource) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "uri", &a.URI)
	optValue(f, "pitch", &a.Pitch)
	optValue(f, "gain", &a.Gain)
	f.check(func() error {
		contact, err := lookupChild(el, "contact")
		if err != nil || contact == nil {
			return err
		}
		a.Collisions = childValues(contact, "collision")
		return nil
	})
	optValue(f, "loop", &a.Loop)
	maybe(f, "pose", &a.Pose)
	return f.done()
}

func (*AudioSink) parse(*parser, *etree.Element) error {
	return nil
}

func (b *Battery) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &b.Name)
	value(f, "voltage", &b.Voltage)
	return f.done()
}
