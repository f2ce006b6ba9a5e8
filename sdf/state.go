package sdf

import (
	"github.com/beevik/etree"
)

// State is snapshot of a running world.
type State struct {
	WorldName  string
	SimTime    *Time
	WallTime   *Time
	RealTime   *Time
	Iterations *int
	Insertions *Insertions
	Deletions  *Deletions
	Models     []ModelState
	Lights     []LightState
}

// Insertions lists entities added since previous snapshot.
type Insertions struct {
	Models []Model
	Lights []Light
}

// Deletions lists names of entities removed since previous snapshot.
type Deletions struct {
	Names []string
}

type ModelState struct {
	Name   string
	Joints []JointState
	Models []ModelState
	Scale  *Vector3
	Frames []Frame
	Pose   *Pose
	Links  []LinkState
}

type LinkState struct {
	Name         string
	Velocity     *Twist
	Acceleration *Twist
	Wrench       *Twist
	Collisions   []CollisionState
	Frames       []Frame
	Pose         *Pose
}

// Twist is linear plus angular part of velocity, acceleration or wrench,
// written as list of six numbers.
type Twist struct {
	Linear  Vector3
	Angular Vector3
}

type CollisionState struct {
	Name   string
	Frames []Frame
	Pose   *Pose
}

type JointState struct {
	Name   string
	Angles []JointAngle
}

// JointAngle is position of joint along one of its axes.
type JointAngle struct {
	Axis  int
	Value float64
}

type LightState struct {
	Name   string
	Frames []Frame
	Pose   *Pose
}

func (s *State) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "world_name", &s.WorldName)
	maybe(f, "sim_time", &s.SimTime)
	maybe(f, "wall_time", &s.WallTime)
	maybe(f, "real_time", &s.RealTime)
	optValue(f, "iterations", &s.Iterations)
	maybe(f, "insertions", &s.Insertions)
	maybe(f, "deletions", &s.Deletions)
	many(f, "model", &s.Models)
	many(f, "light", &s.Lights)
	return f.done()
}

func (i *Insertions) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	many(f, "model", &i.Models)
	many(f, "light", &i.Lights)
	return f.done()
}

func (d *Deletions) parse(p *parser, el *etree.Element) error {
	d.Names = childValues(el, "name")
	if len(d.Names) == 0 {
		return &MissingRequiredSequenceError{Element: el.Tag, Field: "name"}
	}
	return nil
}

func (m *ModelState) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &m.Name)
	many(f, "joint", &m.Joints)
	many(f, "model", &m.Models)
	maybe(f, "scale", &m.Scale)
	many(f, "frame", &m.Frames)
	maybe(f, "pose", &m.Pose)
	many(f, "link", &m.Links)
	return f.done()
}

func (l *LinkState) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &l.Name)
	maybe(f, "velocity", &l.Velocity)
	maybe(f, "acceleration", &l.Acceleration)
	maybe(f, "wrench", &l.Wrench)
	many(f, "collision", &l.Collisions)
	many(f, "frame", &l.Frames)
	maybe(f, "pose", &l.Pose)
	return f.done()
}

func (t *Twist) parse(_ *parser, el *etree.Element) error {
	c, err := listComponents[float64](el, 6)
	if err != nil {
		return err
	}
	t.Linear = Vector3{X: c[0], Y: c[1], Z: c[2]}
	t.Angular = Vector3{X: c[3], Y: c[4], Z: c[5]}
	return nil
}

func (c *CollisionState) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &c.Name)
	many(f, "frame", &c.Frames)
	maybe(f, "pose", &c.Pose)
	return f.done()
}

func (j *JointState) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &j.Name)
	f.check(func() (err error) {
		j.Angles, err = parseMany[JointAngle](p, el, "angle", true)
		return err
	})
	return f.done()
}

func (a *JointAngle) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "axis", &a.Axis)
	f.check(func() (err error) {
		a.Value, err = textValue[float64](el)
		return err
	})
	return f.done()
}

func (l *LightState) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &l.Name)
	many(f, "frame", &l.Frames)
	maybe(f, "pose", &l.Pose)
	return f.done()
}
