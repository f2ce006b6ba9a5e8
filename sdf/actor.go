package sdf

import (
	"github.com/beevik/etree"
)

// Actor is animated skeleton following scripted trajectories.
type Actor struct {
	Name       string
	Pose       *Pose
	Skin       *Skin
	Animations []Animation
	Script     ActorScript
	Links      []Link
	Joints     []Joint
	Plugins    []Plugin
}

type Skin struct {
	Filename string
	Scale    *float64
}

type Animation struct {
	Name         string
	Filename     string
	Scale        *float64
	InterpolateX *bool
}

type ActorScript struct {
	Loop         *bool
	DelayStart   *float64
	AutoStart    *bool
	Trajectories []Trajectory
}

type Trajectory struct {
	ID        int
	Type      string
	Tension   *float64
	Waypoints []Waypoint
}

type Waypoint struct {
	Time float64
	Pose Pose
}

func (a *Actor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &a.Name)
	maybe(f, "pose", &a.Pose)
	maybe(f, "skin", &a.Skin)
	many(f, "animation", &a.Animations)
	one(f, "script", &a.Script)
	many(f, "link", &a.Links)
	many(f, "joint", &a.Joints)
	many(f, "plugin", &a.Plugins)
	return f.done()
}

func (s *Skin) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "filename", &s.Filename)
	optValue(f, "scale", &s.Scale)
	return f.done()
}

func (a *Animation) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &a.Name)
	value(f, "filename", &a.Filename)
	optValue(f, "scale", &a.Scale)
	optValue(f, "interpolate_x", &a.InterpolateX)
	return f.done()
}

func (s *ActorScript) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "loop", &s.Loop)
	optValue(f, "delay_start", &s.DelayStart)
	optValue(f, "auto_start", &s.AutoStart)
	many(f, "trajectory", &s.Trajectories)
	return f.done()
}

func (t *Trajectory) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "id", &t.ID)
	attr(f, "type", &t.Type)
	optAttr(f, "tension", &t.Tension)
	many(f, "waypoint", &t.Waypoints)
	return f.done()
}

func (w *Waypoint) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "time", &w.Time)
	one(f, "pose", &w.Pose)
	return f.done()
}
