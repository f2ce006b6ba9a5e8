package sdf

import (
	"github.com/beevik/etree"
)

// Model is collection of links and joints, possibly nesting other models.
type Model struct {
	Name             string
	Static           *bool
	SelfCollide      *bool
	AllowAutoDisable *bool
	EnableWind       *bool
	Includes         []Include
	Models           []Model
	Frames           []Frame
	Pose             *Pose
	Links            []Link
	Joints           []Joint
	Plugins          []Plugin
	Grippers         []Gripper
}

// Include references model stored elsewhere, it is kept unexpanded.
type Include struct {
	URI    string
	Name   *string
	Static *bool
	Pose   *Pose
}

type Gripper struct {
	Name         string
	GraspCheck   *GraspCheck
	GripperLinks []string
	PalmLink     string
}

type GraspCheck struct {
	DetachSteps     *int
	AttachSteps     *int
	MinContactCount *int
}

func (m *Model) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &m.Name)
	optValue(f, "static", &m.Static)
	optValue(f, "self_collide", &m.SelfCollide)
	optValue(f, "allow_auto_disable", &m.AllowAutoDisable)
	optValue(f, "enable_wind", &m.EnableWind)
	many(f, "include", &m.Includes)
	many(f, "model", &m.Models)
	many(f, "frame", &m.Frames)
	maybe(f, "pose", &m.Pose)
	many(f, "link", &m.Links)
	many(f, "joint", &m.Joints)
	many(f, "plugin", &m.Plugins)
	many(f, "gripper", &m.Grippers)
	return f.done()
}

func (i *Include) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "uri", &i.URI)
	optValue(f, "name", &i.Name)
	optValue(f, "static", &i.Static)
	maybe(f, "pose", &i.Pose)
	return f.done()
}

func (g *Gripper) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &g.Name)
	maybe(f, "grasp_check", &g.GraspCheck)
	f.strings("gripper_link", &g.GripperLinks)
	value(f, "palm_link", &g.PalmLink)
	return f.done()
}

func (g *GraspCheck) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "detach_steps", &g.DetachSteps)
	optValue(f, "attach_steps", &g.AttachSteps)
	optValue(f, "min_contact_count", &g.MinContactCount)
	return f.done()
}
