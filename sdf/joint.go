package sdf

import (
	"github.com/beevik/etree"
)

// Joint connects two links of a model. Parent and Child are names of links;
// they are not resolved here, see Model.ParentLink and Model.ChildLink.
type Joint struct {
	Name                 string
	Type                 JointType
	Parent               string
	Child                string
	GearboxRatio         *float64
	GearboxReferenceBody *string
	ThreadPitch          *float64
	Axis                 *Axis
	Axis2                *Axis
	Frames               []Frame
	Pose                 *Pose
	Physics              *JointPhysics
	Sensors              []Sensor
}

type Axis struct {
	XYZ                 Vector3
	UseParentModelFrame *bool
	Dynamics            *AxisDynamics
	Limit               *AxisLimit
}

type AxisDynamics struct {
	Damping         *float64
	Friction        *float64
	SpringReference *float64
	SpringStiffness *float64
}

type AxisLimit struct {
	Lower       float64
	Upper       float64
	Effort      *float64
	Velocity    *float64
	Stiffness   *float64
	Dissipation *float64
}

type JointPhysics struct {
	Simbody         *SimbodyJointPhysics
	ODE             *ODEJointPhysics
	ProvideFeedback *bool
}

type SimbodyJointPhysics struct {
	MustBeLoopJoint *bool
}

type ODEJointPhysics struct {
	CFMDamping           *bool
	ImplicitSpringDamper *bool
	FudgeFactor          *float64
	CFM                  *float64
	ERP                  *float64
	Bounce               *float64
	MaxForce             *float64
	Velocity             *float64
	Limit                *CFMERP
	Suspension           *CFMERP
}

// CFMERP is pair of constraint force mixing and error reduction parameters.
type CFMERP struct {
	CFM *float64
	ERP *float64
}

func (j *Joint) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &j.Name)
	enumAttr(f, "type", JointTypeNames(), &j.Type)
	value(f, "parent", &j.Parent)
	value(f, "child", &j.Child)
	optValue(f, "gearbox_ratio", &j.GearboxRatio)
	optValue(f, "gearbox_reference_body", &j.GearboxReferenceBody)
	optValue(f, "thread_pitch", &j.ThreadPitch)
	maybe(f, "axis", &j.Axis)
	maybe(f, "axis2", &j.Axis2)
	many(f, "frame", &j.Frames)
	maybe(f, "pose", &j.Pose)
	maybe(f, "physics", &j.Physics)
	many(f, "sensor", &j.Sensors)
	return f.done()
}

func (a *Axis) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "xyz", &a.XYZ)
	optValue(f, "use_parent_model_frame", &a.UseParentModelFrame)
	maybe(f, "dynamics", &a.Dynamics)
	maybe(f, "limit", &a.Limit)
	return f.done()
}

func (d *AxisDynamics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "damping", &d.Damping)
	optValue(f, "friction", &d.Friction)
	optValue(f, "spring_reference", &d.SpringReference)
	optValue(f, "spring_stiffness", &d.SpringStiffness)
	return f.done()
}

func (l *AxisLimit) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "lower", &l.Lower)
	value(f, "upper", &l.Upper)
	optValue(f, "effort", &l.Effort)
	optValue(f, "velocity", &l.Velocity)
	optValue(f, "stiffness", &l.Stiffness)
	optValue(f, "dissipation", &l.Dissipation)
	return f.done()
}

func (jp *JointPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "simbody", &jp.Simbody)
	maybe(f, "ode", &jp.ODE)
	optValue(f, "provide_feedback", &jp.ProvideFeedback)
	return f.done()
}

func (s *SimbodyJointPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "must_be_loop_joint", &s.MustBeLoopJoint)
	return f.done()
}

func (o *ODEJointPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "cfm_damping", &o.CFMDamping)
	optValue(f, "implicit_spring_damper", &o.ImplicitSpringDamper)
	optValue(f, "fudge_factor", &o.FudgeFactor)
	optValue(f, "cfm", &o.CFM)
	optValue(f, "erp", &o.ERP)
	optValue(f, "bounce", &o.Bounce)
	optValue(f, "max_force", &o.MaxForce)
	optValue(f, "velocity", &o.Velocity)
	maybe(f, "limit", &o.Limit)
	maybe(f, "suspension", &o.Suspension)
	return f.done()
}

func (c *CFMERP) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "cfm", &c.CFM)
	optValue(f, "erp", &c.ERP)
	return f.done()
}
