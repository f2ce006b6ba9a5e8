package sdf

import (
	"github.com/beevik/etree"
)

// Surface groups contact parameters of a collision.
type Surface struct {
	Bounce      *Bounce
	Friction    *Friction
	Contact     *Contact
	SoftContact *SoftContact
}

type Bounce struct {
	RestitutionCoefficient *float64
	Threshold              *float64
}

type Friction struct {
	Torsional *TorsionalFriction
	ODE       *ODEFriction
	Bullet    *BulletFriction
}

type TorsionalFriction struct {
	Coefficient    *float64
	UsePatchRadius *bool
	PatchRadius    *float64
	SurfaceRadius  *float64
	ODESlip        *float64
}

type ODEFriction struct {
	Mu    *float64
	Mu2   *float64
	Fdir1 *Vector3
	Slip1 *float64
	Slip2 *float64
}

type BulletFriction struct {
	Friction        *float64
	Friction2       *float64
	Fdir1           *Vector3
	RollingFriction *float64
}

type Contact struct {
	CollideWithoutContact        *bool
	CollideWithoutContactBitmask *int
	CollideBitmask               *int
	Category                     *int
	PoissonsRatio                *float64
	ElasticModulus               *float64
	ODE                          *ODEContact
	Bullet                       *BulletContact
}

type ODEContact struct {
	SoftCFM  *float64
	SoftERP  *float64
	Kp       *float64
	Kd       *float64
	MaxVel   *float64
	MinDepth *float64
}

type BulletContact struct {
	SoftCFM                          *float64
	SoftERP                          *float64
	Kp                               *float64
	Kd                               *float64
	SplitImpulse                     *bool
	SplitImpulsePenetrationThreshold *float64
}

// SoftContact holds DART soft body parameters.
type SoftContact struct {
	Dart *DartSoftContact
}

type DartSoftContact struct {
	BoneAttachment    float64
	Stiffness         float64
	Damping           float64
	FleshMassFraction float64
}

func (s *Surface) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "bounce", &s.Bounce)
	maybe(f, "friction", &s.Friction)
	maybe(f, "contact", &s.Contact)
	maybe(f, "soft_contact", &s.SoftContact)
	return f.done()
}

func (b *Bounce) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "restitution_coefficient", &b.RestitutionCoefficient)
	optValue(f, "threshold", &b.Threshold)
	return f.done()
}

func (fr *Friction) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "torsional", &fr.Torsional)
	maybe(f, "ode", &fr.ODE)
	maybe(f, "bullet", &fr.Bullet)
	return f.done()
}

func (t *TorsionalFriction) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "coefficient", &t.Coefficient)
	optValue(f, "use_patch_radius", &t.UsePatchRadius)
	optValue(f, "patch_radius", &t.PatchRadius)
	optValue(f, "surface_radius", &t.SurfaceRadius)
	f.check(func() error {
		ode, err := lookupChild(el, "ode")
		if err != nil || ode == nil {
			return err
		}
		t.ODESlip, err = childOpt[float64](p, ode, "slip")
		return err
	})
	return f.done()
}

func (o *ODEFriction) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "mu", &o.Mu)
	optValue(f, "mu2", &o.Mu2)
	maybe(f, "fdir1", &o.Fdir1)
	optValue(f, "slip1", &o.Slip1)
	optValue(f, "slip2", &o.Slip2)
	return f.done()
}

func (b *BulletFriction) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "friction", &b.Friction)
	optValue(f, "friction2", &b.Friction2)
	maybe(f, "fdir1", &b.Fdir1)
	optValue(f, "rolling_friction", &b.RollingFriction)
	return f.done()
}

func (c *Contact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "collide_without_contact", &c.CollideWithoutContact)
	optValue(f, "collide_without_contact_bitmask", &c.CollideWithoutContactBitmask)
	optValue(f, "collide_bitmask", &c.CollideBitmask)
	optValue(f, "category_bitmask", &c.Category)
	optValue(f, "poissons_ratio", &c.PoissonsRatio)
	optValue(f, "elastic_modulus", &c.ElasticModulus)
	maybe(f, "ode", &c.ODE)
	maybe(f, "bullet", &c.Bullet)
	return f.done()
}

func (o *ODEContact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "soft_cfm", &o.SoftCFM)
	optValue(f, "soft_erp", &o.SoftERP)
	optValue(f, "kp", &o.Kp)
	optValue(f, "kd", &o.Kd)
	optValue(f, "max_vel", &o.MaxVel)
	optValue(f, "min_depth", &o.MinDepth)
	return f.done()
}

func (b *BulletContact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "soft_cfm", &b.SoftCFM)
	optValue(f, "soft_erp", &b.SoftERP)
	optValue(f, "kp", &b.Kp)
	optValue(f, "kd", &b.Kd)
	optValue(f, "split_impulse", &b.SplitImpulse)
	optValue(f, "split_impulse_penetration_threshold", &b.SplitImpulsePenetrationThreshold)
	return f.done()
}

func (s *SoftContact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "dart", &s.Dart)
	return f.done()
}

func (d *DartSoftContact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "bone_attachment", &d.BoneAttachment)
	value(f, "stiffness", &d.Stiffness)
	value(f, "damping", &d.Damping)
	value(f, "flesh_mass_fraction", &d.FleshMassFraction)
	return f.done()
}
