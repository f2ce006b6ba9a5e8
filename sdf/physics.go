package sdf

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Physics configures simulation engine of a world. Declared Type only names
// preferred engine, Engine holds parameter block which is actually present,
// if any.
type Physics struct {
	Name               *string
	Default            *bool
	Type               PhysicsType
	MaxStepSize        *float64
	RealTimeFactor     *float64
	RealTimeUpdateRate *float64
	MaxContacts        *int
	Engine             PhysicsEngine
}

// PhysicsEngine is closed set of engine specific parameter blocks.
type PhysicsEngine interface {
	// Kind returns SDF tag of the block.
	Kind() string
	isPhysicsEngine()
}

type ODEPhysics struct {
	Solver      ODESolver
	Constraints ODEConstraints
}

type ODESolver struct {
	Type                     ODESolverType
	MinStepSize              *float64
	IslandThreads            *int
	Iters                    int
	PreconIters              *int
	SOR                      float64
	ThreadPositionCorrection *bool
	UseDynamicMOIRescaling   bool
	FrictionModel            *string
}

type ODEConstraints struct {
	CFM                     float64
	ERP                     float64
	ContactMaxCorrectingVel float64
	ContactSurfaceLayer     float64
}

type BulletPhysics struct {
	Solver      BulletSolver
	Constraints BulletConstraints
}

type BulletSolver struct {
	Type        BulletSolverType
	MinStepSize *float64
	Iters       int
	SOR         float64
}

type BulletConstraints struct {
	CFM                              float64
	ERP                              float64
	ContactSurfaceLayer              float64
	SplitImpulse                     bool
	SplitImpulsePenetrationThreshold float64
}

type SimbodyPhysics struct {
	MinStepSize          *float64
	Accuracy             *float64
	MaxTransientVelocity *float64
	Contact              *SimbodyContact
}

type SimbodyContact struct {
	Stiffness                          *float64
	Dissipation                        *float64
	PlasticCoefRestitution             *float64
	PlasticImpactVelocity              *float64
	StaticFriction                     *float64
	DynamicFriction                    *float64
	ViscousFriction                    *float64
	OverrideImpactCaptureVelocity      *float64
	OverrideStictionTransitionVelocity *float64
}

func (*ODEPhysics) Kind() string     { return "ode" }
func (*BulletPhysics) Kind() string  { return "bullet" }
func (*SimbodyPhysics) Kind() string { return "simbody" }

func (*ODEPhysics) isPhysicsEngine()     {}
func (*BulletPhysics) isPhysicsEngine()  {}
func (*SimbodyPhysics) isPhysicsEngine() {}

var physicsEngines = []string{"ode", "bullet", "simbody"}

func (ph *Physics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optAttr(f, "name", &ph.Name)
	optAttr(f, "default", &ph.Default)
	enumAttr(f, "type", PhysicsTypeNames(), &ph.Type)
	optValue(f, "max_step_size", &ph.MaxStepSize)
	optValue(f, "real_time_factor", &ph.RealTimeFactor)
	optValue(f, "real_time_update_rate", &ph.RealTimeUpdateRate)
	optValue(f, "max_contacts", &ph.MaxContacts)
	f.check(func() (err error) {
		ph.Engine, err = p.physicsEngine(el, ph.Type)
		return err
	})
	return f.done()
}

func (p *parser) physicsEngine(el *etree.Element, typ PhysicsType) (PhysicsEngine, error) {
	kind, err := union(el, physicsEngines...)
	if err != nil || kind == "" {
		return nil, err
	}
	if kind != string(typ) {
		p.log.Debug("Physics parameters do not match declared engine",
			zap.Stringer("type", typ), zap.String("block", kind))
	}
	switch kind {
	case "ode":
		return parseEngine[ODEPhysics](p, el, kind)
	case "bullet":
		return parseEngine[BulletPhysics](p, el, kind)
	case "simbody":
		return parseEngine[SimbodyPhysics](p, el, kind)
	}
	return nil, nil
}

func parseEngine[T any, P interface {
	node[T]
	PhysicsEngine
}](p *parser, el *etree.Element, tag string) (PhysicsEngine, error) {
	v, err := parseOne[T, P](p, el, tag)
	if err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (o *ODEPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "solver", &o.Solver)
	one(f, "constraints", &o.Constraints)
	return f.done()
}

func (s *ODESolver) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enum(f, "type", ODESolverTypeNames(), &s.Type)
	optValue(f, "min_step_size", &s.MinStepSize)
	optValue(f, "island_threads", &s.IslandThreads)
	value(f, "iters", &s.Iters)
	optValue(f, "precon_iters", &s.PreconIters)
	value(f, "sor", &s.SOR)
	optValue(f, "thread_position_correction", &s.ThreadPositionCorrection)
	value(f, "use_dynamic_moi_rescaling", &s.UseDynamicMOIRescaling)
	optValue(f, "friction_model", &s.FrictionModel)
	return f.done()
}

func (c *ODEConstraints) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "cfm", &c.CFM)
	value(f, "erp", &c.ERP)
	value(f, "contact_max_correcting_vel", &c.ContactMaxCorrectingVel)
	value(f, "contact_surface_layer", &c.ContactSurfaceLayer)
	return f.done()
}

func (b *BulletPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	one(f, "solver", &b.Solver)
	one(f, "constraints", &b.Constraints)
	return f.done()
}

func (s *BulletSolver) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enum(f, "type", BulletSolverTypeNames(), &s.Type)
	optValue(f, "min_step_size", &s.MinStepSize)
	value(f, "iters", &s.Iters)
	value(f, "sor", &s.SOR)
	return f.done()
}

func (c *BulletConstraints) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "cfm", &c.CFM)
	value(f, "erp", &c.ERP)
	value(f, "contact_surface_layer", &c.ContactSurfaceLayer)
	value(f, "split_impulse", &c.SplitImpulse)
	value(f, "split_impulse_penetration_threshold", &c.SplitImpulsePenetrationThreshold)
	return f.done()
}

func (s *SimbodyPhysics) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "min_step_size", &s.MinStepSize)
	optValue(f, "accuracy", &s.Accuracy)
	optValue(f, "max_transient_velocity", &s.MaxTransientVelocity)
	maybe(f, "contact", &s.Contact)
	return f.done()
}

func (c *SimbodyContact) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "stiffness", &c.Stiffness)
	optValue(f, "dissipation", &c.Dissipation)
	optValue(f, "plastic_coef_restitution", &c.PlasticCoefRestitution)
	optValue(f, "plastic_impact_velocity", &c.PlasticImpactVelocity)
	optValue(f, "static_friction", &c.StaticFriction)
	optValue(f, "dynamic_friction", &c.DynamicFriction)
	optValue(f, "viscous_friction", &c.ViscousFriction)
	optValue(f, "override_impact_capture_velocity", &c.OverrideImpactCaptureVelocity)
	optValue(f, "override_stiction_transition_velocity", &c.OverrideStictionTransitionVelocity)
	return f.done()
}
