package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sdfc/config"
	"sdfc/resource"
	"sdfc/sdf"
)

// includes deeper than this are most likely recursive
const maxIncludeDepth = 8

// Importer creates scene objects for parsed documents. Optional SDF values
// get their SDF defaults here, parsed tree itself never has them.
type Importer struct {
	opts      config.ImportConfig
	res       *resource.Resolver
	log       *zap.Logger
	parseOpts []sdf.Option
	depth     int
}

// New returns importer for a single document. Resolver must be created for
// that document, parser options are used for included models.
func New(opts config.ImportConfig, res *resource.Resolver, log *zap.Logger, parseOpts ...sdf.Option) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{opts: opts, res: res, log: log, parseOpts: parseOpts}
}

// link remembers what was created for a link.
type link struct {
	handle Handle
	world  Transform
}

// run is state of a single Import call.
type run struct {
	*Importer
	scene Scene
	links map[*sdf.Link]link
	// models included into a model, by owner and scope name
	included map[*sdf.Model]map[string]*sdf.Model
}

// Import creates everything document describes: top level models, lights
// and actors, then content of every world.
func (im *Importer) Import(ctx context.Context, root *sdf.Root, scene Scene) error {
	r := &run{
		Importer: im,
		scene:    scene,
		links:    make(map[*sdf.Link]link),
		included: make(map[*sdf.Model]map[string]*sdf.Model),
	}

	for i := range root.Models {
		if err := r.model(ctx, &root.Models[i], 0, Identity(), false); err != nil {
			return err
		}
	}
	for i := range root.Actors {
		if err := r.actor(ctx, &root.Actors[i], Identity()); err != nil {
			return err
		}
	}
	for i := range root.Lights {
		if _, err := r.light(&root.Lights[i], 0); err != nil {
			return err
		}
	}
	for i := range root.Worlds {
		if err := r.world(ctx, &root.Worlds[i]); err != nil {
			return fmt.Errorf("world %q: %w", root.Worlds[i].Name, err)
		}
	}
	return nil
}

func (r *run) world(ctx context.Context, w *sdf.World) error {
	r.log.Debug("Importing world", zap.String("name", w.Name),
		zap.Int("models", len(w.Models)), zap.Int("includes", len(w.Includes)), zap.Int("lights", len(w.Lights)))

	for i := range w.Lights {
		if _, err := r.light(&w.Lights[i], 0); err != nil {
			return err
		}
	}
	for i := range w.Models {
		if err := r.model(ctx, &w.Models[i], 0, Identity(), false); err != nil {
			return err
		}
	}
	for i := range w.Includes {
		if err := r.include(ctx, &w.Includes[i], nil, 0, Identity()); err != nil {
			return err
		}
	}
	for i := range w.Actors {
		if err := r.actor(ctx, &w.Actors[i], Identity()); err != nil {
			return err
		}
	}
	if len(w.Populations) > 0 || len(w.Roads) > 0 {
		r.log.Debug("Populations and roads are not imported", zap.String("world", w.Name))
	}
	return nil
}

// include loads model.sdf from the included model directory and imports its
// models with include overrides applied. Links of included models become
// visible to joints of owner as "<name>::<link>".
func (r *run) include(ctx context.Context, inc *sdf.Include, owner *sdf.Model, parent Handle, base Transform) error {
	if r.depth >= maxIncludeDepth {
		return fmt.Errorf("include %q: too many nested includes", inc.URI)
	}
	res, err := r.res.Resolve(strings.TrimSuffix(inc.URI, "/") + "/model.sdf")
	if err != nil {
		return fmt.Errorf("include %q: %w", inc.URI, err)
	}
	f, err := res.Open()
	if err != nil {
		return fmt.Errorf("include %q: %w", inc.URI, err)
	}
	defer f.Close()

	root, err := sdf.ParseReader(f, r.parseOpts...)
	if err != nil {
		return fmt.Errorf("include %q: %w", inc.URI, err)
	}
	if len(root.Models) == 0 {
		return fmt.Errorf("include %q: no models in %s", inc.URI, res.Location)
	}

	sub := *r.Importer
	sub.res = r.res.For(res)
	sub.depth++
	child := &run{Importer: &sub, scene: r.scene, links: r.links, included: r.included}

	r.log.Debug("Including model", zap.String("uri", inc.URI), zap.String("location", res.Location))
	for i := range root.Models {
		m := &root.Models[i]
		if inc.Name != nil {
			m.Name = *inc.Name
		}
		if inc.Static != nil {
			m.Static = inc.Static
		}
		if inc.Pose != nil {
			m.Pose = inc.Pose
		}
		if err := child.model(ctx, m, parent, base, false); err != nil {
			return err
		}
		if owner != nil {
			if r.included[owner] == nil {
				r.included[owner] = make(map[string]*sdf.Model)
			}
			r.included[owner][m.Name] = m
		}
	}
	return nil
}

// actor is imported as kinematic model.
func (r *run) actor(ctx context.Context, a *sdf.Actor, base Transform) error {
	m := sdf.Model{Name: a.Name, Pose: a.Pose, Links: a.Links, Joints: a.Joints}
	return r.model(ctx, &m, 0, base, true)
}

func (r *run) model(ctx context.Context, m *sdf.Model, parent Handle, base Transform, actor bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	world := base.Mul(FromPose(m.Pose))
	spec := ModelSpec{
		Name:          m.Name,
		Pose:          world,
		Static:        value(m.Static, false),
		SelfCollision: value(m.SelfCollide, false) && !r.opts.NoSelfCollision,
		Actor:         actor,
	}
	h, err := r.scene.AddModel(spec)
	if err != nil {
		return fmt.Errorf("model %q: %w", m.Name, err)
	}
	if parent != 0 {
		if err := r.scene.SetParent(h, parent); err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
	}
	r.log.Debug("Importing model", zap.String("name", m.Name),
		zap.Int("links", len(m.Links)), zap.Int("joints", len(m.Joints)), zap.Int("models", len(m.Models)))

	links := world
	if r.opts.CenterModel {
		links = world.Mul(Transform{Position: center(m).MulScalar(-1), Rotation: math32.Quat{W: 1}})
	}
	for i := range m.Links {
		l := &m.Links[i]
		if err := r.link(l, h, links, spec.Static, actor); err != nil {
			return fmt.Errorf("model %q: link %q: %w", m.Name, l.Name, err)
		}
	}
	for i := range m.Models {
		if err := r.model(ctx, &m.Models[i], h, links, false); err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
	}
	for i := range m.Includes {
		if err := r.include(ctx, &m.Includes[i], m, h, links); err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
	}
	// references are known only after includes are expanded, errors name
	// the model already
	if err := r.checkJoints(m); err != nil {
		return err
	}
	for i := range m.Joints {
		j := &m.Joints[i]
		if err := r.joint(m, j, h, links); err != nil {
			return fmt.Errorf("model %q: joint %q: %w", m.Name, j.Name, err)
		}
	}
	return nil
}

// center returns average link position in model frame, projected to XY
// plane.
func center(m *sdf.Model) math32.Vector3 {
	var c math32.Vector3
	if len(m.Links) == 0 {
		return c
	}
	for i := range m.Links {
		c = c.Add(FromPose(m.Links[i].Pose).Position)
	}
	c = c.MulScalar(1 / float32(len(m.Links)))
	c.Z = 0
	return c
}

func (r *run) link(l *sdf.Link, model Handle, base Transform, static, actor bool) error {
	world := base.Mul(FromPose(l.Pose))
	spec := LinkSpec{
		Name:         l.Name,
		Pose:         world,
		Mass:         1,
		Inertia:      [6]float64{1, 0, 0, 1, 0, 1},
		CenterOfMass: Identity(),
		Gravity:      value(l.Gravity, true),
		Kinematic:    value(l.Kinematic, false) || actor,
	}
	if in := l.Inertial; in != nil {
		spec.Mass = value(in.Mass, 1)
		spec.CenterOfMass = FromPose(in.Pose)
		if in.Inertia != nil {
			i := in.Inertia
			spec.Inertia = [6]float64{i.IXX, i.IXY, i.IXZ, i.IYY, i.IYZ, i.IZZ}
		}
	}
	if static {
		spec.Mass = 0
	}
	h, err := r.scene.AddLink(spec)
	if err != nil {
		return err
	}
	if err := r.scene.SetParent(h, model); err != nil {
		return err
	}
	r.links[l] = link{handle: h, world: world}

	for i := range l.Collisions {
		if err := r.collision(&l.Collisions[i], h); err != nil {
			return fmt.Errorf("collision %q: %w", l.Collisions[i].Name, err)
		}
	}
	for i := range l.Visuals {
		if err := r.visual(&l.Visuals[i], h); err != nil {
			return fmt.Errorf("visual %q: %w", l.Visuals[i].Name, err)
		}
	}
	if len(l.Visuals) == 0 && r.opts.CreateVisualsFromCollisions {
		for i := range l.Collisions {
			c := &l.Collisions[i]
			v := sdf.Visual{Name: c.Name, Pose: c.Pose, Geometry: c.Geometry}
			if err := r.visual(&v, h); err != nil {
				return fmt.Errorf("visual %q: %w", v.Name, err)
			}
		}
	}
	for i := range l.Sensors {
		if err := r.sensor(&l.Sensors[i], h); err != nil {
			return err
		}
	}
	for i := range l.Lights {
		if _, err := r.light(&l.Lights[i], h); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) collision(c *sdf.Collision, parent Handle) error {
	geom, err := r.geometry(&c.Geometry, RoleCollision)
	if err != nil {
		return err
	}
	spec := ShapeSpec{
		Name:     c.Name,
		Role:     RoleCollision,
		Pose:     FromPose(c.Pose),
		Geometry: geom,
		Hidden:   r.opts.HideCollisions,
	}
	if s := c.Surface; s != nil {
		if s.Friction != nil && s.Friction.ODE != nil {
			spec.Friction = s.Friction.ODE.Mu
		} else if s.Friction != nil && s.Friction.Bullet != nil {
			spec.Friction = s.Friction.Bullet.Friction
		}
		if s.Bounce != nil {
			spec.Restitution = s.Bounce.RestitutionCoefficient
		}
	}
	return r.shape(spec, parent)
}

func (r *run) visual(v *sdf.Visual, parent Handle) error {
	geom, err := r.geometry(&v.Geometry, RoleVisual)
	if err != nil {
		return err
	}
	spec := ShapeSpec{
		Name:     v.Name,
		Role:     RoleVisual,
		Pose:     FromPose(v.Pose),
		Geometry: geom,
	}
	if m := v.Material; m != nil || v.Transparency != nil {
		spec.Material = &MaterialSpec{Transparency: value(v.Transparency, 0)}
		if m != nil {
			spec.Material.Ambient = optColor(m.Ambient)
			spec.Material.Diffuse = optColor(m.Diffuse)
			spec.Material.Specular = optColor(m.Specular)
			spec.Material.Emissive = optColor(m.Emissive)
			if m.Script != nil {
				spec.Material.Script = m.Script.Name
			}
		}
	}
	return r.shape(spec, parent)
}

func (r *run) shape(spec ShapeSpec, parent Handle) error {
	h, err := r.scene.AddShape(spec)
	if err != nil {
		return err
	}
	return r.scene.SetParent(h, parent)
}

// lookupLink finds link by possibly scoped name, scopes are nested models
// and included models of m.
func (r *run) lookupLink(m *sdf.Model, name string) *sdf.Link {
	if l := m.Link(name); l != nil {
		return l
	}
	scope, rest, ok := strings.Cut(name, "::")
	if !ok {
		return nil
	}
	if inc := r.included[m][scope]; inc != nil {
		return r.lookupLink(inc, rest)
	}
	for i := range m.Models {
		if m.Models[i].Name == scope {
			return r.lookupLink(&m.Models[i], rest)
		}
	}
	return nil
}

// jointLinks resolves joint references, parent is nil for joints attached to
// the world.
func (r *run) jointLinks(m *sdf.Model, j *sdf.Joint) (parent, child *sdf.Link, err error) {
	if child = r.lookupLink(m, j.Child); child == nil {
		err = &sdf.UnresolvedReferenceError{Model: m.Name, Joint: j.Name, Role: "child", Link: j.Child}
	}
	if j.Parent != sdf.WorldFrame {
		if parent = r.lookupLink(m, j.Parent); parent == nil {
			err = multierr.Append(err, &sdf.UnresolvedReferenceError{Model: m.Name, Joint: j.Name, Role: "parent", Link: j.Parent})
		}
	}
	return parent, child, err
}

// checkJoints reports every unresolved joint reference of m together.
func (r *run) checkJoints(m *sdf.Model) (err error) {
	for i := range m.Joints {
		_, _, jerr := r.jointLinks(m, &m.Joints[i])
		err = multierr.Append(err, jerr)
	}
	return err
}

func (r *run) joint(m *sdf.Model, j *sdf.Joint, model Handle, base Transform) error {
	parent, child, err := r.jointLinks(m, j)
	if err != nil {
		return err
	}
	c, ok := r.links[child]
	if !ok {
		return errors.New("child link was not imported")
	}
	spec := JointSpec{
		Name:            j.Name,
		Type:            j.Type.String(),
		Child:           c.handle,
		Pose:            c.world.Mul(FromPose(j.Pose)),
		Hidden:          r.opts.HideJoints,
		PositionControl: r.opts.PositionControl && j.Type != sdf.JointTypeFixed,
	}
	if parent != nil {
		p, ok := r.links[parent]
		if !ok {
			return errors.New("parent link was not imported")
		}
		spec.Parent = p.handle
	}
	spec.Axis = axis(j.Axis, spec.Pose, base)
	spec.Axis2 = axis(j.Axis2, spec.Pose, base)

	h, err := r.scene.AddJoint(spec)
	if err != nil {
		return err
	}
	if err := r.scene.SetParent(h, model); err != nil {
		return err
	}
	for i := range j.Sensors {
		if err := r.sensor(&j.Sensors[i], h); err != nil {
			return err
		}
	}
	return nil
}

// axis converts axis to world frame. Axis is expressed in joint frame unless
// it says it uses parent model frame.
func axis(a *sdf.Axis, joint, model Transform) *AxisSpec {
	if a == nil {
		return nil
	}
	frame := joint
	if value(a.UseParentModelFrame, false) {
		frame = model
	}
	spec := &AxisSpec{Direction: frame.Rotate(vector3(a.XYZ)).Normal()}
	if d := a.Dynamics; d != nil {
		spec.Damping = value(d.Damping, 0)
		spec.Friction = value(d.Friction, 0)
	}
	if l := a.Limit; l != nil {
		spec.Lower, spec.Upper = &l.Lower, &l.Upper
		spec.Effort, spec.Velocity = l.Effort, l.Velocity
	}
	return spec
}

func (r *run) sensor(s *sdf.Sensor, parent Handle) error {
	spec := SensorSpec{
		Name:       s.Name,
		Type:       s.Type.String(),
		Pose:       FromPose(s.Pose),
		UpdateRate: value(s.UpdateRate, 0),
		AlwaysOn:   value(s.AlwaysOn, false),
		Topic:      value(s.Topic, ""),
	}
	if s.Data != nil {
		spec.Block = s.Data.Kind()
	}
	h, err := r.scene.AddSensor(spec)
	if err != nil {
		return fmt.Errorf("sensor %q: %w", s.Name, err)
	}
	if err := r.scene.SetParent(h, parent); err != nil {
		return fmt.Errorf("sensor %q: %w", s.Name, err)
	}
	return nil
}

func (r *run) light(l *sdf.Light, parent Handle) (Handle, error) {
	spec := LightSpec{
		Name:        l.Name,
		Type:        l.Type.String(),
		Pose:        FromPose(l.Pose),
		Diffuse:     color(l.Diffuse, math32.Vec4(1, 1, 1, 1)),
		Specular:    color(l.Specular, math32.Vec4(0.1, 0.1, 0.1, 1)),
		Direction:   math32.Vec3(0, 0, -1),
		CastShadows: value(l.CastShadows, false),
		Range:       10,
		Constant:    1,
	}
	if l.Direction != nil {
		spec.Direction = vector3(*l.Direction)
	}
	if a := l.Attenuation; a != nil {
		spec.Range = a.Range
		spec.Constant = value(a.Constant, 1)
		spec.Linear = value(a.Linear, 0)
		spec.Quadratic = value(a.Quadratic, 0)
	}
	if s := l.Spot; s != nil {
		spec.InnerAngle, spec.OuterAngle, spec.Falloff = s.InnerAngle, s.OuterAngle, s.Falloff
	}
	h, err := r.scene.AddLight(spec)
	if err != nil {
		return 0, fmt.Errorf("light %q: %w", l.Name, err)
	}
	if parent != 0 {
		if err := r.scene.SetParent(h, parent); err != nil {
			return 0, fmt.Errorf("light %q: %w", l.Name, err)
		}
	}
	return h, nil
}
