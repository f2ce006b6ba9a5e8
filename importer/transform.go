package importer

import (
	"cogentcore.org/core/math32"

	"sdfc/sdf"
)

// Transform is rigid body transform, rotation is unit quaternion.
type Transform struct {
	Position math32.Vector3 `yaml:"position,flow"`
	Rotation math32.Quat    `yaml:"rotation,flow"`
}

func Identity() Transform {
	return Transform{Rotation: math32.Quat{W: 1}}
}

// FromPose converts SDF pose, absent pose is identity. Orientation is
// applied as roll about X, then pitch about Y, then yaw about Z, all in fixed
// frame.
func FromPose(p *sdf.Pose) Transform {
	if p == nil {
		return Identity()
	}
	return Transform{
		Position: vector3(p.Position),
		Rotation: rpy(p.Orientation),
	}
}

func rpy(o sdf.Orientation) math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), float32(o.Yaw))
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), float32(o.Pitch)))
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), float32(o.Roll)))
	return q
}

// Mul returns transform of a frame given by local relative to t.
func (t Transform) Mul(local Transform) Transform {
	r := t.Rotation
	r.SetMul(local.Rotation)
	return Transform{
		Position: t.Apply(local.Position),
		Rotation: r,
	}
}

// Apply maps point from t frame to the parent frame.
func (t Transform) Apply(v math32.Vector3) math32.Vector3 {
	return t.Position.Add(v.MulQuat(t.Rotation))
}

// Rotate maps direction from t frame to the parent frame.
func (t Transform) Rotate(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(t.Rotation)
}

func vector3(v sdf.Vector3) math32.Vector3 {
	return math32.Vec3(float32(v.X), float32(v.Y), float32(v.Z))
}

func color(c *sdf.Color, def math32.Vector4) math32.Vector4 {
	if c == nil {
		return def
	}
	return math32.Vec4(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

func optColor(c *sdf.Color) *math32.Vector4 {
	if c == nil {
		return nil
	}
	v := color(c, math32.Vector4{})
	return &v
}

func value[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
