// Package importer instantiates parsed SDF documents in a host scene.
package importer

import (
	"cogentcore.org/core/math32"
)

// Handle is opaque reference to an object created in the scene. Zero handle
// means "none", for joints it stands for the world.
type Handle int

// Scene is what importer needs from a host simulator. Every Add* call
// creates one object and returns its handle, SetParent attaches already
// created object to another one.
type Scene interface {
	AddModel(spec ModelSpec) (Handle, error)
	AddLink(spec LinkSpec) (Handle, error)
	AddShape(spec ShapeSpec) (Handle, error)
	AddJoint(spec JointSpec) (Handle, error)
	AddSensor(spec SensorSpec) (Handle, error)
	AddLight(spec LightSpec) (Handle, error)
	SetParent(child, parent Handle) error
}

type ModelSpec struct {
	Name string `yaml:"name"`
	// Pose is in world frame.
	Pose          Transform `yaml:"pose"`
	Static        bool      `yaml:"static,omitempty"`
	SelfCollision bool      `yaml:"self_collision,omitempty"`
	Actor         bool      `yaml:"actor,omitempty"`
}

type LinkSpec struct {
	Name string `yaml:"name"`
	// Pose is in world frame.
	Pose Transform `yaml:"pose"`
	Mass float64   `yaml:"mass"`
	// Inertia is ixx, ixy, ixz, iyy, iyz, izz about center of mass.
	Inertia [6]float64 `yaml:"inertia,flow"`
	// CenterOfMass is relative to link.
	CenterOfMass Transform `yaml:"center_of_mass"`
	Gravity      bool      `yaml:"gravity"`
	Kinematic    bool      `yaml:"kinematic,omitempty"`
}

type ShapeRole string

const (
	RoleCollision ShapeRole = "collision"
	RoleVisual    ShapeRole = "visual"
)

type ShapeSpec struct {
	Name string    `yaml:"name"`
	Role ShapeRole `yaml:"role"`
	// Pose is relative to the link.
	Pose     Transform     `yaml:"pose"`
	Geometry GeometrySpec  `yaml:"geometry"`
	Hidden   bool          `yaml:"hidden,omitempty"`
	Material *MaterialSpec `yaml:"material,omitempty"`
	// surface parameters, collisions only
	Friction    *float64 `yaml:"friction,omitempty"`
	Restitution *float64 `yaml:"restitution,omitempty"`
}

type GeometrySpec struct {
	Kind   string          `yaml:"kind"`
	Size   *math32.Vector3 `yaml:"size,omitempty,flow"`
	Radius float64         `yaml:"radius,omitempty"`
	Length float64         `yaml:"length,omitempty"`
	Normal *math32.Vector3 `yaml:"normal,omitempty,flow"`
	// Source is resolved location of mesh, heightmap or image file.
	Source  string          `yaml:"source,omitempty"`
	Format  string          `yaml:"format,omitempty"`
	Scale   *math32.Vector3 `yaml:"scale,omitempty,flow"`
	Submesh string          `yaml:"submesh,omitempty"`
	Convex  bool            `yaml:"convex,omitempty"`
	Heights *HeightField    `yaml:"heights,omitempty"`
	// polyline
	Points []math32.Vector2 `yaml:"points,omitempty,flow"`
	Height float64          `yaml:"height,omitempty"`
}

// HeightField is heightmap image sampled into a grid, row major, values are
// already scaled to Size.Z.
type HeightField struct {
	Rows     int            `yaml:"rows"`
	Cols     int            `yaml:"cols"`
	Size     math32.Vector3 `yaml:"size,flow"`
	Position math32.Vector3 `yaml:"position,flow"`
	Min      float32        `yaml:"min"`
	Max      float32        `yaml:"max"`
	Samples  []float32      `yaml:"samples,flow"`
}

type MaterialSpec struct {
	Ambient      *math32.Vector4 `yaml:"ambient,omitempty,flow"`
	Diffuse      *math32.Vector4 `yaml:"diffuse,omitempty,flow"`
	Specular     *math32.Vector4 `yaml:"specular,omitempty,flow"`
	Emissive     *math32.Vector4 `yaml:"emissive,omitempty,flow"`
	Transparency float64         `yaml:"transparency,omitempty"`
	Script       string          `yaml:"script,omitempty"`
}

type JointSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Parent Handle `yaml:"parent"`
	Child  Handle `yaml:"child"`
	// Pose is in world frame.
	Pose            Transform `yaml:"pose"`
	Axis            *AxisSpec `yaml:"axis,omitempty"`
	Axis2           *AxisSpec `yaml:"axis2,omitempty"`
	Hidden          bool      `yaml:"hidden,omitempty"`
	PositionControl bool      `yaml:"position_control,omitempty"`
}

type AxisSpec struct {
	// Direction is unit vector in world frame.
	Direction math32.Vector3 `yaml:"direction,flow"`
	Lower     *float64       `yaml:"lower,omitempty"`
	Upper     *float64       `yaml:"upper,omitempty"`
	Effort    *float64       `yaml:"effort,omitempty"`
	Velocity  *float64       `yaml:"velocity,omitempty"`
	Damping   float64        `yaml:"damping,omitempty"`
	Friction  float64        `yaml:"friction,omitempty"`
}

type SensorSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Block is SDF tag of sensor parameters, if any.
	Block string `yaml:"block,omitempty"`
	// Pose is relative to parent link or joint.
	Pose       Transform `yaml:"pose"`
	UpdateRate float64   `yaml:"update_rate,omitempty"`
	AlwaysOn   bool      `yaml:"always_on,omitempty"`
	Topic      string    `yaml:"topic,omitempty"`
}

type LightSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Pose is relative to parent link, world frame for world lights.
	Pose        Transform      `yaml:"pose"`
	Diffuse     math32.Vector4 `yaml:"diffuse,flow"`
	Specular    math32.Vector4 `yaml:"specular,flow"`
	Direction   math32.Vector3 `yaml:"direction,flow"`
	CastShadows bool           `yaml:"cast_shadows,omitempty"`
	Range       float64        `yaml:"range"`
	Constant    float64        `yaml:"constant"`
	Linear      float64        `yaml:"linear"`
	Quadratic   float64        `yaml:"quadratic"`
	// spot lights only
	InnerAngle float64 `yaml:"inner_angle,omitempty"`
	OuterAngle float64 `yaml:"outer_angle,omitempty"`
	Falloff    float64 `yaml:"falloff,omitempty"`
}
