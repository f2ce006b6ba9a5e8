package sdf

//go:generate go tool go-enum --names

// Physics engine requested by <physics type="">.
// ENUM(ode, bullet, simbody, rtql8)
type PhysicsType string

// ODE constraint solver.
// ENUM(world, quick)
type ODESolverType string

// Bullet constraint solver.
// ENUM(sequential_impulse)
type BulletSolverType string

// ENUM(revolute, revolute2, gearbox, prismatic, ball, screw, universal, fixed)
type JointType string

// Sensor kind, the discriminant of <sensor>.
// ENUM(altimeter, camera, contact, depth, force_torque, gps, gpu_ray, imu, logical_camera, magnetometer, multicamera, ray, rfid, rfidtag, sonar, wireless_receiver, wireless_transmitter)
type SensorType string

// ENUM(none, gaussian, gaussian_quantized)
type NoiseType string

// Camera lens projection.
// ENUM(gnomonical, stereographic, equidistant, equisolid_angle, orthographic, custom)
type LensType string

// Mapping function of custom lens.
// ENUM(sin, tan, id)
type LensFunction string

// Camera pixel format.
// ENUM(L8, R8G8B8, B8G8R8, BAYER_RGGB8, BAYER_BGGR8, BAYER_GBRG8, BAYER_GRBG8)
type ImageFormat string

// Frame in which force torque sensor reports measurements.
// ENUM(child, parent, sensor)
type ForceTorqueFrame string

// ENUM(parent_to_child, child_to_parent)
type MeasureDirection string

// ENUM(point, directional, spot)
type LightType string

// ENUM(constant, linear, quadratic)
type FogType string

// ENUM(vertex, pixel, normal_map_object_space, normal_map_tangent_space)
type ShaderType string

// Planetary surface model of spherical coordinates.
// ENUM(EARTH_WGS84)
type SurfaceModel string

// ENUM(adiabatic)
type AtmosphereType string

// Population distribution.
// ENUM(random, uniform, grid, linear-x, linear-y, linear-z)
type DistributionType string

// GUI camera projection.
// ENUM(perspective, orthographic)
type ProjectionType string

// Versions of SDF grammar this parser understands.
var supportedVersions = []string{"1.1", "1.2", "1.3", "1.4", "1.5", "1.6"}

// SupportedVersions returns accepted values of <sdf version="">.
func SupportedVersions() []string {
	return append([]string(nil), supportedVersions...)
}
