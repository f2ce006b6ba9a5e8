package importer

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"sdfc/sdf"
)

const tol = 1e-5

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "z of %v", got)
}

func TestFromPose_Nil(t *testing.T) {
	tr := FromPose(nil)
	assert.Equal(t, Identity(), tr)
	assertVector(t, math32.Vec3(1, 2, 3), tr.Apply(math32.Vec3(1, 2, 3)))
}

func TestFromPose_Yaw(t *testing.T) {
	tr := FromPose(&sdf.Pose{
		Position:    sdf.Vector3{X: 1},
		Orientation: sdf.Orientation{Yaw: math.Pi / 2},
	})
	assertVector(t, math32.Vec3(0, 1, 0), tr.Rotate(math32.Vec3(1, 0, 0)))
	assertVector(t, math32.Vec3(1, 1, 0), tr.Apply(math32.Vec3(1, 0, 0)))
}

// roll is applied first: Y goes to Z and yaw about Z leaves it there
func TestFromPose_RollPitchYawOrder(t *testing.T) {
	tr := FromPose(&sdf.Pose{Orientation: sdf.Orientation{Roll: math.Pi / 2, Yaw: math.Pi / 2}})
	assertVector(t, math32.Vec3(0, 0, 1), tr.Rotate(math32.Vec3(0, 1, 0)))
	assertVector(t, math32.Vec3(0, 1, 0), tr.Rotate(math32.Vec3(1, 0, 0)))
}

func TestTransform_Mul(t *testing.T) {
	parent := FromPose(&sdf.Pose{
		Position:    sdf.Vector3{X: 1, Y: 2},
		Orientation: sdf.Orientation{Yaw: math.Pi / 2},
	})
	local := FromPose(&sdf.Pose{
		Position:    sdf.Vector3{X: 1},
		Orientation: sdf.Orientation{Yaw: math.Pi / 2},
	})

	got := parent.Mul(local)
	assertVector(t, math32.Vec3(1, 3, 0), got.Position)
	assertVector(t, math32.Vec3(-1, 0, 0), got.Rotate(math32.Vec3(1, 0, 0)))

	// identity is neutral on both sides
	assertVector(t, parent.Position, Identity().Mul(parent).Position)
	assertVector(t, parent.Position, parent.Mul(Identity()).Position)
}

func TestColor(t *testing.T) {
	def := math32.Vec4(1, 1, 1, 1)
	assert.Equal(t, def, color(nil, def))
	assert.Equal(t, math32.Vec4(0.5, 0, 0.25, 1), color(&sdf.Color{R: 0.5, B: 0.25, A: 1}, def))
	assert.Nil(t, optColor(nil))
}

func TestValue(t *testing.T) {
	f := 2.5
	assert.Equal(t, 2.5, value(&f, 1))
	assert.Equal(t, 1.0, value(nil, 1.0))
}
