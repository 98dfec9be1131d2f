package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/glade/pkg/math"
)

func TestDefaultLooksDownPositiveX(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	assert.Equal(t, math.Vec3{X: 0, Y: 0.5, Z: 0}, c.Eye())
	assert.Equal(t, math.Vec3{X: 1, Y: 0.5, Z: 0}, c.Target())
	assert.Equal(t, math.Vec3{X: 1}, c.Forward())
}

func TestOffsetFromSphericalState(t *testing.T) {
	c := NewOrbitCamera(Config{Eye: math.Vec3{X: 2, Y: 3, Z: 4}, Radius: 2})
	c.Yaw = math32.Pi / 2
	c.Pitch = 0.5
	c.Update()

	want := math.Vec3{
		X: 2 + 2*math32.Cos(0.5)*math32.Cos(math32.Pi/2),
		Y: 3 + 2*math32.Sin(0.5),
		Z: 4 + 2*math32.Cos(0.5)*math32.Sin(math32.Pi/2),
	}
	got := c.Target()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
	assert.InDelta(t, 1, c.Forward().Length(), 1e-5)
}

func TestPitchClampedUnderLargeDrag(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	c.HandleDrag(0, -10000)
	assert.Equal(t, float32(1.5), c.Pitch)

	c.HandleDrag(0, 10000)
	assert.Equal(t, float32(-1.5), c.Pitch)

	for i := 0; i < 100; i++ {
		c.HandleDrag(3, -250)
	}
	assert.Equal(t, float32(1.5), c.Pitch)
}

func TestPitchClampedOnDirectUpdate(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	c.Pitch = 42
	c.Update()
	assert.Equal(t, c.PitchLimit, c.Pitch)
}

func TestDragSensitivity(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	c.HandleDrag(500, 250)

	assert.InDelta(t, 1.0, c.Yaw, 1e-6)
	assert.InDelta(t, -0.5, c.Pitch, 1e-6)
}

func TestMoveForwardAndBack(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	c.Move(Forward)
	assert.Equal(t, math.Vec3{X: 0.5, Y: 0.5}, c.Eye())
	assert.Equal(t, math.Vec3{X: 1.5, Y: 0.5}, c.Target())

	c.Move(Backward)
	assert.Equal(t, math.Vec3{X: 0, Y: 0.5}, c.Eye())
}

func TestStrafeIsPerpendicular(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	c.Move(StrafeLeft)
	// up × forward with forward = +X is -Z
	assert.InDelta(t, 0, c.Eye().X, 1e-6)
	assert.InDelta(t, -0.5, c.Eye().Z, 1e-6)

	c.Move(StrafeRight)
	c.Move(StrafeRight)
	assert.InDelta(t, 0.5, c.Eye().Z, 1e-6)
	assert.InDelta(t, 0.5, c.Eye().Y, 1e-6)
}

func TestEyeNeverBelowGround(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	c.HandleDrag(0, 10000) // look straight down

	for i := 0; i < 10; i++ {
		c.Move(Forward)
		assertSphericalOffset(t, c)
	}
	assert.Equal(t, float32(0), c.Eye().Y)

	c.Move(Backward)
	assert.Greater(t, c.Eye().Y, float32(0))
	assertSphericalOffset(t, c)
}

// assertSphericalOffset checks target = eye + offset(yaw, pitch, radius).
func assertSphericalOffset(t *testing.T, c *OrbitCamera) {
	t.Helper()
	yaw, pitch := c.Angles()
	want := math.Vec3{
		X: c.Radius * math32.Cos(pitch) * math32.Cos(yaw),
		Y: c.Radius * math32.Sin(pitch),
		Z: c.Radius * math32.Cos(pitch) * math32.Sin(yaw),
	}
	got := c.Target().Sub(c.Eye())
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
	assert.InDelta(t, 1, c.Forward().Length(), 1e-5)
}

func TestInvalidConfigFallsBack(t *testing.T) {
	c := NewOrbitCamera(Config{Eye: math.Vec3{Y: -4}})
	def := DefaultConfig()

	assert.Equal(t, def.Radius, c.Radius)
	assert.Equal(t, def.MoveSpeed, c.MoveSpeed)
	assert.Equal(t, def.PitchLimit, c.PitchLimit)
	assert.Equal(t, float32(0), c.Eye().Y)
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := NewOrbitCamera(Config{Eye: math.Vec3{X: 3, Y: 1, Z: -2}})
	p := c.ViewMatrix().TransformVec3(c.Eye())
	assert.InDelta(t, 0, p.Length(), 1e-5)
}
