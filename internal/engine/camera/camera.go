// Package camera provides the free-fly camera driven by mouse drag and
// keyboard movement.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/glade/pkg/math"
)

// Direction is a keyboard movement command.
type Direction int

const (
	Forward Direction = iota
	Backward
	StrafeLeft
	StrafeRight
)

// Config holds the initial camera state and its tuning.
type Config struct {
	Eye             math.Vec3
	Radius          float32
	MoveSpeed       float32
	DragSensitivity float32 // radians per pixel of cursor motion
	PitchLimit      float32 // |pitch| never exceeds this, radians
}

// DefaultConfig returns the stock camera: standing just above the origin,
// looking down +X.
func DefaultConfig() Config {
	return Config{
		Eye:             math.Vec3{X: 0, Y: 0.5, Z: 0},
		Radius:          1,
		MoveSpeed:       0.5,
		DragSensitivity: 1.0 / 500.0,
		PitchLimit:      1.5,
	}
}

// OrbitCamera keeps a look direction in spherical form (yaw, pitch, radius)
// around the eye. The target sits at eye + offset(yaw, pitch, radius).
type OrbitCamera struct {
	// Spherical control state
	Yaw    float32 // azimuth, radians
	Pitch  float32 // elevation, radians, clamped to ±PitchLimit
	Radius float32

	// Tuning
	MoveSpeed       float32
	DragSensitivity float32
	PitchLimit      float32

	eye     math.Vec3
	target  math.Vec3
	forward math.Vec3
	up      math.Vec3
}

// NewOrbitCamera creates a camera from cfg. Non-positive radius, speed or
// sensitivity fall back to the defaults.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	def := DefaultConfig()
	if cfg.Radius <= 0 {
		cfg.Radius = def.Radius
	}
	if cfg.MoveSpeed <= 0 {
		cfg.MoveSpeed = def.MoveSpeed
	}
	if cfg.DragSensitivity <= 0 {
		cfg.DragSensitivity = def.DragSensitivity
	}
	if cfg.PitchLimit <= 0 || cfg.PitchLimit >= math32.Pi/2 {
		cfg.PitchLimit = def.PitchLimit
	}

	c := &OrbitCamera{
		Radius:          cfg.Radius,
		MoveSpeed:       cfg.MoveSpeed,
		DragSensitivity: cfg.DragSensitivity,
		PitchLimit:      cfg.PitchLimit,
		eye:             cfg.Eye,
		up:              math.Vec3{X: 0, Y: 1, Z: 0},
	}
	if c.eye.Y < 0 {
		c.eye.Y = 0
	}
	c.Update()
	return c
}

// Update recomputes target and forward from the spherical state and the eye.
func (c *OrbitCamera) Update() {
	c.Pitch = c.clampPitch(c.Pitch)

	cosPitch := math32.Cos(c.Pitch)
	offset := math.Vec3{
		X: c.Radius * cosPitch * math32.Cos(c.Yaw),
		Y: c.Radius * math32.Sin(c.Pitch),
		Z: c.Radius * cosPitch * math32.Sin(c.Yaw),
	}
	c.target = c.eye.Add(offset)
	c.forward = c.target.Sub(c.eye).Normalize()
}

// HandleDrag turns the view by a cursor delta in pixels. Moving the cursor up
// raises the pitch.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.DragSensitivity
	c.Pitch = c.clampPitch(c.Pitch - deltaY*c.DragSensitivity)
	c.Update()
}

// Move translates the eye by MoveSpeed along forward or the strafe axis
// up × forward, then re-derives target and forward. The eye never goes below
// the ground plane y = 0.
func (c *OrbitCamera) Move(dir Direction) {
	var step math.Vec3
	switch dir {
	case Forward:
		step = c.forward.Scale(c.MoveSpeed)
	case Backward:
		step = c.forward.Scale(-c.MoveSpeed)
	case StrafeLeft:
		step = c.up.Cross(c.forward).Scale(c.MoveSpeed)
	case StrafeRight:
		step = c.up.Cross(c.forward).Scale(-c.MoveSpeed)
	default:
		return
	}

	c.eye = c.eye.Add(step)
	if c.eye.Y < 0 {
		c.eye.Y = 0
	}
	c.Update()
}

func (c *OrbitCamera) clampPitch(p float32) float32 {
	if p > c.PitchLimit {
		return c.PitchLimit
	}
	if p < -c.PitchLimit {
		return -c.PitchLimit
	}
	return p
}

// Angles returns yaw and pitch in radians.
func (c *OrbitCamera) Angles() (yaw, pitch float32) { return c.Yaw, c.Pitch }

// Eye returns the camera position.
func (c *OrbitCamera) Eye() math.Vec3 { return c.eye }

// Target returns the look-at point.
func (c *OrbitCamera) Target() math.Vec3 { return c.target }

// Forward returns the unit view direction.
func (c *OrbitCamera) Forward() math.Vec3 { return c.forward }

// Up returns the world up vector.
func (c *OrbitCamera) Up() math.Vec3 { return c.up }

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.eye, c.target, c.up)
}
