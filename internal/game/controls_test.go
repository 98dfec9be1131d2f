package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/config"
	"github.com/Faultbox/glade/internal/engine/camera"
	"github.com/Faultbox/glade/internal/engine/input"
	"github.com/Faultbox/glade/pkg/math"
)

type fakeCamera struct {
	moves []camera.Direction
	drags [][2]float32
}

func (c *fakeCamera) Move(dir camera.Direction) { c.moves = append(c.moves, dir) }
func (c *fakeCamera) HandleDrag(dx, dy float32) { c.drags = append(c.drags, [2]float32{dx, dy}) }

type fakeMaterials struct{ n int }

func (m *fakeMaterials) CycleMaterial() int {
	m.n++
	return m.n
}

type fakeCursor struct{ calls []bool }

func (c *fakeCursor) SetRelativeMouse(enabled bool) { c.calls = append(c.calls, enabled) }

type fakePolygons struct{ calls []bool }

func (p *fakePolygons) SetWireframe(on bool) { p.calls = append(p.calls, on) }

type rig struct {
	cam       *fakeCamera
	materials *fakeMaterials
	cursor    *fakeCursor
	polygons  *fakePolygons
	c         *controls
}

func newRig() *rig {
	r := &rig{
		cam:       &fakeCamera{},
		materials: &fakeMaterials{},
		cursor:    &fakeCursor{},
		polygons:  &fakePolygons{},
	}
	r.c = newControls(r.cam, r.materials, r.cursor, r.polygons, zap.NewNop())
	return r
}

func keyDown(key sdl.Scancode, repeat bool) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: key, Repeat: repeat}
}

func TestMoveKeys(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want camera.Direction
	}{
		{sdl.SCANCODE_W, camera.Forward},
		{sdl.SCANCODE_S, camera.Backward},
		{sdl.SCANCODE_A, camera.StrafeLeft},
		{sdl.SCANCODE_D, camera.StrafeRight},
	}

	for _, tt := range tests {
		r := newRig()
		r.c.handle(keyDown(tt.key, false))
		r.c.handle(keyDown(tt.key, true))
		assert.Equal(t, []camera.Direction{tt.want, tt.want}, r.cam.moves, "key %d", tt.key)
	}
}

func TestMaterialKeyIgnoresRepeat(t *testing.T) {
	r := newRig()
	r.c.handle(keyDown(sdl.SCANCODE_M, false))
	r.c.handle(keyDown(sdl.SCANCODE_M, true))
	r.c.handle(keyDown(sdl.SCANCODE_M, true))
	assert.Equal(t, 1, r.materials.n)

	r.c.handle(input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_M})
	r.c.handle(keyDown(sdl.SCANCODE_M, false))
	assert.Equal(t, 2, r.materials.n)
}

func TestWireframeWhileHeld(t *testing.T) {
	r := newRig()
	r.c.handle(keyDown(sdl.SCANCODE_Z, false))
	r.c.handle(keyDown(sdl.SCANCODE_Z, true))
	r.c.handle(input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_Z})
	assert.Equal(t, []bool{true, false}, r.polygons.calls)
}

func TestDragCapturesCursor(t *testing.T) {
	r := newRig()

	// Motion without a held button does not turn the camera.
	r.c.handle(input.Event{Type: input.EventMouseMove, DeltaX: 5, DeltaY: 5})
	assert.Empty(t, r.cam.drags)

	r.c.handle(input.Event{Type: input.EventMouseDown, Button: 1})
	r.c.handle(input.Event{Type: input.EventMouseDown, Button: 3})
	r.c.handle(input.Event{Type: input.EventMouseMove, DeltaX: 10, DeltaY: -4})
	r.c.handle(input.Event{Type: input.EventMouseUp, Button: 1})
	r.c.handle(input.Event{Type: input.EventMouseMove, DeltaX: 2, DeltaY: 1})
	r.c.handle(input.Event{Type: input.EventMouseUp, Button: 3})
	r.c.handle(input.Event{Type: input.EventMouseMove, DeltaX: 7, DeltaY: 7})

	assert.Equal(t, [][2]float32{{10, -4}, {2, 1}}, r.cam.drags)
	assert.Equal(t, []bool{true, false}, r.cursor.calls)
	assert.False(t, r.c.dragging())
}

func TestStrayMouseUpIgnored(t *testing.T) {
	r := newRig()
	r.c.handle(input.Event{Type: input.EventMouseUp, Button: 1})
	assert.Empty(t, r.cursor.calls)
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name  string
		event input.Event
		quit  bool
	}{
		{"window close", input.Event{Type: input.EventQuit}, true},
		{"escape", keyDown(sdl.SCANCODE_ESCAPE, false), true},
		{"wheel", input.Event{Type: input.EventMouseWheel, DeltaY: 1}, false},
		{"other key", keyDown(sdl.SCANCODE_Q, false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.c.handle(tt.event)
			assert.Equal(t, tt.quit, r.c.quit)
		})
	}
}

func TestSceneConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics.FOVDegrees = 60
	cfg.Scene.TreeCount = 12
	cfg.Scene.Material = 3
	cfg.Scene.LightPos = [3]float32{2, 4, 6}
	cfg.Scene.Outer = config.RectConfig{Min: [2]float32{-10, -20}, Max: [2]float32{10, 20}}

	s := sceneConfig(cfg)
	assert.Equal(t, float32(60), s.FOVDegrees)
	assert.Equal(t, 12, s.TreeCount)
	assert.Equal(t, 3, s.Material)
	assert.Equal(t, math.Vec3{X: 2, Y: 4, Z: 6}, s.LightPos)
	assert.Equal(t, math.Vec2{X: -10, Y: -20}, s.Outer.Min)
	assert.Equal(t, math.Vec2{X: 10, Y: 20}, s.Outer.Max)
	assert.Equal(t, float32(0.6), s.TreeScale)
	assert.Equal(t, float32(110), s.SkyScale)
	assert.Equal(t, math.Vec2{X: -5, Y: -5}, s.TotemPos)
}
