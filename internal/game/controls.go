package game

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/engine/camera"
	"github.com/Faultbox/glade/internal/engine/input"
)

// Mover is the part of the camera the controls drive.
type Mover interface {
	Move(dir camera.Direction)
	HandleDrag(deltaX, deltaY float32)
}

// MaterialCycler advances the lit material.
type MaterialCycler interface {
	CycleMaterial() int
}

// Cursor captures or frees the mouse cursor.
type Cursor interface {
	SetRelativeMouse(enabled bool)
}

// PolygonMode toggles wireframe rasterization.
type PolygonMode interface {
	SetWireframe(on bool)
}

var moveKeys = map[sdl.Scancode]camera.Direction{
	sdl.SCANCODE_W: camera.Forward,
	sdl.SCANCODE_S: camera.Backward,
	sdl.SCANCODE_A: camera.StrafeLeft,
	sdl.SCANCODE_D: camera.StrafeRight,
}

// controls turns input events into camera, material and polygon mode changes.
type controls struct {
	camera    Mover
	materials MaterialCycler
	cursor    Cursor
	polygons  PolygonMode

	held map[uint8]bool
	quit bool
	log  *zap.Logger
}

func newControls(cam Mover, materials MaterialCycler, cursor Cursor, polygons PolygonMode, log *zap.Logger) *controls {
	return &controls{
		camera:    cam,
		materials: materials,
		cursor:    cursor,
		polygons:  polygons,
		held:      make(map[uint8]bool),
		log:       log,
	}
}

// dragging reports whether a mouse button is held.
func (c *controls) dragging() bool {
	return len(c.held) > 0
}

// handle applies one event. Resize is left to the caller.
func (c *controls) handle(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		c.quit = true

	case input.EventKeyDown:
		if dir, ok := moveKeys[e.Key]; ok {
			// Auto-repeat keeps the camera moving while the key is held.
			c.camera.Move(dir)
			return
		}
		if e.Repeat {
			return
		}
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			c.quit = true
		case sdl.SCANCODE_M:
			idx := c.materials.CycleMaterial()
			c.log.Info("material", zap.Int("index", idx))
		case sdl.SCANCODE_Z:
			c.polygons.SetWireframe(true)
		}

	case input.EventKeyUp:
		if e.Key == sdl.SCANCODE_Z {
			c.polygons.SetWireframe(false)
		}

	case input.EventMouseDown:
		if !c.dragging() {
			c.cursor.SetRelativeMouse(true)
		}
		c.held[e.Button] = true

	case input.EventMouseUp:
		if !c.held[e.Button] {
			return
		}
		delete(c.held, e.Button)
		if !c.dragging() {
			c.cursor.SetRelativeMouse(false)
		}

	case input.EventMouseMove:
		if c.dragging() {
			c.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
	}
}
