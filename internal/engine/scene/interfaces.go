package scene

import (
	"github.com/Faultbox/glade/internal/engine/renderer"
	"github.com/Faultbox/glade/internal/engine/shader"
	"github.com/Faultbox/glade/pkg/math"
)

// Program is a linked shading program with link-time uniform locations.
type Program interface {
	Bind()
	Unbind()
	SetMat4(u shader.Uniform, m math.Mat4)
	SetVec3(u shader.Uniform, v math.Vec3)
	SetFloat(u shader.Uniform, f float32)
	SetInt(u shader.Uniform, i int32)
}

// Mesh is uploaded geometry drawn with the currently bound program.
type Mesh interface {
	Draw()
}

// Texture is a texture bound to a fixed unit.
type Texture interface {
	Bind()
	Unbind()
	Unit() int32
}

// Backend is the global render state a frame touches.
type Backend interface {
	SetDepthFunc(fn renderer.DepthFunc)
}

// View supplies the camera for one frame.
type View interface {
	Eye() math.Vec3
	ViewMatrix() math.Mat4
}

type deleter interface {
	Delete()
}
