package scene

import (
	gomath "math"

	"github.com/Faultbox/glade/internal/engine/renderer"
	"github.com/Faultbox/glade/internal/engine/shader"
	"github.com/Faultbox/glade/pkg/math"
)

var (
	axisX = math.Vec3{X: 1}
	axisY = math.Vec3{Y: 1}
	axisZ = math.Vec3{Z: 1}
)

// frame carries the per-frame camera uniforms shared by all passes.
type frame struct {
	projection math.Mat4
	view       math.Mat4
	eye        math.Vec3
}

// bindPass binds p and uploads the camera matrices. The returned func unbinds.
func bindPass(p Program, f frame) func() {
	p.Bind()
	p.SetMat4(shader.Projection, f.projection)
	p.SetMat4(shader.View, f.view)
	return p.Unbind
}

// bindTexture binds t and points the sampler u at its unit. Safe with nil.
func bindTexture(p Program, u shader.Uniform, t Texture) func() {
	if t == nil {
		return func() {}
	}
	t.Bind()
	p.SetInt(u, t.Unit())
	return t.Unbind
}

// draw uploads the current top matrix and draws m. Nil meshes are skipped.
func (s *Scene) draw(p Program, m Mesh) {
	if m == nil {
		return
	}
	p.SetMat4(shader.Model, s.stack.Top())
	m.Draw()
}

// skyPass draws the sky cube centred on the eye. The relaxed depth test keeps
// it visible at the far plane.
func (s *Scene) skyPass(f frame) {
	p := s.content.Programs.Sky
	if p == nil {
		return
	}
	defer bindPass(p, f)()

	s.backend.SetDepthFunc(renderer.DepthLessEqual)
	defer s.backend.SetDepthFunc(renderer.DepthLess)

	defer s.stack.Push().Pop()
	s.stack.LoadIdentity()
	s.stack.Translate(f.eye)
	s.stack.ScaleUniform(s.cfg.SkyScale)

	defer bindTexture(p, shader.Skybox, s.content.Textures.Sky)()
	s.draw(p, s.content.Meshes.Sky)
}

// texturedPass draws the ground, the tree group and the shack.
func (s *Scene) texturedPass(f frame) {
	p := s.content.Programs.Textured
	if p == nil {
		return
	}
	defer bindPass(p, f)()
	p.SetVec3(shader.EyePos, f.eye)

	defer s.stack.Push().Pop()
	s.stack.LoadIdentity()

	s.stack.With(func() {
		s.stack.Translate(math.Vec3{Y: s.cfg.GroundYOffset})
		defer bindTexture(p, shader.Texture0, s.content.Textures.Ground)()
		s.draw(p, s.content.Meshes.Ground)
	})

	s.stack.With(func() { s.drawTrees(p) })

	s.stack.With(func() {
		y := s.content.Heights.Sample(0, 0) + s.cfg.GroundYOffset
		s.stack.Translate(math.Vec3{Y: y})
		s.stack.Rotate(gomath.Pi/2, axisY)
		s.stack.ScaleUniform(s.cfg.StructureScale)
		defer bindTexture(p, shader.Texture0, s.content.Textures.Structure)()
		s.draw(p, s.content.Meshes.Structure)
	})
}

// drawTrees places one tree per scatter point inside a uniformly scaled group.
// The height sample uses the unscaled point, as the points are expressed in
// the group's local frame.
func (s *Scene) drawTrees(p Program) {
	mesh := s.content.Meshes.Tree
	if mesh == nil || len(s.content.Trees) == 0 {
		return
	}

	s.stack.ScaleUniform(s.cfg.TreeScale)
	defer bindTexture(p, shader.Texture0, s.content.Textures.Tree)()

	for _, pt := range s.content.Trees {
		scope := s.stack.Push()
		y := s.content.Heights.Sample(pt.X, pt.Y) + s.cfg.TreeYOffset
		s.stack.Translate(math.Vec3{X: pt.X, Y: y, Z: pt.Y})
		s.draw(p, mesh)
		scope.Pop()
	}
}

// litPass draws the ground-anchored totem and the normalized figure with the
// active palette material.
func (s *Scene) litPass(f frame) {
	p := s.content.Programs.Lit
	if p == nil {
		return
	}
	defer bindPass(p, f)()
	p.SetVec3(shader.LightPos, s.cfg.LightPos)
	p.SetVec3(shader.Eye, f.eye)

	mat := Palette[s.material]
	p.SetVec3(shader.MatAmb, mat.Ambient)
	p.SetVec3(shader.MatDif, mat.Diffuse)
	p.SetVec3(shader.MatSpec, mat.Specular)
	p.SetFloat(shader.Shine, mat.Shininess)

	defer s.stack.Push().Pop()
	s.stack.LoadIdentity()

	s.stack.With(func() {
		pos := s.cfg.TotemPos
		y := s.content.Heights.Sample(pos.X, pos.Y) + s.cfg.GroundYOffset
		s.stack.Translate(math.Vec3{X: pos.X, Y: y, Z: pos.Y})
		s.draw(p, s.content.Meshes.Totem)
	})

	norm := s.content.Normalization
	for _, part := range s.content.Meshes.Figure {
		s.stack.With(func() {
			s.stack.Translate(s.cfg.FigurePos)
			s.stack.Rotate(-gomath.Pi/2, axisX)
			s.stack.Rotate(-gomath.Pi/2, axisZ)
			s.stack.ScaleUniform(norm.Scale)
			s.stack.Translate(norm.Translate.Neg())
			s.draw(p, part)
		})
	}
}
