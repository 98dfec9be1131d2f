// Package shader provides OpenGL shader compilation and uniform upload.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glade/pkg/math"
)

// Program is a linked shader program with its uniform locations cached.
type Program struct {
	ID   uint32
	Name string
	locs Locations
}

// NewProgram compiles and links a program and resolves every known uniform.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}

	p := &Program{ID: id, Name: name}
	p.locs = ResolveLocations(func(uniform string) int32 {
		return GetUniform(id, uniform)
	})
	return p, nil
}

// Has reports whether the program uses u.
func (p *Program) Has(u Uniform) bool {
	return p.locs.Get(u) >= 0
}

// Bind makes the program current.
func (p *Program) Bind() {
	gl.UseProgram(p.ID)
}

// Unbind clears the current program.
func (p *Program) Unbind() {
	gl.UseProgram(0)
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(u Uniform, m math.Mat4) {
	gl.UniformMatrix4fv(p.locs.Get(u), 1, false, m.Ptr())
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(u Uniform, v math.Vec3) {
	gl.Uniform3f(p.locs.Get(u), v.X, v.Y, v.Z)
}

// SetFloat uploads a scalar.
func (p *Program) SetFloat(u Uniform, f float32) {
	gl.Uniform1f(p.locs.Get(u), f)
}

// SetInt uploads an integer, typically a sampler unit.
func (p *Program) SetInt(u Uniform, i int32) {
	gl.Uniform1i(p.locs.Get(u), i)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	// Compile vertex shader
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	// Compile fragment shader
	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00\n"))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, strings.TrimRight(string(log), "\x00\n"))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
