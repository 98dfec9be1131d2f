// Package shaders provides the embedded GLSL sources of the scene programs.
// File names match the resource directory, so a file of the same name there
// replaces the embedded one.
package shaders

import "embed"

// FS holds every embedded shader file.
//
//go:embed *.glsl
var FS embed.FS

// Shader file names.
const (
	TexturedVertex   = "tex_vert.glsl"
	TexturedFragment = "tex_frag0.glsl"
	SkyVertex        = "cube_vert.glsl"
	SkyFragment      = "cube_frag.glsl"
	LitVertex        = "simple_vert.glsl"
	LitFragment      = "simple_frag.glsl"
)
