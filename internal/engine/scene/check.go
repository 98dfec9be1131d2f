package scene

import (
	"errors"
	"io/fs"

	"github.com/Faultbox/glade/internal/assets"
	"github.com/Faultbox/glade/internal/engine/scene/shaders"
	"github.com/Faultbox/glade/internal/engine/shader"
)

// passUniforms lists the uniforms each pass uploads, by program name.
var passUniforms = map[string][]shader.Uniform{
	"sky":      {shader.Projection, shader.View, shader.Model, shader.Skybox},
	"textured": {shader.Projection, shader.View, shader.Model, shader.Texture0, shader.EyePos},
	"lit": {
		shader.Projection, shader.View, shader.Model, shader.Eye, shader.LightPos,
		shader.MatAmb, shader.MatDif, shader.MatSpec, shader.Shine,
	},
}

// uniformReport counts the known uniforms a program resolved and names the
// ones its pass uploads but the program lacks.
func uniformReport(name string, has func(shader.Uniform) bool) (active int, missing []string) {
	for _, u := range shader.Uniforms() {
		if has(u) {
			active++
		}
	}
	for _, u := range passUniforms[name] {
		if !has(u) {
			missing = append(missing, u.String())
		}
	}
	return active, missing
}

// RequiredFiles returns the files Load cannot do without.
func RequiredFiles() []string {
	return []string{
		shaders.SkyVertex, shaders.SkyFragment,
		shaders.TexturedVertex, shaders.TexturedFragment,
		shaders.LitVertex, shaders.LitFragment,
		TerrainFile,
	}
}

// CheckRequired reports every required file mgr cannot find, joined into one
// error. Each part is an *assets.LoadError wrapping fs.ErrNotExist.
func CheckRequired(mgr *assets.Manager) error {
	var errs []error
	for _, file := range RequiredFiles() {
		if mgr.Exists(file) {
			continue
		}
		kind := assets.KindShader
		if file == TerrainFile {
			kind = assets.KindGeometry
		}
		errs = append(errs, &assets.LoadError{Kind: kind, Path: file, Err: fs.ErrNotExist})
	}
	return errors.Join(errs...)
}
