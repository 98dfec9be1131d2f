package scene

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glade/internal/assets"
	"github.com/Faultbox/glade/internal/engine/scene/shaders"
	"github.com/Faultbox/glade/internal/engine/shader"
)

func TestCheckRequiredMissingTerrain(t *testing.T) {
	mgr := assets.NewManager()
	mgr.AddFS("embedded", shaders.FS)

	err := CheckRequired(mgr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var le *assets.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, assets.KindGeometry, le.Kind)
	assert.Equal(t, TerrainFile, le.Path)
}

func TestCheckRequiredNamesEveryFile(t *testing.T) {
	err := CheckRequired(assets.NewManager())
	require.Error(t, err)
	for _, file := range RequiredFiles() {
		assert.Contains(t, err.Error(), file)
	}
}

func TestCheckRequiredSatisfied(t *testing.T) {
	mgr := assets.NewManager()
	mgr.AddFS("embedded", shaders.FS)
	mgr.AddFS("resources", fstest.MapFS{
		TerrainFile: &fstest.MapFile{Data: []byte("v 0 0 0\n")},
	})
	assert.NoError(t, CheckRequired(mgr))
}

func TestUniformReport(t *testing.T) {
	all := func(shader.Uniform) bool { return true }
	active, missing := uniformReport("lit", all)
	assert.Equal(t, len(shader.Uniforms()), active)
	assert.Empty(t, missing)

	// A sky program without the model matrix or the sampler.
	sky := func(u shader.Uniform) bool {
		return u == shader.Projection || u == shader.View
	}
	active, missing = uniformReport("sky", sky)
	assert.Equal(t, 2, active)
	assert.Equal(t, []string{"M", "skybox"}, missing)
}

func TestPassUniformsCoverEveryProgram(t *testing.T) {
	for _, name := range []string{"sky", "textured", "lit"} {
		assert.NotEmpty(t, passUniforms[name], name)
	}
}
