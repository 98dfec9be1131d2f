package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func TestLoadPriority(t *testing.T) {
	m := NewManager()
	m.AddFS("embedded", fstest.MapFS{
		"tex_vert.glsl": {Data: []byte("embedded vert")},
		"tex_frag0.glsl": {Data: []byte("embedded frag")},
	})
	m.AddFS("resources", fstest.MapFS{
		"tex_vert.glsl": {Data: []byte("override vert")},
	})

	data, err := m.Load("tex_vert.glsl")
	require.NoError(t, err)
	assert.Equal(t, "override vert", string(data))

	data, err = m.Load("tex_frag0.glsl")
	require.NoError(t, err)
	assert.Equal(t, "embedded frag", string(data))
}

func TestLoadCaches(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"a.txt": {Data: []byte("a")}})

	_, err := m.Load("a.txt")
	require.NoError(t, err)
	_, err = m.Load("./a.txt")
	require.NoError(t, err)

	hits, misses := m.Cache().Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestLoadMissing(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{})

	_, err := m.Load("nope.obj")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadOBJ(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{
		"tri.obj":    {Data: []byte(triangleOBJ)},
		"broken.obj": {Data: []byte("v 1 2\n")},
	})

	obj, err := m.LoadOBJ("tri.obj")
	require.NoError(t, err)
	require.Len(t, obj.Shapes, 1)
	assert.Len(t, obj.Shapes[0].Indices, 3)

	_, err = m.LoadOBJ("broken.obj")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindGeometry, le.Kind)
	assert.Equal(t, "broken.obj", le.Path)

	_, err = m.LoadOBJ("missing.obj")
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "geometry")
}

func TestLoadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	m := NewManager()
	m.AddFS("mem", fstest.MapFS{
		"grass.png": {Data: buf.Bytes()},
		"bad.jpg":   {Data: []byte("garbage")},
	})

	img, err := m.LoadImage("grass.png")
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = m.LoadImage("bad.jpg")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindTexture, le.Kind)
}

func TestLoadShaderSource(t *testing.T) {
	m := NewManager()
	_, err := m.LoadShaderSource("cube_vert.glsl")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindShader, le.Kind)
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cracks"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cracks", "bluecloud_up.jpg"), []byte("x"), 0644))

	m := NewManager()
	require.NoError(t, m.AddDir(dir))
	assert.True(t, m.Exists("cracks/bluecloud_up.jpg"))
	assert.False(t, m.Exists("cracks/bluecloud_dn.jpg"))

	assert.Error(t, m.AddDir(filepath.Join(dir, "missing")))
	assert.Error(t, m.AddDir(filepath.Join(dir, "cracks", "bluecloud_up.jpg")))
}

func TestClose(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"a": {Data: []byte("a")}})
	_, err := m.Load("a")
	require.NoError(t, err)

	m.Close()
	_, err = m.Load("a")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "geometry", KindGeometry.String())
	assert.Equal(t, "texture", KindTexture.String())
	assert.Equal(t, "shader", KindShader.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
