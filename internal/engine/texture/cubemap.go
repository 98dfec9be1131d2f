package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeFaces is the number of faces in a cube map.
const CubeFaces = 6

// FaceSuffixes lists the conventional file name suffixes of a cube map in
// GL face order: +X, -X, +Y, -Y, +Z, -Z.
var FaceSuffixes = [CubeFaces]string{"rt", "lf", "up", "dn", "bk", "ft"}

// Cubemap is an uploaded cube map texture.
type Cubemap struct {
	ID   uint32
	Size int
}

// NewCubemap uploads six square faces in GL face order. Faces are not
// flipped; cube map lookups use a top-left origin per face.
func NewCubemap(faces [CubeFaces]*image.RGBA) (*Cubemap, error) {
	size := faces[0].Bounds().Dx()
	for i, f := range faces {
		b := f.Bounds()
		if b.Dx() == 0 || b.Dx() != b.Dy() {
			return nil, fmt.Errorf("cube face %s: not square (%dx%d)", FaceSuffixes[i], b.Dx(), b.Dy())
		}
		if b.Dx() != size {
			return nil, fmt.Errorf("cube face %s: size %d, want %d", FaceSuffixes[i], b.Dx(), size)
		}
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)

	for i, f := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(size), int32(size),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&f.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return &Cubemap{ID: texID, Size: size}, nil
}

// Unit returns the texture unit the cube map binds to.
func (c *Cubemap) Unit() int32 { return 0 }

// Bind binds the cube map on unit 0.
func (c *Cubemap) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)
}

// Unbind clears the cube map binding.
func (c *Cubemap) Unbind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
}

// Delete releases the GL texture.
func (c *Cubemap) Delete() {
	if c.ID != 0 {
		gl.DeleteTextures(1, &c.ID)
		c.ID = 0
	}
}
