package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Wrap is a texture coordinate wrap mode.
type Wrap int32

const (
	ClampToEdge Wrap = gl.CLAMP_TO_EDGE
	Repeat      Wrap = gl.REPEAT
)

// Options controls 2D texture upload.
type Options struct {
	Unit    int32 // texture unit the texture binds to
	WrapS   Wrap
	WrapT   Wrap
	Mipmaps bool
}

// Texture2D is an uploaded 2D texture bound to a fixed unit.
type Texture2D struct {
	ID     uint32
	Width  int
	Height int
	unit   int32
}

// New2D uploads img as a 2D texture.
func New2D(img *image.RGBA, opts Options) (*Texture2D, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image")
	}
	if opts.WrapS == 0 {
		opts.WrapS = ClampToEdge
	}
	if opts.WrapT == 0 {
		opts.WrapT = ClampToEdge
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(w), int32(h),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(opts.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(opts.WrapT))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture2D{ID: texID, Width: w, Height: h, unit: opts.Unit}, nil
}

// Unit returns the texture unit used by Bind.
func (t *Texture2D) Unit() int32 { return t.unit }

// Bind activates the texture's unit and binds the texture to it.
func (t *Texture2D) Bind() {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(t.unit))
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Unbind clears the binding on the texture's unit.
func (t *Texture2D) Unbind() {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(t.unit))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the GL texture.
func (t *Texture2D) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
