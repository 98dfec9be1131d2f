// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"image"
	"image/draw"
)

// ImageToRGBA converts any image.Image to a tightly packed *image.RGBA with
// origin (0, 0). With flipY set, rows are reversed so the first row is the
// bottom of the picture, which is what OpenGL expects for 2D textures.
func ImageToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		FlipRows(rgba)
	}
	return rgba
}

// FlipRows reverses the row order of img in place.
func FlipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
