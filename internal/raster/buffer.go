// Package raster provides the RGBA pixel buffer the render pipelines operate on,
// plus decoding, encoding, and size-limiting around it.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a contiguous RGBA8 pixel buffer, row-major, 4 bytes per pixel.
// Every pipeline stage consumes one Buffer and produces a new one; a Buffer is
// never shared across stage boundaries, so stages need no synchronization.
type Buffer struct {
	Width  int
	Height int
	// Pix holds the pixel data, length Width*Height*4.
	Pix []uint8
}

// New returns a zero-initialized buffer of the given size.
func New(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// NewFilled returns a buffer with every pixel set to c.
func NewFilled(width, height int, c color.RGBA) *Buffer {
	b := New(width, height)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
	return b
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 4
}

// RGBAAt returns the pixel at (x, y).
func (b *Buffer) RGBAAt(x, y int) color.RGBA {
	i := b.PixOffset(x, y)
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// SetRGBA sets the pixel at (x, y).
func (b *Buffer) SetRGBA(x, y int, c color.RGBA) {
	i := b.PixOffset(x, y)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// SetGray sets R, G and B of the pixel at (x, y) to v, leaving alpha untouched.
func (b *Buffer) SetGray(x, y int, v uint8) {
	i := b.PixOffset(x, y)
	b.Pix[i] = v
	b.Pix[i+1] = v
	b.Pix[i+2] = v
}

// FromImage converts any image.Image into a Buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 || !bounds.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	b := &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	copy(b.Pix, rgba.Pix)
	return b
}

// ToRGBA converts the buffer back into an image.RGBA sharing no memory with it.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}
