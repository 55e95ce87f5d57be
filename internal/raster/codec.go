package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes raster image bytes (PNG, JPEG, GIF, TIFF, BMP, or WebP) into
// a Buffer.
func Decode(data []byte) (*Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, bounds.Dx(), bounds.Dy())
	}

	return FromImage(img), nil
}

// DecodeLimited decodes image bytes and downscales the result so that neither
// edge exceeds maxEdge pixels. Aspect ratio is preserved. maxEdge <= 0 means
// no limit. This bounds the worst-case memory footprint of a pipeline run,
// since several intermediate buffers are live at once.
func DecodeLimited(data []byte, maxEdge int) (*Buffer, error) {
	b, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if maxEdge <= 0 || (b.Width <= maxEdge && b.Height <= maxEdge) {
		return b, nil
	}
	return b.Downscale(maxEdge), nil
}

// Downscale returns a copy of the buffer scaled so its longer edge equals
// maxEdge. Uses Catmull-Rom resampling.
func (b *Buffer) Downscale(maxEdge int) *Buffer {
	w, h := b.Width, b.Height
	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	src := b.ToRGBA()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// EncodePNG encodes the buffer as PNG bytes.
func EncodePNG(b *Buffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.ToRGBA()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
