// Package render synthesizes a pseudo-3D preview from a technical flat:
// radial depth shading, procedural material texture, palette colorization,
// directional lighting, and a final per-style enhancement. It is the local
// fallback used when the external generative render is unavailable; nothing
// in this package knows about that service.
package render

import (
	"garment-render/internal/palette"
	"garment-render/internal/raster"
)

// Options selects the style, color, and material profiles for a synthetic
// render. Unknown names silently resolve to documented defaults.
type Options struct {
	Style    string
	Color    string
	Material string
}

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{
		Style:    "casual",
		Color:    palette.DefaultName,
		Material: "cotton",
	}
}

// SyntheticFinal decodes a flat image, runs the fallback render pipeline, and
// returns the result encoded as PNG.
func SyntheticFinal(flatBytes []byte, opts Options) ([]byte, error) {
	buf, err := raster.Decode(flatBytes)
	if err != nil {
		return nil, err
	}
	return raster.EncodePNG(RenderBuffer(buf, opts))
}

// RenderBuffer runs the five fallback stages on a decoded flat buffer.
func RenderBuffer(src *raster.Buffer, opts Options) *raster.Buffer {
	shaded := ShadeDepth(src)
	textured := ApplyTexture(shaded, opts.Material)
	colored := Colorize(textured, opts.Color)
	lit := ApplyLighting(colored, opts.Style)
	return Enhance(lit, opts.Style)
}
