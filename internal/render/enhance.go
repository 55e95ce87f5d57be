package render

import (
	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

// Enhance applies the style's global contrast/brightness factor to every
// channel. Terminal stage of the fallback pipeline.
func Enhance(src *raster.Buffer, style string) *raster.Buffer {
	return enhanceBanded(src, style, 0)
}

func enhanceBanded(src *raster.Buffer, style string, workers int) *raster.Buffer {
	factor := StyleByName(style).Enhancement
	w := src.Width
	out := raster.New(w, src.Height)

	raster.ForEachRowBand(src.Height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				i := src.PixOffset(x, y)
				out.Pix[i] = colorutil.Clamp8(float64(src.Pix[i]) * factor)
				out.Pix[i+1] = colorutil.Clamp8(float64(src.Pix[i+1]) * factor)
				out.Pix[i+2] = colorutil.Clamp8(float64(src.Pix[i+2]) * factor)
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
