package render

import (
	"math"

	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
	"garment-render/pkg/geometry"
)

// lightFalloff is how much light intensity drops from the light source (1.0)
// to the farthest point (1.0 - lightFalloff).
const lightFalloff = 0.5

// ApplyLighting applies a radial directional-light falloff from the style's
// light-source position. Each of R, G, B is scaled by the intensity; alpha is
// passed through.
func ApplyLighting(src *raster.Buffer, style string) *raster.Buffer {
	return applyLightingBanded(src, style, 0)
}

func applyLightingBanded(src *raster.Buffer, style string, workers int) *raster.Buffer {
	profile := StyleByName(style)
	w, h := src.Width, src.Height
	out := raster.New(w, h)

	light := profile.Light.Scale(float64(w), float64(h))
	maxDist := math.Sqrt(float64(w*w + h*h))

	raster.ForEachRowBand(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				dist := geometry.NewPoint2D(float64(x), float64(y)).Distance(light)
				intensity := 1.0 - (dist/maxDist)*lightFalloff

				i := src.PixOffset(x, y)
				out.Pix[i] = colorutil.Clamp8(float64(src.Pix[i]) * intensity)
				out.Pix[i+1] = colorutil.Clamp8(float64(src.Pix[i+1]) * intensity)
				out.Pix[i+2] = colorutil.Clamp8(float64(src.Pix[i+2]) * intensity)
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
