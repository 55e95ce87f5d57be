package render

import (
	"math"

	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

// ApplyTexture modulates the grayscale value of every pixel by the material's
// sinusoidal texture factor. Unknown material names resolve to a neutral
// factor of 1.0.
func ApplyTexture(src *raster.Buffer, material string) *raster.Buffer {
	return applyTextureBanded(src, material, 0)
}

func applyTextureBanded(src *raster.Buffer, material string, workers int) *raster.Buffer {
	profile := MaterialByName(material)
	w := src.Width
	out := raster.New(w, src.Height)

	raster.ForEachRowBand(src.Height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				factor := textureFactor(profile, x, y)
				i := src.PixOffset(x, y)
				out.SetGray(x, y, colorutil.Clamp8(float64(src.Pix[i])*factor))
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}

func textureFactor(p MaterialProfile, x, y int) float64 {
	return p.Base + p.Amplitude*math.Sin(p.FreqX*float64(x))*math.Cos(p.FreqY*float64(y))
}
