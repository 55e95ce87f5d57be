package flat

import (
	"fmt"

	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

const (
	contrastGain  = 1.5
	contrastPivot = 128
)

// Normalize converts the buffer to grayscale (BT.601 luma) and applies a
// contrast stretch around the mid-gray pivot. R, G and B of every output
// pixel are identical; alpha is passed through.
func Normalize(src *raster.Buffer) (*raster.Buffer, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", raster.ErrInvalidDimensions, src.Width, src.Height)
	}
	return normalizeBanded(src, 0), nil
}

func normalizeBanded(src *raster.Buffer, workers int) *raster.Buffer {
	out := raster.New(src.Width, src.Height)
	raster.ForEachRowBand(src.Height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < src.Width; x++ {
				i := src.PixOffset(x, y)
				luma := colorutil.Luma601(
					float64(src.Pix[i]),
					float64(src.Pix[i+1]),
					float64(src.Pix[i+2]),
				)
				v := colorutil.Clamp8((luma-contrastPivot)*contrastGain + contrastPivot)
				out.Pix[i] = v
				out.Pix[i+1] = v
				out.Pix[i+2] = v
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
