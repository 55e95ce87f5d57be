package render

import (
	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
	"garment-render/pkg/geometry"
)

// depthRange is how much the depth factor drops from image center (1.0) to
// the farthest corner (1.0 - depthRange).
const depthRange = 0.3

// ShadeDepth applies radial pseudo-3D shading keyed on distance from the
// image center. Black structure pixels (R == 0) are lifted slightly toward
// gray with distance; all other pixels are scaled by the depth factor. Output
// is grayscale with alpha passed through.
func ShadeDepth(src *raster.Buffer) *raster.Buffer {
	return shadeDepthBanded(src, 0)
}

func shadeDepthBanded(src *raster.Buffer, workers int) *raster.Buffer {
	w, h := src.Width, src.Height
	out := raster.New(w, h)

	center := geometry.ImageCenter(w, h)
	maxDist := center.Distance(geometry.Point2D{})

	raster.ForEachRowBand(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				dist := geometry.NewPoint2D(float64(x), float64(y)).Distance(center)
				depth := 1.0 - (dist/maxDist)*depthRange

				i := src.PixOffset(x, y)
				var v uint8
				if src.Pix[i] == 0 {
					v = colorutil.Clamp8(255 * (1.0 - depth))
				} else {
					v = colorutil.Clamp8(float64(src.Pix[i]) * depth)
				}
				out.SetGray(x, y, v)
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
