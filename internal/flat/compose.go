package flat

import (
	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

// gridSpacing is the interval, in pixels, between technical grid lines.
const gridSpacing = 20

// ComposeFlat lays the cleaned structure as black strokes on a white canvas
// and overlays the light-gray technical grid every gridSpacing rows and
// columns. Grid lines are drawn only where the canvas is still pure white, so
// they never overwrite garment structure.
func ComposeFlat(structure *raster.Buffer) *raster.Buffer {
	return composeFlatBanded(structure, 0)
}

func composeFlatBanded(structure *raster.Buffer, workers int) *raster.Buffer {
	w, h := structure.Width, structure.Height
	out := raster.New(w, h)
	raster.ForEachRowBand(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				switch {
				case structure.Pix[structure.PixOffset(x, y)] == 255:
					out.SetRGBA(x, y, colorutil.Black)
				case y%gridSpacing == 0 || x%gridSpacing == 0:
					out.SetRGBA(x, y, colorutil.GridGray)
				default:
					out.SetRGBA(x, y, colorutil.White)
				}
			}
		}
	})
	return out
}
