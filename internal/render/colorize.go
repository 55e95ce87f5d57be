package render

import (
	"garment-render/internal/palette"
	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

// Colorize maps grayscale intensity onto a palette color: each channel is the
// palette channel scaled by gray/255. White pixels become the full palette
// color, black pixels stay black, so structure lines remain dark regardless
// of palette. The source alpha channel is passed through. Unknown color names
// resolve to the default palette entry.
func Colorize(src *raster.Buffer, colorName string) *raster.Buffer {
	return colorizeBanded(src, colorName, 0)
}

func colorizeBanded(src *raster.Buffer, colorName string, workers int) *raster.Buffer {
	c := palette.Resolve(colorName)
	w := src.Width
	out := raster.New(w, src.Height)

	raster.ForEachRowBand(src.Height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				i := src.PixOffset(x, y)
				intensity := float64(src.Pix[i]) / 255.0
				out.Pix[i] = colorutil.Round8(float64(c.R) * intensity)
				out.Pix[i+1] = colorutil.Round8(float64(c.G) * intensity)
				out.Pix[i+2] = colorutil.Round8(float64(c.B) * intensity)
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
