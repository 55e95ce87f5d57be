package flat

import (
	"garment-render/internal/raster"
)

// DetectEdges convolves the kernel over the R channel and binarizes the
// response: interior pixels whose absolute response exceeds the kernel
// threshold become pure white, all other interior pixels pure black.
//
// The convolution is evaluated for interior pixels only; the one-pixel border
// stays at the output buffer's zero initialization. Interior alpha is copied
// from the input.
func DetectEdges(src *raster.Buffer, k PixelKernel) *raster.Buffer {
	return detectEdgesBanded(src, k, 0)
}

func detectEdgesBanded(src *raster.Buffer, k PixelKernel, workers int) *raster.Buffer {
	w, h := src.Width, src.Height
	out := raster.New(w, h)
	if w < 3 || h < 3 {
		return out
	}

	raster.ForEachRowBand(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			if y == 0 || y == h-1 {
				continue
			}
			for x := 1; x < w-1; x++ {
				sum := 0
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						sum += int(src.Pix[src.PixOffset(x+kx, y+ky)]) * k.Weights[ky+1][kx+1]
					}
				}
				if sum < 0 {
					sum = -sum
				}
				if sum > 255 {
					sum = 255
				}

				var v uint8
				if sum > k.Threshold {
					v = 255
				}
				i := out.PixOffset(x, y)
				out.Pix[i] = v
				out.Pix[i+1] = v
				out.Pix[i+2] = v
				out.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return out
}
