// Package quality scores rendered images with simple deterministic metrics.
package quality

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"garment-render/internal/raster"
	"garment-render/pkg/colorutil"
)

const (
	// edgeGradientThreshold is the luma difference between horizontal
	// neighbors counted as an edge for the density metric.
	edgeGradientThreshold = 30

	// passScore is the minimum composite score considered acceptable.
	passScore = 6.0
)

// Report holds the quality metrics for one image.
type Report struct {
	Brightness  float64 // mean luma, 0-255
	Contrast    float64 // luma standard deviation
	EdgeDensity float64 // fraction of pixel pairs with a strong gradient
	Score       float64 // composite, 0-10
}

// Pass reports whether the composite score meets the acceptance threshold.
func (r Report) Pass() bool {
	return r.Score >= passScore
}

// Assess computes the quality report for a buffer. Deterministic; the same
// buffer always yields the same report.
func Assess(b *raster.Buffer) Report {
	w, h := b.Width, b.Height
	if w <= 0 || h <= 0 {
		return Report{}
	}

	lumas := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := b.PixOffset(x, y)
			lumas[y*w+x] = colorutil.Luma601(
				float64(b.Pix[i]),
				float64(b.Pix[i+1]),
				float64(b.Pix[i+2]),
			)
		}
	}

	edges := 0
	if w > 1 {
		for y := 0; y < h; y++ {
			for x := 0; x < w-1; x++ {
				if math.Abs(lumas[y*w+x]-lumas[y*w+x+1]) > edgeGradientThreshold {
					edges++
				}
			}
		}
	}

	r := Report{
		Brightness: stat.Mean(lumas, nil),
		Contrast:   stat.StdDev(lumas, nil),
	}
	if math.IsNaN(r.Contrast) {
		r.Contrast = 0
	}
	if w > 1 {
		r.EdgeDensity = float64(edges) / float64((w-1)*h)
	}
	r.Score = score(r)
	return r
}

// score folds the raw metrics into a 0-10 composite: brightness peaks at
// mid-gray, contrast and edge density saturate at workable levels.
func score(r Report) float64 {
	brightness := 1.0 - math.Abs(r.Brightness-128)/128
	contrast := math.Min(r.Contrast/64, 1.0)
	edges := math.Min(r.EdgeDensity/0.05, 1.0)
	return (0.4*brightness + 0.4*contrast + 0.2*edges) * 10
}
