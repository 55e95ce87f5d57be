package flat

import (
	"garment-render/internal/raster"
)

// minEdgeNeighbors is the neighbor count below which an edge pixel is
// considered isolated noise.
const minEdgeNeighbors = 2

// CleanStructure removes isolated edge pixels from a binary edge buffer:
// every interior 255-pixel with fewer than two 255-neighbors (8-connectivity)
// is zeroed. Neighbor counts are always computed against the unmodified input
// and removals are written to a separate output, so the result is independent
// of scan order.
func CleanStructure(src *raster.Buffer) *raster.Buffer {
	return cleanStructureBanded(src, 0)
}

func cleanStructureBanded(src *raster.Buffer, workers int) *raster.Buffer {
	w, h := src.Width, src.Height
	out := src.Clone()
	if w < 3 || h < 3 {
		return out
	}

	raster.ForEachRowBand(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			if y == 0 || y == h-1 {
				continue
			}
			for x := 1; x < w-1; x++ {
				if src.Pix[src.PixOffset(x, y)] != 255 {
					continue
				}
				if countEdgeNeighbors(src, x, y) < minEdgeNeighbors {
					out.SetGray(x, y, 0)
				}
			}
		}
	})
	return out
}

func countEdgeNeighbors(b *raster.Buffer, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.Pix[b.PixOffset(x+dx, y+dy)] == 255 {
				n++
			}
		}
	}
	return n
}
