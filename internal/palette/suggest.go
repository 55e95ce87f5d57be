package palette

import (
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// maxSampleObservations caps the number of pixels fed into k-means so the
// suggestion cost stays bounded for large photos.
const maxSampleObservations = 4096

// SuggestColor returns the palette entry name perceptually closest (CIE Lab)
// to the photo's dominant color.
func SuggestColor(img image.Image) string {
	dominant := dominantcolor.Find(img)
	c, ok := colorful.MakeColor(dominant)
	if !ok {
		return DefaultName
	}
	return nearestName(c)
}

// SuggestPalette clusters the photo's pixels into k colors and maps each
// cluster center to its nearest named palette entry. Duplicate names are
// collapsed, so fewer than k names may be returned.
func SuggestPalette(img image.Image, k int) ([]string, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid cluster count: %d", k)
	}

	obs := sampleObservations(img)
	if len(obs) < k {
		return nil, fmt.Errorf("image too small for %d clusters", k)
	}

	km := kmeans.New()
	cl, err := km.Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("color clustering failed: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, c := range cl {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		name := nearestName(colorful.Color{R: center[0], G: center[1], B: center[2]})
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

func sampleObservations(img image.Image) clusters.Observations {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	step := 1
	for (w/step)*(h/step) > maxSampleObservations {
		step++
	}

	var obs clusters.Observations
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			obs = append(obs, clusters.Coordinates{
				float64(r>>8) / 255.0,
				float64(g>>8) / 255.0,
				float64(b>>8) / 255.0,
			})
		}
	}
	return obs
}

func nearestName(c colorful.Color) string {
	best := DefaultName
	bestDist := -1.0
	for _, e := range entries {
		pc, ok := colorful.MakeColor(e.Color)
		if !ok {
			continue
		}
		d := c.DistanceLab(pc)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = e.Name
		}
	}
	return best
}
