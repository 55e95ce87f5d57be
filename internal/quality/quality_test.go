package quality

import (
	"image/color"
	"testing"

	"garment-render/internal/raster"
)

func TestAssessUniform(t *testing.T) {
	b := raster.NewFilled(20, 20, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	r := Assess(b)

	if r.Brightness < 126 || r.Brightness > 130 {
		t.Errorf("brightness: got %.2f, want ~128", r.Brightness)
	}
	if r.Contrast != 0 {
		t.Errorf("contrast of uniform image: got %.2f, want 0", r.Contrast)
	}
	if r.EdgeDensity != 0 {
		t.Errorf("edge density of uniform image: got %.4f, want 0", r.EdgeDensity)
	}
	if r.Pass() {
		t.Errorf("flat gray image should not pass, score %.2f", r.Score)
	}
}

func TestAssessStructuredBeatsUniform(t *testing.T) {
	uniform := Assess(raster.NewFilled(40, 40, color.RGBA{R: 128, G: 128, B: 128, A: 255}))

	striped := raster.New(40, 40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(60)
			if x%8 < 4 {
				v = 200
			}
			striped.SetGray(x, y, v)
			striped.Pix[striped.PixOffset(x, y)+3] = 255
		}
	}
	stripedReport := Assess(striped)

	if stripedReport.Score <= uniform.Score {
		t.Errorf("striped score %.2f should exceed uniform score %.2f",
			stripedReport.Score, uniform.Score)
	}
	if stripedReport.Contrast <= 0 {
		t.Errorf("striped contrast should be positive, got %.2f", stripedReport.Contrast)
	}
	if stripedReport.EdgeDensity <= 0 {
		t.Errorf("striped edge density should be positive, got %.4f", stripedReport.EdgeDensity)
	}
}

func TestAssessDeterministic(t *testing.T) {
	b := raster.New(17, 23)
	for i := range b.Pix {
		b.Pix[i] = uint8(i * 11 % 256)
	}
	first := Assess(b)
	second := Assess(b)
	if first != second {
		t.Errorf("reports differ: %+v vs %+v", first, second)
	}
}

func TestAssessDegenerate(t *testing.T) {
	if r := Assess(&raster.Buffer{}); r != (Report{}) {
		t.Errorf("empty buffer should yield a zero report, got %+v", r)
	}

	// A single pixel has no neighbor pairs and zero variance.
	one := raster.NewFilled(1, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	r := Assess(one)
	if r.Contrast != 0 || r.EdgeDensity != 0 {
		t.Errorf("single pixel: %+v", r)
	}
}
