package render

import (
	"bytes"
	"image/color"
	"testing"

	"garment-render/internal/palette"
	"garment-render/internal/raster"
)

func uniformBuffer(w, h int, v uint8) *raster.Buffer {
	return raster.NewFilled(w, h, color.RGBA{R: v, G: v, B: v, A: 255})
}

func channelSum(b *raster.Buffer) int {
	sum := 0
	for i := 0; i < len(b.Pix); i += 4 {
		sum += int(b.Pix[i]) + int(b.Pix[i+1]) + int(b.Pix[i+2])
	}
	return sum
}

func TestShadeDepth(t *testing.T) {
	t.Run("monotonic non-increasing with radius", func(t *testing.T) {
		src := uniformBuffer(101, 101, 200)
		got := ShadeDepth(src)

		cx, cy := 50, 50
		prev := int(got.Pix[got.PixOffset(cx, cy)])
		for x := cx; x < 101; x++ {
			v := int(got.Pix[got.PixOffset(x, cy)])
			if v > prev {
				t.Fatalf("value rose with distance at x=%d: %d > %d", x, v, prev)
			}
			prev = v
		}
	})

	t.Run("depth stays within 0.7 to 1.0", func(t *testing.T) {
		src := uniformBuffer(80, 60, 200)
		got := ShadeDepth(src)
		for y := 0; y < 60; y++ {
			for x := 0; x < 80; x++ {
				v := float64(got.Pix[got.PixOffset(x, y)])
				if v < 200*0.7-1 || v > 200 {
					t.Fatalf("(%d,%d): shaded value %v outside depth range", x, y, v)
				}
			}
		}
	})

	t.Run("structure lines lift toward gray with distance", func(t *testing.T) {
		src := uniformBuffer(100, 100, 255)
		src.SetGray(50, 50, 0) // center structure pixel
		src.SetGray(0, 0, 0)   // corner structure pixel
		got := ShadeDepth(src)

		center := got.Pix[got.PixOffset(50, 50)]
		corner := got.Pix[got.PixOffset(0, 0)]
		if center > 2 {
			t.Errorf("center structure pixel should stay near black, got %d", center)
		}
		// Corner is at max distance: 255 * 0.3, truncated.
		if corner != 76 {
			t.Errorf("corner structure pixel: got %d, want 76", corner)
		}
	})

	t.Run("alpha preserved", func(t *testing.T) {
		src := raster.NewFilled(10, 10, color.RGBA{R: 128, G: 128, B: 128, A: 90})
		got := ShadeDepth(src)
		if got.Pix[got.PixOffset(3, 4)+3] != 90 {
			t.Error("alpha not passed through")
		}
	})
}

func TestApplyTexture(t *testing.T) {
	t.Run("unknown material is neutral", func(t *testing.T) {
		src := uniformBuffer(30, 30, 180)
		got := ApplyTexture(src, "velvet")
		if !bytes.Equal(got.Pix, src.Pix) {
			t.Error("unknown material should leave values unchanged")
		}
	})

	t.Run("cotton modulates around 0.9", func(t *testing.T) {
		src := uniformBuffer(64, 64, 200)
		got := ApplyTexture(src, "cotton")
		// At the origin sin(0) = 0, so the factor is exactly the base.
		if v := got.Pix[got.PixOffset(0, 0)]; v != 180 {
			t.Errorf("origin: got %d, want 180", v)
		}
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				v := float64(got.Pix[got.PixOffset(x, y)])
				if v < 200*0.8-1 || v > 200 {
					t.Fatalf("(%d,%d): %v outside cotton texture range", x, y, v)
				}
			}
		}
	})

	t.Run("denim is coarser than silk", func(t *testing.T) {
		src := uniformBuffer(64, 64, 200)
		denim := ApplyTexture(src, "denim")
		silk := ApplyTexture(src, "silk")

		spread := func(b *raster.Buffer) int {
			lo, hi := 255, 0
			for i := 0; i < len(b.Pix); i += 4 {
				v := int(b.Pix[i])
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			return hi - lo
		}
		if spread(denim) <= spread(silk) {
			t.Errorf("denim spread %d should exceed silk spread %d", spread(denim), spread(silk))
		}
	})
}

func TestColorize(t *testing.T) {
	t.Run("white maps to the exact palette color", func(t *testing.T) {
		want := palette.Resolve("red")
		got := Colorize(uniformBuffer(5, 5, 255), "red")
		c := got.RGBAAt(2, 2)
		if c.R != want.R || c.G != want.G || c.B != want.B {
			t.Errorf("got %v, want %v", c, want)
		}
	})

	t.Run("black maps to black", func(t *testing.T) {
		got := Colorize(uniformBuffer(5, 5, 0), "red")
		c := got.RGBAAt(2, 2)
		if c.R != 0 || c.G != 0 || c.B != 0 {
			t.Errorf("got %v, want black", c)
		}
	})

	t.Run("unknown color falls back to blue", func(t *testing.T) {
		want := palette.Resolve(palette.DefaultName)
		got := Colorize(uniformBuffer(5, 5, 255), "chartreuse")
		c := got.RGBAAt(2, 2)
		if c.R != want.R || c.G != want.G || c.B != want.B {
			t.Errorf("got %v, want default palette %v", c, want)
		}
	})

	t.Run("alpha passed through", func(t *testing.T) {
		src := raster.NewFilled(5, 5, color.RGBA{R: 128, G: 128, B: 128, A: 33})
		got := Colorize(src, "red")
		if got.RGBAAt(1, 1).A != 33 {
			t.Error("alpha not passed through")
		}
	})
}

func TestApplyLighting(t *testing.T) {
	src := uniformBuffer(100, 100, 200)
	got := ApplyLighting(src, "formal")

	// Formal light source sits at (0.5, 0.2): brightest there, dimmer far away.
	near := int(got.Pix[got.PixOffset(50, 20)])
	far := int(got.Pix[got.PixOffset(99, 99)])
	if near <= far {
		t.Errorf("pixel at light source (%d) not brighter than far corner (%d)", near, far)
	}

	// Intensity never drops below half.
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if v := got.Pix[got.PixOffset(x, y)]; v < 99 {
				t.Fatalf("(%d,%d): %d below the 0.5 intensity floor", x, y, v)
			}
		}
	}
}

func TestEnhance(t *testing.T) {
	src := uniformBuffer(10, 10, 100)

	cases := []struct {
		style string
		want  uint8
	}{
		{"casual", 110},
		{"formal", 120},
		{"sporty", 114}, // 100 * 1.15, truncated
		{"avant-garde", 100},
	}
	for _, tc := range cases {
		t.Run(tc.style, func(t *testing.T) {
			got := Enhance(src, tc.style)
			if v := got.Pix[got.PixOffset(4, 4)]; v != tc.want {
				t.Errorf("got %d, want %d", v, tc.want)
			}
		})
	}

	t.Run("clamps at 255", func(t *testing.T) {
		got := Enhance(uniformBuffer(4, 4, 250), "formal")
		if v := got.Pix[got.PixOffset(1, 1)]; v != 255 {
			t.Errorf("got %d, want 255", v)
		}
	})
}

func TestProfileDefaults(t *testing.T) {
	s := StyleByName("unknown")
	if s.Enhancement != 1.0 || s.Light.X != 0.5 || s.Light.Y != 0.0 {
		t.Errorf("unknown style should resolve to center-top neutral profile, got %+v", s)
	}
	m := MaterialByName("unknown")
	if m.Base != 1.0 || m.Amplitude != 0 {
		t.Errorf("unknown material should be neutral, got %+v", m)
	}
	if f := textureFactor(m, 17, 31); f != 1.0 {
		t.Errorf("neutral texture factor: got %v, want 1.0", f)
	}
}

// TestSyntheticFinalEndToEnd renders a flat-like fixture and checks that
// former structure pixels stay darker than palette-colored interior, and that
// the formal style comes out brighter than casual on the same input.
func TestSyntheticFinalEndToEnd(t *testing.T) {
	// A flat: white canvas with a black square outline.
	src := uniformBuffer(100, 100, 255)
	for i := 30; i < 70; i++ {
		src.SetGray(i, 30, 0)
		src.SetGray(i, 69, 0)
		src.SetGray(30, i, 0)
		src.SetGray(69, i, 0)
	}
	data, err := raster.EncodePNG(src)
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	formalPNG, err := SyntheticFinal(data, Options{Style: "formal", Color: "red", Material: "silk"})
	if err != nil {
		t.Fatalf("SyntheticFinal failed: %v", err)
	}
	formal, err := raster.Decode(formalPNG)
	if err != nil {
		t.Fatalf("decoding render: %v", err)
	}

	lumaAt := func(b *raster.Buffer, x, y int) float64 {
		c := b.RGBAAt(x, y)
		return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	}
	structure := lumaAt(formal, 30, 50) // former black outline pixel
	interior := lumaAt(formal, 50, 50)  // former white pixel
	if structure >= interior {
		t.Errorf("structure pixel (%.1f) should be darker than interior (%.1f)", structure, interior)
	}

	casualPNG, err := SyntheticFinal(data, Options{Style: "casual", Color: "red", Material: "silk"})
	if err != nil {
		t.Fatalf("casual render failed: %v", err)
	}
	casual, err := raster.Decode(casualPNG)
	if err != nil {
		t.Fatalf("decoding casual render: %v", err)
	}
	if channelSum(formal) <= channelSum(casual) {
		t.Errorf("formal render (sum %d) should be brighter than casual (sum %d)",
			channelSum(formal), channelSum(casual))
	}
}

func TestStageBandingDeterminism(t *testing.T) {
	src := raster.New(33, 49)
	for i := range src.Pix {
		src.Pix[i] = uint8((i * 17) % 256)
	}

	if !bytes.Equal(shadeDepthBanded(src, 1).Pix, shadeDepthBanded(src, 8).Pix) {
		t.Error("worker count changed depth shading output")
	}
	if !bytes.Equal(applyTextureBanded(src, "denim", 1).Pix, applyTextureBanded(src, "denim", 8).Pix) {
		t.Error("worker count changed texture output")
	}
	if !bytes.Equal(colorizeBanded(src, "red", 1).Pix, colorizeBanded(src, "red", 8).Pix) {
		t.Error("worker count changed colorize output")
	}
	if !bytes.Equal(applyLightingBanded(src, "sporty", 1).Pix, applyLightingBanded(src, "sporty", 8).Pix) {
		t.Error("worker count changed lighting output")
	}
	if !bytes.Equal(enhanceBanded(src, "formal", 1).Pix, enhanceBanded(src, "formal", 8).Pix) {
		t.Error("worker count changed enhancement output")
	}
}

func TestDepthFactorBounds(t *testing.T) {
	// The raw depth factor must span exactly [0.7, 1.0].
	for _, dims := range [][2]int{{10, 10}, {101, 73}, {1, 1}} {
		w, h := dims[0], dims[1]
		src := uniformBuffer(w, h, 255)
		got := ShadeDepth(src)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := float64(got.Pix[got.PixOffset(x, y)])
				depth := v / 255
				if depth < 0.7-0.01 || depth > 1.0 {
					t.Fatalf("%dx%d (%d,%d): depth %v out of bounds", w, h, x, y, depth)
				}
			}
		}
	}
}
