package palette

import (
	"image"
	"image/color"
	"testing"
)

func TestByName(t *testing.T) {
	if _, ok := ByName("red"); !ok {
		t.Error("red should be a known entry")
	}
	if _, ok := ByName("  RED "); !ok {
		t.Error("lookup should trim and lowercase")
	}
	if _, ok := ByName("chartreuse"); ok {
		t.Error("chartreuse should be unknown")
	}
}

func TestResolveDefaultsToBlue(t *testing.T) {
	want, _ := ByName(DefaultName)
	got := Resolve("no-such-color")
	if got != want {
		t.Errorf("got %v, want default %v", got, want)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("empty palette")
	}
	if names[0] != DefaultName {
		t.Errorf("default entry should lead the table, got %s", names[0])
	}
}

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSuggestColor(t *testing.T) {
	redEntry, _ := ByName("red")
	got := SuggestColor(solidImage(40, 40, redEntry))
	if got != "red" {
		t.Errorf("got %s, want red", got)
	}

	navyEntry, _ := ByName("navy")
	if got := SuggestColor(solidImage(40, 40, navyEntry)); got != "navy" {
		t.Errorf("got %s, want navy", got)
	}
}

func TestSuggestPalette(t *testing.T) {
	t.Run("rejects non-positive k", func(t *testing.T) {
		if _, err := SuggestPalette(solidImage(10, 10, color.RGBA{A: 255}), 0); err == nil {
			t.Error("expected error for k=0")
		}
	})

	t.Run("finds both halves of a split image", func(t *testing.T) {
		redEntry, _ := ByName("red")
		navyEntry, _ := ByName("navy")
		img := image.NewRGBA(image.Rect(0, 0, 40, 40))
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				if x < 20 {
					img.SetRGBA(x, y, redEntry)
				} else {
					img.SetRGBA(x, y, navyEntry)
				}
			}
		}

		names, err := SuggestPalette(img, 2)
		if err != nil {
			t.Fatalf("SuggestPalette failed: %v", err)
		}
		found := map[string]bool{}
		for _, n := range names {
			found[n] = true
		}
		if !found["red"] || !found["navy"] {
			t.Errorf("expected red and navy, got %v", names)
		}
	})
}
