// Package palette provides the named garment color palette used by the
// fallback renderer, plus dominant-color suggestion from source photos.
package palette

import (
	"image/color"
	"strings"
)

// DefaultName is the palette entry used when a requested color name is
// unknown. Unknown names are not errors.
const DefaultName = "blue"

// Entry is a named palette color.
type Entry struct {
	Name  string
	Color color.RGBA
}

// entries is the static palette table, ordered for stable listings. Read-only
// after process start.
var entries = []Entry{
	{"blue", color.RGBA{R: 40, G: 70, B: 160, A: 255}},
	{"red", color.RGBA{R: 200, G: 30, B: 45, A: 255}},
	{"green", color.RGBA{R: 40, G: 120, B: 70, A: 255}},
	{"black", color.RGBA{R: 25, G: 25, B: 25, A: 255}},
	{"white", color.RGBA{R: 240, G: 240, B: 240, A: 255}},
	{"navy", color.RGBA{R: 25, G: 35, B: 80, A: 255}},
	{"beige", color.RGBA{R: 225, G: 205, B: 170, A: 255}},
	{"pink", color.RGBA{R: 230, G: 150, B: 170, A: 255}},
	{"yellow", color.RGBA{R: 230, G: 200, B: 60, A: 255}},
	{"gray", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
}

// ByName returns the palette color for name and whether it is a known entry.
func ByName(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if e.Name == name {
			return e.Color, true
		}
	}
	return color.RGBA{}, false
}

// Resolve returns the palette color for name, falling back to DefaultName for
// unknown names.
func Resolve(name string) color.RGBA {
	if c, ok := ByName(name); ok {
		return c
	}
	c, _ := ByName(DefaultName)
	return c
}

// Names lists all palette entry names in table order.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
