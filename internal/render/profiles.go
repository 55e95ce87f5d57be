package render

import (
	"sort"
	"strings"

	"garment-render/pkg/geometry"
)

// MaterialProfile holds the procedural texture parameters for a fabric. The
// texture factor at (x, y) is Base + Amplitude*sin(FreqX*x)*cos(FreqY*y).
// Roughness and Reflectivity are descriptive scalars carried for catalog and
// API parity; the renderer does not use them numerically.
type MaterialProfile struct {
	Name      string
	Base      float64
	Amplitude float64
	FreqX     float64
	FreqY     float64

	Roughness    float64
	Reflectivity float64
}

// neutralMaterial is the fallback for unknown material names: a constant
// texture factor of 1.0.
var neutralMaterial = MaterialProfile{Name: "neutral", Base: 1.0}

// materials is the static fabric table. Read-only after process start.
var materials = map[string]MaterialProfile{
	"cotton":  {Name: "cotton", Base: 0.9, Amplitude: 0.1, FreqX: 0.1, FreqY: 0.1, Roughness: 0.8, Reflectivity: 0.1},
	"silk":    {Name: "silk", Base: 0.95, Amplitude: 0.05, FreqX: 0.05, FreqY: 0.05, Roughness: 0.2, Reflectivity: 0.9},
	"denim":   {Name: "denim", Base: 0.8, Amplitude: 0.2, FreqX: 0.3, FreqY: 0.3, Roughness: 0.9, Reflectivity: 0.05},
	"leather": {Name: "leather", Base: 0.85, Amplitude: 0.15, FreqX: 0.2, FreqY: 0.2, Roughness: 0.6, Reflectivity: 0.3},
	"wool":    {Name: "wool", Base: 0.87, Amplitude: 0.13, FreqX: 0.15, FreqY: 0.15, Roughness: 0.85, Reflectivity: 0.05},
	"linen":   {Name: "linen", Base: 0.92, Amplitude: 0.08, FreqX: 0.12, FreqY: 0.12, Roughness: 0.75, Reflectivity: 0.1},
}

// MaterialByName resolves a material name, falling back to the neutral
// profile for unknown names. Unknown names are not errors.
func MaterialByName(name string) MaterialProfile {
	if p, ok := materials[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return neutralMaterial
}

// MaterialNames lists the known fabric names, sorted.
func MaterialNames() []string {
	out := make([]string, 0, len(materials))
	for name := range materials {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// StyleProfile holds the per-style lighting position and final enhancement
// factor. Light is a normalized coordinate in [0,1]x[0,1], mapped onto pixel
// space by the lighting stage.
type StyleProfile struct {
	Name        string
	Light       geometry.Point2D
	Enhancement float64
}

// defaultStyle is the fallback for unknown style names: light source at
// center-top, no enhancement.
var defaultStyle = StyleProfile{Name: "default", Light: geometry.Point2D{X: 0.5, Y: 0.0}, Enhancement: 1.0}

// styles is the static style table. Read-only after process start.
var styles = map[string]StyleProfile{
	"casual": {Name: "casual", Light: geometry.Point2D{X: 0.3, Y: 0.3}, Enhancement: 1.1},
	"formal": {Name: "formal", Light: geometry.Point2D{X: 0.5, Y: 0.2}, Enhancement: 1.2},
	"sporty": {Name: "sporty", Light: geometry.Point2D{X: 0.7, Y: 0.3}, Enhancement: 1.15},
}

// StyleByName resolves a style name, falling back to the default profile for
// unknown names. Unknown names are not errors.
func StyleByName(name string) StyleProfile {
	if p, ok := styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return defaultStyle
}

// StyleNames lists the known style names, sorted.
func StyleNames() []string {
	out := make([]string, 0, len(styles))
	for name := range styles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
