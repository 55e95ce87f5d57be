// Command rendertool produces a synthetic final render from a technical flat.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"garment-render/internal/config"
	"garment-render/internal/logging"
	"garment-render/internal/palette"
	"garment-render/internal/raster"
	"garment-render/internal/render"
	"garment-render/internal/version"
)

func main() {
	flatPath := flag.String("flat", "", "Path to technical flat PNG")
	style := flag.String("style", "casual", "Render style: "+strings.Join(render.StyleNames(), ", "))
	colorName := flag.String("color", palette.DefaultName, "Palette color, or 'auto' to pick from the image")
	material := flag.String("material", "cotton", "Fabric: "+strings.Join(render.MaterialNames(), ", "))
	outPath := flag.String("out", "", "Output PNG path (default: timestamped file in the configured output dir)")
	listProfiles := flag.Bool("list", false, "List styles, colors, and materials and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *listProfiles {
		fmt.Printf("Styles:    %s\n", strings.Join(render.StyleNames(), ", "))
		fmt.Printf("Colors:    %s\n", strings.Join(palette.Names(), ", "))
		fmt.Printf("Materials: %s\n", strings.Join(render.MaterialNames(), ", "))
		return
	}
	if *flatPath == "" {
		fmt.Println("Usage: rendertool -flat <path> [-style casual] [-color blue|auto] [-material cotton] [-out <path>]")
		os.Exit(1)
	}

	cfg := config.Load()
	logging.SetLevel(cfg.LogLevel)
	raster.SetDefaultWorkers(cfg.RenderWorkers)

	data, err := os.ReadFile(*flatPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read flat: %v\n", err)
		os.Exit(1)
	}

	opts := render.Options{Style: *style, Color: *colorName, Material: *material}
	if opts.Color == "auto" {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decode flat for color suggestion: %v\n", err)
			os.Exit(1)
		}
		opts.Color = palette.SuggestColor(img)
		fmt.Printf("Suggested color: %s\n", opts.Color)
	}

	finalPNG, err := render.SyntheticFinal(data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	path := *outPath
	if path == "" {
		path, err = raster.SavePNG(finalPNG, cfg.OutputDir, "render")
	} else {
		err = os.WriteFile(path, finalPNG, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render written: %s (style=%s color=%s material=%s)\n",
		path, opts.Style, opts.Color, opts.Material)
}
