// Command flattool converts a garment photo into a technical flat PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"garment-render/internal/config"
	"garment-render/internal/flat"
	"garment-render/internal/logging"
	"garment-render/internal/raster"
	"garment-render/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "Path to garment photo (PNG, JPEG, GIF, TIFF, BMP, or WebP)")
	outPath := flag.String("out", "", "Output PNG path (default: timestamped file in the configured output dir)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *imagePath == "" {
		fmt.Println("Usage: flattool -image <path> [-out <path>]")
		os.Exit(1)
	}

	cfg := config.Load()
	logging.SetLevel(cfg.LogLevel)
	raster.SetDefaultWorkers(cfg.RenderWorkers)

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	flatPNG, err := flat.ConvertLimited(data, cfg.MaxImageDimension)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flat conversion failed: %v\n", err)
		os.Exit(1)
	}

	path := *outPath
	if path == "" {
		path, err = raster.SavePNG(flatPNG, cfg.OutputDir, "flat")
	} else {
		err = os.WriteFile(path, flatPNG, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save flat: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Flat written: %s (%d bytes)\n", path, len(flatPNG))
}
