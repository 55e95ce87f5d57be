// Command qualitycheck scores a rendered PNG with the quality metrics.
package main

import (
	"flag"
	"fmt"
	"os"

	"garment-render/internal/quality"
	"garment-render/internal/raster"
)

func main() {
	imagePath := flag.String("image", "", "Path to image to score")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: qualitycheck -image <path>")
		os.Exit(1)
	}

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	buf, err := raster.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	report := quality.Assess(buf)
	fmt.Printf("Size:         %dx%d\n", buf.Width, buf.Height)
	fmt.Printf("Brightness:   %.1f\n", report.Brightness)
	fmt.Printf("Contrast:     %.1f\n", report.Contrast)
	fmt.Printf("Edge density: %.4f\n", report.EdgeDensity)
	fmt.Printf("Score:        %.2f / 10\n", report.Score)
	if report.Pass() {
		fmt.Println("Result:       PASS")
	} else {
		fmt.Println("Result:       FAIL")
		os.Exit(2)
	}
}
