package flat

import (
	"garment-render/internal/raster"
)

// Convert decodes a garment photo, runs the flat-extraction pipeline, and
// returns the technical flat encoded as PNG.
func Convert(src []byte) ([]byte, error) {
	return ConvertLimited(src, 0)
}

// ConvertLimited is Convert with a maximum edge length applied at decode;
// larger inputs are downscaled before processing. maxEdge <= 0 means no limit.
func ConvertLimited(src []byte, maxEdge int) ([]byte, error) {
	buf, err := raster.DecodeLimited(src, maxEdge)
	if err != nil {
		return nil, err
	}
	flat, err := ConvertBuffer(buf)
	if err != nil {
		return nil, err
	}
	return raster.EncodePNG(flat)
}

// ConvertBuffer runs the flat-extraction stages on a decoded buffer:
// normalize, detect edges, clean isolated pixels, compose the gridded flat.
func ConvertBuffer(src *raster.Buffer) (*raster.Buffer, error) {
	normalized, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	edges := DetectEdges(normalized, Laplacian)
	cleaned := CleanStructure(edges)
	return ComposeFlat(cleaned), nil
}
