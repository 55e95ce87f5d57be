package raster

import "errors"

// Sentinel errors for the codec layer. Pipeline stages themselves are total
// functions over valid buffers; only decode, dimension validation, and encode
// can fail.
var (
	// ErrDecode indicates the input bytes are not a decodable raster image.
	ErrDecode = errors.New("image decode failed")

	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrEncode indicates a failure producing the output PNG bytes.
	ErrEncode = errors.New("image encode failed")
)
