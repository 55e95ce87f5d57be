// Package flat extracts a binarized technical-flat rendition from a garment photo:
// grayscale normalization, kernel edge detection, isolated-pixel cleanup, and
// composition onto a gridded white canvas.
package flat

// PixelKernel pairs an immutable 3x3 convolution matrix with the threshold
// used to binarize its response.
type PixelKernel struct {
	Weights   [3][3]int
	Threshold int
}

// Laplacian is the fixed edge-detection kernel for flat extraction. Created
// once, never mutated.
var Laplacian = PixelKernel{
	Weights: [3][3]int{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	},
	Threshold: 50,
}
